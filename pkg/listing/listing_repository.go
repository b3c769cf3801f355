package listing

import (
	"FoodShare-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	ListingRepository interface {
		CreateListing(ctx context.Context, listing *entities.FoodListing) error
		GetListingByID(ctx context.Context, id string) (*entities.FoodListing, error)
		GetListings(ctx context.Context) ([]*entities.FoodListing, error)
		UpdateListingStatus(ctx context.Context, id string, status string) error
		DeleteListing(ctx context.Context, id string) error
	}

	listingRepository struct {
		db *gorm.DB
	}
)

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) CreateListing(ctx context.Context, listing *entities.FoodListing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *listingRepository) GetListingByID(ctx context.Context, id string) (*entities.FoodListing, error) {
	var listing entities.FoodListing
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&listing).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) GetListings(ctx context.Context) ([]*entities.FoodListing, error) {
	var listings []*entities.FoodListing
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) UpdateListingStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).
		Model(&entities.FoodListing{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *listingRepository) DeleteListing(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodListing{}).Error
}
