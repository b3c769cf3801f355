package listing

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"FoodShare-Backend/pkg/activity"
	"FoodShare-Backend/pkg/metrics"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// allowedTransitions encodes the forward-only listing lifecycle:
// available -> reserved -> completed, no skips, no going back.
var allowedTransitions = map[string]string{
	domain.ListingStatusAvailable: domain.ListingStatusReserved,
	domain.ListingStatusReserved:  domain.ListingStatusCompleted,
}

type (
	ListingService interface {
		CreateListing(ctx context.Context, req domain.CreateListingRequest, userID string) (*domain.FoodListing, error)
		GetListings(ctx context.Context) ([]*domain.FoodListing, error)
		GetListingByID(ctx context.Context, id string) (*domain.FoodListing, error)
		UpdateListingStatus(ctx context.Context, id string, req domain.UpdateListingStatusRequest, userID string) (*domain.FoodListing, error)
		DeleteListing(ctx context.Context, id string, userID string) error
	}

	listingService struct {
		listingRepository  ListingRepository
		activityRepository activity.ActivityRepository
		metricsService     metrics.MetricsService
	}
)

func NewListingService(listingRepository ListingRepository, activityRepository activity.ActivityRepository, metricsService metrics.MetricsService) ListingService {
	return &listingService{
		listingRepository:  listingRepository,
		activityRepository: activityRepository,
		metricsService:     metricsService,
	}
}

func (s *listingService) CreateListing(ctx context.Context, req domain.CreateListingRequest, userID string) (*domain.FoodListing, error) {
	if req.FoodType == "" || req.Quantity == "" || req.Location == "" || req.AvailableUntil == "" || req.ContactInfo == "" {
		return nil, domain.ErrMissingRequiredFields
	}

	availableUntil, err := parseAvailableUntil(req.AvailableUntil)
	if err != nil {
		return nil, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	listing := &entities.FoodListing{
		ID:             uuid.New(),
		UserID:         userUUID,
		FoodType:       req.FoodType,
		Quantity:       req.Quantity,
		Description:    req.Description,
		Location:       req.Location,
		ContactInfo:    req.ContactInfo,
		AvailableUntil: availableUntil,
		Status:         domain.ListingStatusAvailable,
	}

	if err := s.listingRepository.CreateListing(ctx, listing); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, userUUID, "donation_created",
		fmt.Sprintf("Created donation listing for %s", listing.FoodType), listing.ID, listing.Location)
	s.recordMetric(ctx, domain.MetricDonationsCompleted, 1)

	return toDomainListing(listing), nil
}

func (s *listingService) GetListings(ctx context.Context) ([]*domain.FoodListing, error) {
	listings, err := s.listingRepository.GetListings(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.FoodListing, 0, len(listings))
	for _, listing := range listings {
		result = append(result, toDomainListing(listing))
	}
	return result, nil
}

func (s *listingService) GetListingByID(ctx context.Context, id string) (*domain.FoodListing, error) {
	listing, err := s.listingRepository.GetListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}
	return toDomainListing(listing), nil
}

func (s *listingService) UpdateListingStatus(ctx context.Context, id string, req domain.UpdateListingStatusRequest, userID string) (*domain.FoodListing, error) {
	listing, err := s.getOwnedListing(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Status != domain.ListingStatusAvailable &&
		req.Status != domain.ListingStatusReserved &&
		req.Status != domain.ListingStatusCompleted {
		return nil, domain.ErrInvalidListingStatus
	}

	if allowedTransitions[listing.Status] != req.Status {
		return nil, domain.ErrInvalidStatusTransition
	}

	if err := s.listingRepository.UpdateListingStatus(ctx, id, req.Status); err != nil {
		return nil, err
	}
	listing.Status = req.Status

	switch req.Status {
	case domain.ListingStatusReserved:
		s.recordActivity(ctx, listing.UserID, "donation_reserved",
			fmt.Sprintf("Reserved donation: %s", listing.FoodType), listing.ID, listing.Location)
		s.recordMetric(ctx, domain.MetricMealsSaved, EstimateMeals(listing.Quantity))
	case domain.ListingStatusCompleted:
		s.recordActivity(ctx, listing.UserID, "donation_completed",
			fmt.Sprintf("Completed donation: %s", listing.FoodType), listing.ID, listing.Location)
		s.recordMetric(ctx, domain.MetricUsersHelped, 1)
		s.recordMetric(ctx, domain.MetricWasteReduced, EstimateWaste(listing.Quantity))
	}

	return toDomainListing(listing), nil
}

func (s *listingService) DeleteListing(ctx context.Context, id string, userID string) error {
	if _, err := s.getOwnedListing(ctx, id, userID); err != nil {
		return err
	}
	return s.listingRepository.DeleteListing(ctx, id)
}

// getOwnedListing is the single ownership guard for every mutating listing
// operation.
func (s *listingService) getOwnedListing(ctx context.Context, id string, userID string) (*entities.FoodListing, error) {
	listing, err := s.listingRepository.GetListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}

	if listing.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedListingAccess
	}
	return listing, nil
}

// recordActivity and recordMetric are best-effort: a failed side effect must
// not roll back or fail the listing operation that triggered it.
func (s *listingService) recordActivity(ctx context.Context, userID uuid.UUID, activityType, description string, relatedID uuid.UUID, location string) {
	err := s.activityRepository.AddActivity(ctx, &entities.UserActivity{
		ID:           uuid.New(),
		UserID:       userID,
		ActivityType: activityType,
		Description:  description,
		RelatedID:    &relatedID,
		Location:     location,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		log.Printf("failed to record %s activity: %v", activityType, err)
	}
}

func (s *listingService) recordMetric(ctx context.Context, metricType string, amount int64) {
	if err := s.metricsService.IncrementMetric(ctx, metricType, amount); err != nil {
		log.Printf("failed to increment %s metric: %v", metricType, err)
	}
}

func parseAvailableUntil(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, domain.ErrInvalidAvailableUntil
}

func toDomainListing(listing *entities.FoodListing) *domain.FoodListing {
	return &domain.FoodListing{
		ID:             listing.ID.String(),
		UserID:         listing.UserID.String(),
		FoodType:       listing.FoodType,
		Quantity:       listing.Quantity,
		Description:    listing.Description,
		Location:       listing.Location,
		ContactInfo:    listing.ContactInfo,
		AvailableUntil: listing.AvailableUntil,
		Status:         listing.Status,
		CreatedAt:      listing.CreatedAt,
		UpdatedAt:      listing.UpdatedAt,
	}
}
