package domain

import (
	"errors"
	"time"
)

const (
	ListingStatusAvailable = "available"
	ListingStatusReserved  = "reserved"
	ListingStatusCompleted = "completed"
)

var (
	MessageSuccessCreateListing = "food listing created successfully"
	MessageSuccessGetListings   = "food listings retrieved successfully"
	MessageSuccessUpdateListing = "food listing updated successfully"
	MessageSuccessDeleteListing = "food listing deleted successfully"

	MessageFailedCreateListing = "failed to create food listing"
	MessageFailedGetListings   = "failed to retrieve food listings"
	MessageFailedUpdateListing = "failed to update food listing"
	MessageFailedDeleteListing = "failed to delete food listing"

	ErrListingNotFound           = errors.New("food listing not found")
	ErrUnauthorizedListingAccess = errors.New("unauthorized access to food listing")
	ErrInvalidListingStatus      = errors.New("invalid listing status")
	ErrInvalidStatusTransition   = errors.New("invalid listing status transition")
	ErrMissingRequiredFields     = errors.New("missing required fields")
	ErrInvalidAvailableUntil     = errors.New("invalid available_until timestamp")
)

type (
	CreateListingRequest struct {
		FoodType       string `json:"food_type" validate:"required"`
		Quantity       string `json:"quantity" validate:"required"`
		Description    string `json:"description" validate:"omitempty"`
		Location       string `json:"location" validate:"required"`
		AvailableUntil string `json:"available_until" validate:"required"`
		ContactInfo    string `json:"contact_info" validate:"required"`
	}

	UpdateListingStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=available reserved completed"`
	}

	FoodListing struct {
		ID             string    `json:"id"`
		UserID         string    `json:"user_id"`
		FoodType       string    `json:"food_type"`
		Quantity       string    `json:"quantity"`
		Description    string    `json:"description,omitempty"`
		Location       string    `json:"location"`
		ContactInfo    string    `json:"contact_info"`
		AvailableUntil time.Time `json:"available_until"`
		Status         string    `json:"status"`
		CreatedAt      time.Time `json:"created_at"`
		UpdatedAt      time.Time `json:"updated_at"`
	}
)
