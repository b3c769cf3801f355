package handlers

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/api/presenters"
	"FoodShare-Backend/pkg/listing"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ListingHandler interface {
		CreateListing(c *fiber.Ctx) error
		GetListings(c *fiber.Ctx) error
		GetListingByID(c *fiber.Ctx) error
		UpdateListingStatus(c *fiber.Ctx) error
		DeleteListing(c *fiber.Ctx) error
	}

	listingHandler struct {
		listingService listing.ListingService
		validator      *validator.Validate
	}
)

func NewListingHandler(listingService listing.ListingService, validator *validator.Validate) ListingHandler {
	return &listingHandler{
		listingService: listingService,
		validator:      validator,
	}
}

func listingErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrListingNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedListingAccess):
		return fiber.StatusForbidden
	default:
		return fiber.StatusBadRequest
	}
}

func (h *listingHandler) CreateListing(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CreateListingRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateListing, err)
	}

	created, err := h.listingService.CreateListing(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, listingErrorStatus(err), domain.MessageFailedCreateListing, err)
	}

	return presenters.SuccessResponse(c, created, fiber.StatusCreated, domain.MessageSuccessCreateListing)
}

func (h *listingHandler) GetListings(c *fiber.Ctx) error {
	listings, err := h.listingService.GetListings(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, listingErrorStatus(err), domain.MessageFailedGetListings, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"listings": listings,
	}, fiber.StatusOK, domain.MessageSuccessGetListings)
}

func (h *listingHandler) GetListingByID(c *fiber.Ctx) error {
	listingID := c.Params("id")
	if listingID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetListings, domain.ErrListingNotFound)
	}

	found, err := h.listingService.GetListingByID(c.Context(), listingID)
	if err != nil {
		return presenters.ErrorResponse(c, listingErrorStatus(err), domain.MessageFailedGetListings, err)
	}

	return presenters.SuccessResponse(c, found, fiber.StatusOK, domain.MessageSuccessGetListings)
}

func (h *listingHandler) UpdateListingStatus(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listingID := c.Params("id")

	req := new(domain.UpdateListingStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateListing, err)
	}

	updated, err := h.listingService.UpdateListingStatus(c.Context(), listingID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, listingErrorStatus(err), domain.MessageFailedUpdateListing, err)
	}

	return presenters.SuccessResponse(c, updated, fiber.StatusOK, domain.MessageSuccessUpdateListing)
}

func (h *listingHandler) DeleteListing(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listingID := c.Params("id")

	if err := h.listingService.DeleteListing(c.Context(), listingID, userID); err != nil {
		return presenters.ErrorResponse(c, listingErrorStatus(err), domain.MessageFailedDeleteListing, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteListing)
}
