package handlers

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/api/presenters"
	"FoodShare-Backend/pkg/analysis"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AnalysisHandler interface {
		AnalyzeFood(c *fiber.Ctx) error
	}

	analysisHandler struct {
		analysisService analysis.AnalysisService
		validator       *validator.Validate
	}
)

func NewAnalysisHandler(analysisService analysis.AnalysisService, validator *validator.Validate) AnalysisHandler {
	return &analysisHandler{
		analysisService: analysisService,
		validator:       validator,
	}
}

func (h *analysisHandler) AnalyzeFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.AnalyzeFoodRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAnalyzeFood, err)
	}

	result, err := h.analysisService.AnalyzeFood(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrClassificationFailed) {
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedAnalyzeFood, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAnalyzeFood, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessAnalyzeFood)
}
