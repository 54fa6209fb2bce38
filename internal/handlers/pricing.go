package handlers

import (
	"shiprate/internal/models"
	"shiprate/internal/services/pricing"
	"shiprate/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type PricingHandler struct {
	pricingService *pricing.Service
}

func NewPricingHandler(pricingService *pricing.Service) *PricingHandler {
	return &PricingHandler{pricingService: pricingService}
}

// CalculatePrice computes a quote for the authenticated user. Engine
// validation failures come back as 400 with the engine's message verbatim.
func (h *PricingHandler) CalculatePrice(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	var req models.CalculatePriceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	quote, err := h.pricingService.CalculatePrice(c.Context(), userID, req.Region, req.Weight, req.Method)
	if err != nil {
		if pricing.IsValidation(err) {
			return response.BadRequest(c, err.Error())
		}
		return response.ServerError(c, "Failed to calculate price")
	}
	return c.JSON(quote)
}

// GetAvailableRegions returns the caller's offered regions with their
// methods and zones.
func (h *PricingHandler) GetAvailableRegions(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	regions, err := h.pricingService.AvailableRegions(c.Context(), userID)
	if err != nil {
		return response.ServerError(c, "Failed to load regions")
	}
	return c.JSON(regions)
}
