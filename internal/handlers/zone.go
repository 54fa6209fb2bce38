package handlers

import (
	"errors"

	"shiprate/internal/models"
	"shiprate/internal/services/zone"
	"shiprate/internal/utils/pagination"
	"shiprate/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type ZoneHandler struct {
	zoneService *zone.Service
}

func NewZoneHandler(zoneService *zone.Service) *ZoneHandler {
	return &ZoneHandler{zoneService: zoneService}
}

func (h *ZoneHandler) CreateZone(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	var data models.CreateZone
	if err := c.BodyParser(&data); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	created, err := h.zoneService.Create(c.Context(), userID, data)
	if err != nil {
		return zoneError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ZoneHandler) UpdateZone(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	var data models.CreateZone
	if err := c.BodyParser(&data); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	updated, err := h.zoneService.Update(c.Context(), userID, c.Params("id"), data)
	if err != nil {
		return zoneError(c, err)
	}
	return c.JSON(updated)
}

func (h *ZoneHandler) GetZone(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	found, err := h.zoneService.Get(c.Context(), userID, c.Params("id"))
	if err != nil {
		return zoneError(c, err)
	}
	return c.JSON(found)
}

func (h *ZoneHandler) ListZones(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	p := pagination.ParseFromRequest(c)
	zones, err := h.zoneService.List(c.Context(), userID, &p)
	if err != nil {
		return response.ServerError(c, "Failed to list regions")
	}
	return c.JSON(pagination.Response(p, zones))
}

func (h *ZoneHandler) DeleteZone(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	if err := h.zoneService.Delete(c.Context(), userID, c.Params("id")); err != nil {
		return zoneError(c, err)
	}
	return response.Success(c, "Regions Deleted", nil)
}

func zoneError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, zone.ErrNotFound):
		return response.NotFound(c, "Regions not found.")
	case errors.Is(err, zone.ErrRegionAssigned):
		return response.BadRequest(c, "Region already assigned.")
	case errors.Is(err, zone.ErrNameRequired),
		errors.Is(err, zone.ErrRegionsRequired),
		errors.Is(err, zone.ErrNegativePrice),
		errors.Is(err, zone.ErrPartialSurcharge):
		return response.BadRequest(c, err.Error())
	default:
		return response.ServerError(c, "Failed to process regions")
	}
}
