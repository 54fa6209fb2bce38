package handlers

import (
	"errors"

	"shiprate/internal/models"
	"shiprate/internal/services/method"
	"shiprate/internal/utils/pagination"
	"shiprate/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type MethodHandler struct {
	methodService *method.Service
}

func NewMethodHandler(methodService *method.Service) *MethodHandler {
	return &MethodHandler{methodService: methodService}
}

func (h *MethodHandler) CreateMethod(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	var data models.CreateMethod
	if err := c.BodyParser(&data); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	created, err := h.methodService.Create(c.Context(), userID, data)
	if err != nil {
		return methodError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *MethodHandler) UpdateMethod(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	var data models.CreateMethod
	if err := c.BodyParser(&data); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	updated, err := h.methodService.Update(c.Context(), userID, c.Params("id"), data)
	if err != nil {
		return methodError(c, err)
	}
	return c.JSON(updated)
}

func (h *MethodHandler) GetMethod(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	found, err := h.methodService.Get(c.Context(), userID, c.Params("id"))
	if err != nil {
		return methodError(c, err)
	}
	return c.JSON(found)
}

func (h *MethodHandler) ListMethods(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	p := pagination.ParseFromRequest(c)
	methods, err := h.methodService.List(c.Context(), userID, &p)
	if err != nil {
		return response.ServerError(c, "Failed to list methods")
	}
	return c.JSON(pagination.Response(p, methods))
}

func (h *MethodHandler) DeleteMethod(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	if err := h.methodService.Delete(c.Context(), userID, c.Params("id")); err != nil {
		return methodError(c, err)
	}
	return response.Success(c, "Method Deleted", nil)
}

func methodError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, method.ErrNotFound):
		return response.NotFound(c, "Method not found.")
	case errors.Is(err, method.ErrNotOwned):
		return response.Forbidden(c, "You do not own this method.")
	case errors.Is(err, method.ErrInvalidRegion):
		return response.BadRequest(c, "Invalid region.")
	case errors.Is(err, method.ErrTitleRequired),
		errors.Is(err, method.ErrNegativePercentage):
		return response.BadRequest(c, err.Error())
	default:
		return response.ServerError(c, "Failed to process method")
	}
}
