package handlers

import (
	"errors"

	"shiprate/internal/config"
	"shiprate/internal/models"
	"shiprate/internal/services/settings"
	"shiprate/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	settingsService *settings.Service
}

func NewSettingsHandler(settingsService *settings.Service) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// settingsOwner resolves which record the caller operates on. When the
// admin-only flag is enabled all settings collapse to a single shared record.
func settingsOwner(userID string) string {
	if config.AdminOnlySettings() {
		return config.AdminSettingsOwner
	}
	return userID
}

func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	loaded, err := h.settingsService.GetOrCreate(c.Context(), settingsOwner(userID))
	if err != nil {
		return response.ServerError(c, "Failed to load settings")
	}
	return c.JSON(loaded)
}

func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	if config.AdminOnlySettings() && !claims.IsAdmin() {
		return response.Forbidden(c, "Only admins can update settings.")
	}

	var data models.UpdateSettings
	if err := c.BodyParser(&data); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	updated, err := h.settingsService.Update(c.Context(), settingsOwner(claims.UserID), data)
	if err != nil {
		if errors.Is(err, settings.ErrCurrencyRequired) {
			return response.BadRequest(c, err.Error())
		}
		return response.ServerError(c, "Failed to update settings")
	}
	return c.JSON(updated)
}

// GenerateAPIKey issues a fresh storefront API key. The plaintext key is
// only ever returned here.
func (h *SettingsHandler) GenerateAPIKey(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	key, err := h.settingsService.GenerateAPIKey(c.Context(), userID)
	if err != nil {
		return response.ServerError(c, "Failed to generate API key")
	}
	return response.Success(c, "API key generated", fiber.Map{"api_key": key})
}
