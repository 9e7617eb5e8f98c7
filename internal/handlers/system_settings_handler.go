package handlers

import (
	"net/http"

	"github.com/ArowuTest/oripay-exchange-backend/internal/middleware"
	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/ArowuTest/oripay-exchange-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// SystemSettingsHandler handles platform settings and currency/country reference data
type SystemSettingsHandler struct {
	settingsService services.SystemSettingsService
}

// NewSystemSettingsHandler creates a new SystemSettingsHandler
func NewSystemSettingsHandler(settingsService services.SystemSettingsService) *SystemSettingsHandler {
	return &SystemSettingsHandler{
		settingsService: settingsService,
	}
}

// AdminSettings handles GET /admin/settings
func (h *SystemSettingsHandler) AdminSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.settingsService.AdminSettings(c.Request.Context()))
}

// GetSettings handles GET /api/v1/admin/settings
func (h *SystemSettingsHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.settingsService.GetSettings(c.Request.Context()))
}

// UpdateSettings handles PUT /api/v1/admin/settings
func (h *SystemSettingsHandler) UpdateSettings(c *gin.Context) {
	var settings models.SystemSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		badRequest(c, "Save Failed", err)
		return
	}

	updatedBy := ""
	if user := middleware.CurrentUser(c); user != nil {
		updatedBy = user.UID
	}
	if err := h.settingsService.UpdateSettings(c.Request.Context(), &settings, updatedBy); err != nil {
		respondError(c, "Save Failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings, "notification": success("Settings Saved", "Platform settings have been updated.")})
}

// ListCurrencies handles GET /api/v1/currencies and GET /api/v1/admin/currencies
func (h *SystemSettingsHandler) ListCurrencies(activeOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		currencies, err := h.settingsService.ListCurrencies(c.Request.Context(), activeOnly)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currencies: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, currencies)
	}
}

// SaveCurrency handles PUT /api/v1/admin/currencies/:code
func (h *SystemSettingsHandler) SaveCurrency(c *gin.Context) {
	var req models.CurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Save Failed", err)
		return
	}
	currency, err := h.settingsService.SaveCurrency(c.Request.Context(), c.Param("code"), &req)
	if err != nil {
		respondError(c, "Save Failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"currency": currency, "notification": success("Currency Saved", currency.Code+" has been saved.")})
}

// ToggleCurrency handles POST /api/v1/admin/currencies/:code/toggle
func (h *SystemSettingsHandler) ToggleCurrency(c *gin.Context) {
	currency, err := h.settingsService.ToggleCurrency(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, "Update Failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"currency": currency})
}

// DeleteCurrency handles DELETE /api/v1/admin/currencies/:code
func (h *SystemSettingsHandler) DeleteCurrency(c *gin.Context) {
	if err := h.settingsService.DeleteCurrency(c.Request.Context(), c.Param("code")); err != nil {
		respondError(c, "Delete Failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notification": success("Currency Deleted", "The currency has been removed.")})
}

// ListCountries handles GET /api/v1/countries and GET /api/v1/admin/countries
func (h *SystemSettingsHandler) ListCountries(activeOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		countries, err := h.settingsService.ListCountries(c.Request.Context(), activeOnly)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list countries: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, countries)
	}
}

// SaveCountry handles PUT /api/v1/admin/countries/:code
func (h *SystemSettingsHandler) SaveCountry(c *gin.Context) {
	var req models.CountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Save Failed", err)
		return
	}
	country, err := h.settingsService.SaveCountry(c.Request.Context(), c.Param("code"), &req)
	if err != nil {
		respondError(c, "Save Failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"country": country, "notification": success("Country Saved", country.Name+" has been saved.")})
}

// ToggleCountry handles POST /api/v1/admin/countries/:code/toggle
func (h *SystemSettingsHandler) ToggleCountry(c *gin.Context) {
	country, err := h.settingsService.ToggleCountry(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, "Update Failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"country": country})
}

// DeleteCountry handles DELETE /api/v1/admin/countries/:code
func (h *SystemSettingsHandler) DeleteCountry(c *gin.Context) {
	if err := h.settingsService.DeleteCountry(c.Request.Context(), c.Param("code")); err != nil {
		respondError(c, "Delete Failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notification": success("Country Deleted", "The country has been removed.")})
}
