package controller

import (
	"net/http"

	"fulfillment-portal/models"
	"fulfillment-portal/service"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

// PricingController handles HTTP requests for pricing tables and line quotes
type PricingController struct {
	service service.PricingServiceInterface
}

// NewPricingController creates a new PricingController
func NewPricingController(svc service.PricingServiceInterface) *PricingController {
	return &PricingController{service: svc}
}

// GetTables handles GET /api/pricing
func (pc *PricingController) GetTables(c echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return respondError(c, "GetTables", err)
	}

	tables, err := pc.service.Tables(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, "GetTables", err)
	}

	log.Printf("✅ GetTables: %d prep rules for user=%s", len(tables.PrepRules), userID)
	return c.JSON(http.StatusOK, tables)
}

// Quote handles POST /api/shipments/quote
// Reprices the submitted lines for the given shipment type, service and product type
func (pc *PricingController) Quote(c echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return respondError(c, "Quote", err)
	}

	var req models.QuoteRequest
	if err := c.Bind(&req); err != nil {
		log.Printf("❌ Quote: Failed to decode request body: %v", err)
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request payload"})
	}

	resp, err := pc.service.Quote(c.Request().Context(), userID, req)
	if err != nil {
		return respondError(c, "Quote", err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ToggleLine handles POST /api/shipments/lines/toggle
func (pc *PricingController) ToggleLine(c echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return respondError(c, "ToggleLine", err)
	}

	var req models.ToggleLineRequest
	if err := c.Bind(&req); err != nil {
		log.Printf("❌ ToggleLine: Failed to decode request body: %v", err)
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request payload"})
	}

	resp, err := pc.service.ToggleLine(c.Request().Context(), userID, req)
	if err != nil {
		return respondError(c, "ToggleLine", err)
	}
	return c.JSON(http.StatusOK, resp)
}
