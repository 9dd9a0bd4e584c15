package controller

import (
	"net/http"

	"fulfillment-portal/models"
	"fulfillment-portal/service"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

// ShipmentController handles shipment request submissions
type ShipmentController struct {
	service service.ShipmentServiceInterface
}

// NewShipmentController creates a new ShipmentController
func NewShipmentController(svc service.ShipmentServiceInterface) *ShipmentController {
	return &ShipmentController{service: svc}
}

// Submit handles POST /api/shipment-requests
// Responds 201 with the stored record. Nothing is stored when validation or the stock check fails.
func (sc *ShipmentController) Submit(c echo.Context) error {
	log.Printf("📥 Submit: Received %s request to %s", c.Request().Method, c.Path())

	var form models.ShipmentForm
	if err := c.Bind(&form); err != nil {
		log.Printf("❌ Submit: Failed to decode request body: %v", err)
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request payload"})
	}

	record, err := sc.service.Submit(c.Request().Context(), CurrentUserID(c), form)
	if err != nil {
		return respondError(c, "Submit", err)
	}

	log.Printf("✅ Submit: created shipment request id=%s", record.ID)
	return c.JSON(http.StatusCreated, record)
}

// Get handles GET /api/shipment-requests/:id
func (sc *ShipmentController) Get(c echo.Context) error {
	record, err := sc.service.Get(c.Request().Context(), CurrentUserID(c), c.Param("id"))
	if err != nil {
		return respondError(c, "GetShipmentRequest", err)
	}
	return c.JSON(http.StatusOK, record)
}
