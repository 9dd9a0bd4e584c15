package controller

import (
	"context"
	"net/http"

	"fulfillment-portal/service"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePNG  = "image/png"
	mimePDF  = "application/pdf"
	mimeJPEG = "image/jpeg"
)

// InventoryController handles the read-only inventory view and its report exports
type InventoryController struct {
	inventory service.InventoryServiceInterface
	reports   service.ReportServiceInterface
}

// NewInventoryController creates a new InventoryController
func NewInventoryController(inventory service.InventoryServiceInterface, reports service.ReportServiceInterface) *InventoryController {
	return &InventoryController{
		inventory: inventory,
		reports:   reports,
	}
}

// List handles GET /api/inventory
func (ic *InventoryController) List(c echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return respondError(c, "ListInventory", err)
	}

	rows, err := ic.inventory.Rows(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, "ListInventory", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// Selectable handles GET /api/inventory/selectable?shipmentType=box&palletSubType=forwarding
func (ic *InventoryController) Selectable(c echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return respondError(c, "Selectable", err)
	}

	items, err := ic.inventory.Selectable(c.Request().Context(), userID, c.QueryParam("shipmentType"), c.QueryParam("palletSubType"))
	if err != nil {
		return respondError(c, "Selectable", err)
	}
	return c.JSON(http.StatusOK, items)
}

// ExportXLSX handles GET /api/inventory/export.xlsx
func (ic *InventoryController) ExportXLSX(c echo.Context) error {
	return ic.binary(c, "ExportXLSX", mimeXLSX, "inventory.xlsx", ic.reports.XLSX)
}

// ReportPNG handles GET /api/inventory/report.png
func (ic *InventoryController) ReportPNG(c echo.Context) error {
	return ic.binary(c, "ReportPNG", mimePNG, "", ic.reports.PNG)
}

// ReportPDF handles GET /api/inventory/report.pdf
func (ic *InventoryController) ReportPDF(c echo.Context) error {
	return ic.binary(c, "ReportPDF", mimePDF, "inventory.pdf", ic.reports.PDF)
}

// Thumbnail handles GET /api/inventory/thumbnail.jpg?size=thumb|medium
func (ic *InventoryController) Thumbnail(c echo.Context) error {
	size := c.QueryParam("size")
	if size == "" {
		size = "thumb"
	}
	return ic.binary(c, "Thumbnail", mimeJPEG, "", func(ctx context.Context, userID string) ([]byte, error) {
		return ic.reports.Thumbnail(ctx, userID, size)
	})
}

// ReportHTML handles GET /api/inventory/report.html
func (ic *InventoryController) ReportHTML(c echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return respondError(c, "ReportHTML", err)
	}

	html, err := ic.reports.HTML(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, "ReportHTML", err)
	}
	return c.HTML(http.StatusOK, html)
}

// PublishReport handles POST /api/inventory/report/publish
// Uploads the spreadsheet, and the report image when available, to Drive
func (ic *InventoryController) PublishReport(c echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return respondError(c, "PublishReport", err)
	}

	resp, err := ic.reports.Publish(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, "PublishReport", err)
	}

	log.Printf("✅ PublishReport: uploaded %d rows for user=%s", resp.Rows, userID)
	return c.JSON(http.StatusOK, resp)
}

func (ic *InventoryController) binary(c echo.Context, op, contentType, attachment string, render func(ctx context.Context, userID string) ([]byte, error)) error {
	userID, err := requireUser(c)
	if err != nil {
		return respondError(c, op, err)
	}

	data, err := render(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, op, err)
	}

	if attachment != "" {
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+attachment+`"`)
	}
	log.Printf("✅ %s: %d bytes for user=%s", op, len(data), userID)
	return c.Blob(http.StatusOK, contentType, data)
}
