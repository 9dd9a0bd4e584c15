package router

import (
	"net/http"

	"fulfillment-portal/app/controller"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Controllers struct {
	Pricing   *controller.PricingController
	Shipment  *controller.ShipmentController
	Inventory *controller.InventoryController
}

// pingHandler handles GET /ping
func pingHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// SetupRoutes builds the echo instance. Everything under /api requires an HS256 JWT
// whose subject is the portal user id.
func SetupRoutes(controllers *Controllers, jwtSecret string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Ping endpoint
	e.GET("/ping", pingHandler)

	api := e.Group("/api")
	api.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(jwtSecret),
		ContextKey: controller.UserContextKey,
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, controller.ErrorResponse{Error: "missing or invalid token"})
		},
	}))

	// Pricing routes
	api.GET("/pricing", controllers.Pricing.GetTables)
	api.POST("/shipments/quote", controllers.Pricing.Quote)
	api.POST("/shipments/lines/toggle", controllers.Pricing.ToggleLine)

	// Inventory routes
	api.GET("/inventory", controllers.Inventory.List)
	api.GET("/inventory/selectable", controllers.Inventory.Selectable)
	api.GET("/inventory/export.xlsx", controllers.Inventory.ExportXLSX)
	api.GET("/inventory/report.html", controllers.Inventory.ReportHTML)
	api.GET("/inventory/report.png", controllers.Inventory.ReportPNG)
	api.GET("/inventory/report.pdf", controllers.Inventory.ReportPDF)
	api.GET("/inventory/thumbnail.jpg", controllers.Inventory.Thumbnail)
	api.POST("/inventory/report/publish", controllers.Inventory.PublishReport)

	// Shipment request routes
	api.POST("/shipment-requests", controllers.Shipment.Submit)
	api.GET("/shipment-requests/:id", controllers.Shipment.Get)

	return e
}
