package controller

import (
	"errors"
	"net/http"

	"fulfillment-portal/repository"
	"fulfillment-portal/service"
	"fulfillment-portal/shipment"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

// UserContextKey is where the JWT middleware stores the parsed token
const UserContextKey = "user"

// ErrorResponse is the JSON body of every failed request
type ErrorResponse struct {
	Error       string                     `json:"error"`
	Fields      shipment.FieldErrors       `json:"fields,omitempty"`
	StockErrors []shipment.ValidationError `json:"stockErrors,omitempty"`
}

// CurrentUserID returns the subject of the request's JWT, or "" when there is none
func CurrentUserID(c echo.Context) string {
	token, ok := c.Get(UserContextKey).(*jwt.Token)
	if !ok || token == nil {
		return ""
	}
	subject, err := token.Claims.GetSubject()
	if err != nil {
		return ""
	}
	return subject
}

// respondError maps service errors onto HTTP status codes
func respondError(c echo.Context, op string, err error) error {
	var fields shipment.FieldErrors
	var stock shipment.StockErrors

	switch {
	case errors.As(err, &fields):
		log.Printf("❌ %s: validation failed: %v", op, err)
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid shipment request", Fields: fields})
	case errors.Is(err, shipment.ErrInvalidRequest):
		log.Printf("❌ %s: bad request: %v", op, err)
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.As(err, &stock):
		log.Printf("❌ %s: insufficient stock: %v", op, err)
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "insufficient stock", StockErrors: stock})
	case errors.Is(err, service.ErrNotAuthenticated):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrProfileNotFound):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, service.ErrReportUnavailable):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrPersistence):
		log.Printf("❌ %s: %v", op, err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: service.ErrPersistence.Error()})
	}

	log.Printf("❌ %s: %v", op, err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func requireUser(c echo.Context) (string, error) {
	userID := CurrentUserID(c)
	if userID == "" {
		return "", service.ErrNotAuthenticated
	}
	return userID, nil
}
