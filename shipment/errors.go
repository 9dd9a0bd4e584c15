package shipment

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidRequest    = errors.New("invalid shipment request")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// FieldError is a single schema validation failure
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors collects every schema failure of a form
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s %s", fe.Field, fe.Message))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidRequest, strings.Join(parts, "; "))
}

func (e FieldErrors) Unwrap() error { return ErrInvalidRequest }

// ValidationError reports one line that asks for more than is in stock
type ValidationError struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Requested   int    `json:"requested"`
	Available   int    `json:"available"`
	Unit        string `json:"unit"`
	Message     string `json:"message"`
}

// StockErrors is the batch of stock failures that blocks a submission
type StockErrors []ValidationError

func (e StockErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, ve := range e {
		parts = append(parts, ve.Message)
	}
	return fmt.Sprintf("%s: %s", ErrInsufficientStock, strings.Join(parts, "; "))
}

func (e StockErrors) Unwrap() error { return ErrInsufficientStock }
