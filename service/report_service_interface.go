package service

import (
	"context"

	"fulfillment-portal/models"
)

// ReportServiceInterface defines the contract for inventory report outputs
type ReportServiceInterface interface {
	HTML(ctx context.Context, userID string) (string, error)
	XLSX(ctx context.Context, userID string) ([]byte, error)
	PNG(ctx context.Context, userID string) ([]byte, error)
	PDF(ctx context.Context, userID string) ([]byte, error)
	Thumbnail(ctx context.Context, userID, size string) ([]byte, error)
	Publish(ctx context.Context, userID string) (*models.PublishReportResponse, error)
}

var _ ReportServiceInterface = (*ReportService)(nil)
