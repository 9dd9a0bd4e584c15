package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment-portal/models"
	"fulfillment-portal/repository"
	"fulfillment-portal/utils"

	log "github.com/sirupsen/logrus"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePNG  = "image/png"
)

// ErrReportUnavailable is returned when a report output has no backing renderer or upload target
var ErrReportUnavailable = errors.New("report output is not configured")

// ReportService builds inventory reports in every supported output format
type ReportService struct {
	inventory *InventoryService
	users     repository.UserRepositoryInterface
	renderer  ReportRendererInterface
	drive     DriveServiceInterface
	folderID  string
	thumbs    *ThumbnailCache
	now       func() time.Time
}

// NewReportService creates a ReportService. renderer and drive may be nil, which
// disables image/PDF output and publishing respectively.
func NewReportService(inventory *InventoryService, users repository.UserRepositoryInterface, renderer ReportRendererInterface, drive DriveServiceInterface, folderID string, thumbs *ThumbnailCache) *ReportService {
	return &ReportService{
		inventory: inventory,
		users:     users,
		renderer:  renderer,
		drive:     drive,
		folderID:  folderID,
		thumbs:    thumbs,
		now:       time.Now,
	}
}

// Build loads the user's inventory into report data
func (s *ReportService) Build(ctx context.Context, userID string) (models.InventoryReportData, error) {
	rows, err := s.inventory.Rows(ctx, userID)
	if err != nil {
		return models.InventoryReportData{}, err
	}

	total := 0
	for _, row := range rows {
		total += row.Quantity
	}

	return models.InventoryReportData{
		Title:       "Inventory for " + s.ownerName(ctx, userID),
		GeneratedAt: s.now().UTC().Format("Jan 2, 2006 15:04 MST"),
		Rows:        rows,
		TotalUnits:  total,
	}, nil
}

func (s *ReportService) ownerName(ctx context.Context, userID string) string {
	if s.users == nil {
		return userID
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil || user == nil {
		return userID
	}
	if user.CompanyName != "" {
		return user.CompanyName
	}
	if user.Email != "" {
		return user.Email
	}
	return userID
}

// HTML renders the report as an HTML page
func (s *ReportService) HTML(ctx context.Context, userID string) (string, error) {
	data, err := s.Build(ctx, userID)
	if err != nil {
		return "", err
	}
	return RenderInventoryHTML(data)
}

// XLSX renders the report as a spreadsheet
func (s *ReportService) XLSX(ctx context.Context, userID string) ([]byte, error) {
	data, err := s.Build(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ExportInventoryXLSX(data)
}

// PNG renders the report page as an image
func (s *ReportService) PNG(ctx context.Context, userID string) ([]byte, error) {
	if s.renderer == nil {
		return nil, ErrReportUnavailable
	}
	html, err := s.HTML(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.renderer.RenderPNG(ctx, html)
}

// PDF renders the report page as a PDF document
func (s *ReportService) PDF(ctx context.Context, userID string) ([]byte, error) {
	if s.renderer == nil {
		return nil, ErrReportUnavailable
	}
	html, err := s.HTML(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.renderer.RenderPDF(ctx, html)
}

// Thumbnail renders the report image and shrinks it to a JPEG of the given size
func (s *ReportService) Thumbnail(ctx context.Context, userID, size string) ([]byte, error) {
	png, err := s.PNG(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.thumbs != nil {
		if cached, ok := s.thumbs.Get(png, size); ok {
			log.Printf("✓ Thumbnail cache hit for user %s", userID)
			return cached, nil
		}
	}

	thumb, err := OptimizeImage(png, size)
	if err != nil {
		return nil, err
	}

	if s.thumbs != nil {
		if err := s.thumbs.Put(png, size, thumb); err != nil {
			log.Printf("⚠️  Failed to cache thumbnail: %v", err)
		}
	}
	return thumb, nil
}

// Publish uploads the spreadsheet, and the rendered image when a renderer is
// configured, to the report folder on Drive
func (s *ReportService) Publish(ctx context.Context, userID string) (*models.PublishReportResponse, error) {
	if s.drive == nil {
		return nil, ErrReportUnavailable
	}

	data, err := s.Build(ctx, userID)
	if err != nil {
		return nil, err
	}

	xlsx, err := ExportInventoryXLSX(data)
	if err != nil {
		return nil, err
	}

	owner := s.ownerName(ctx, userID)
	now := s.now()

	sheetID, err := s.drive.UploadFile(ctx, s.folderID, utils.BuildReportFileName(owner, now, "xlsx"), mimeXLSX, xlsx)
	if err != nil {
		return nil, fmt.Errorf("failed to publish spreadsheet: %w", err)
	}

	resp := &models.PublishReportResponse{
		SpreadsheetFileID: sheetID,
		Rows:              len(data.Rows),
	}

	if s.renderer == nil {
		return resp, nil
	}

	html, err := RenderInventoryHTML(data)
	if err != nil {
		return nil, err
	}
	png, err := s.renderer.RenderPNG(ctx, html)
	if err != nil {
		log.Printf("⚠️  Report image skipped for user %s: %v", userID, err)
		return resp, nil
	}

	imageID, err := s.drive.UploadFile(ctx, s.folderID, utils.BuildReportFileName(owner, now, "png"), mimePNG, png)
	if err != nil {
		log.Printf("⚠️  Report image upload failed for user %s: %v", userID, err)
		return resp, nil
	}
	resp.ImageFileID = imageID

	log.Printf("✅ Published inventory report for user %s (%d rows)", userID, resp.Rows)
	return resp, nil
}
