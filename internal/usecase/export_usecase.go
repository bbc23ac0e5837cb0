package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/Korea-Traffic-Solution/backend/internal/domain/repository"
	"github.com/Korea-Traffic-Solution/backend/internal/domain/service"
	"github.com/Korea-Traffic-Solution/backend/internal/infrastructure/export"
	"github.com/Korea-Traffic-Solution/backend/pkg/errors"
)

type ExportUseCase struct {
	reportRepo repository.ReportRepository
}

func NewExportUseCase(reportRepo repository.ReportRepository) *ExportUseCase {
	return &ExportUseCase{
		reportRepo: reportRepo,
	}
}

// ExportApprovedReports renders the approved reports of brand as an xlsx
// workbook. date, when given as YYYY-MM-DD, limits the export to reports
// approved on that KST day.
func (uc *ExportUseCase) ExportApprovedReports(ctx context.Context, brand, date string) ([]byte, error) {
	if strings.TrimSpace(brand) == "" {
		return nil, errors.Validation("brand is required")
	}

	var from, to *time.Time
	if date != "" {
		day, err := time.ParseInLocation("2006-01-02", date, service.KST)
		if err != nil {
			return nil, errors.Validation("date must be formatted as YYYY-MM-DD")
		}
		end := day.AddDate(0, 0, 1).Add(-time.Nanosecond)
		from, to = &day, &end
	}

	reports, err := uc.reportRepo.FindApprovedByBrand(ctx, brand, from, to)
	if err != nil {
		return nil, err
	}

	data, err := export.ApprovedReportsWorkbook(reports)
	if err != nil {
		return nil, errors.Internal("Failed to render workbook", err)
	}

	return data, nil
}
