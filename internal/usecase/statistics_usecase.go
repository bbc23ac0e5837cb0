package usecase

import (
	"context"
	"time"

	"github.com/Korea-Traffic-Solution/backend/internal/domain/entity"
	"github.com/Korea-Traffic-Solution/backend/internal/domain/repository"
	"github.com/Korea-Traffic-Solution/backend/internal/domain/service"
	"github.com/Korea-Traffic-Solution/backend/internal/infrastructure/metrics"
)

type StatisticsUseCase struct {
	reportRepo  repository.ReportRepository
	conclusions repository.DocumentRepository
	guard       *AuthorizationGuard
	metrics     *metrics.Metrics
	now         func() time.Time
}

func NewStatisticsUseCase(
	reportRepo repository.ReportRepository,
	conclusions repository.DocumentRepository,
	guard *AuthorizationGuard,
	m *metrics.Metrics,
) *StatisticsUseCase {
	return &StatisticsUseCase{
		reportRepo:  reportRepo,
		conclusions: conclusions,
		guard:       guard,
		metrics:     m,
		now:         time.Now,
	}
}

type StatisticsInput struct {
	Admin  *entity.Admin
	Mine   bool
	Region string
}

// GetStatistics counts conclusion documents in a single scan.
func (uc *StatisticsUseCase) GetStatistics(ctx context.Context, input StatisticsInput) (*entity.ReportStatistics, error) {
	stats := &entity.ReportStatistics{}

	token, matchNone, err := uc.guard.ListFilter(ctx, input.Admin, input.Mine, input.Region)
	if err != nil {
		return nil, err
	}
	if matchNone {
		return stats, nil
	}

	docs, err := uc.conclusions.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	for _, doc := range docs {
		f := doc.Fields
		if !matchesJurisdiction(token, f.String(entity.FieldRegion, "")) {
			continue
		}
		stats.Total++

		at, strategy := service.ParseReportedAt(f.Raw(entity.FieldDate))
		uc.metrics.IncrementDateStrategy(string(strategy))
		if service.WithinMonth(at, now, service.KST) {
			stats.Monthly++
		}

		switch f.String(entity.FieldResult, "") {
		case entity.ResultApproved:
			stats.Approved++
		case entity.ResultRejected:
			stats.Rejected++
		}
	}

	return stats, nil
}

// GetLocalStatistics counts the locally created reports.
func (uc *StatisticsUseCase) GetLocalStatistics(ctx context.Context) (*entity.ReportStatistics, error) {
	total, err := uc.reportRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	from, to := service.MonthBounds(uc.now(), service.KST)
	monthly, err := uc.reportRepo.CountBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	approved, err := uc.reportRepo.CountByStatus(ctx, entity.ReportStatusApproved)
	if err != nil {
		return nil, err
	}

	rejected, err := uc.reportRepo.CountByStatus(ctx, entity.ReportStatusRejected)
	if err != nil {
		return nil, err
	}

	return &entity.ReportStatistics{
		Total:    total,
		Monthly:  monthly,
		Approved: approved,
		Rejected: rejected,
	}, nil
}
