package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/Korea-Traffic-Solution/backend/internal/domain/entity"
	"github.com/Korea-Traffic-Solution/backend/internal/domain/repository"
	"github.com/Korea-Traffic-Solution/backend/internal/infrastructure/metrics"
	"github.com/Korea-Traffic-Solution/backend/pkg/errors"
	"github.com/Korea-Traffic-Solution/backend/pkg/logger"
)

// ApprovalUseCase is the only writer of report status transitions.
type ApprovalUseCase struct {
	reportRepo repository.ReportRepository
	snapshots  repository.DocumentRepository
	guard      *AuthorizationGuard
	metrics    *metrics.Metrics
	now        func() time.Time
}

func NewApprovalUseCase(
	reportRepo repository.ReportRepository,
	snapshots repository.DocumentRepository,
	guard *AuthorizationGuard,
	m *metrics.Metrics,
) *ApprovalUseCase {
	return &ApprovalUseCase{
		reportRepo: reportRepo,
		snapshots:  snapshots,
		guard:      guard,
		metrics:    m,
		now:        time.Now,
	}
}

type ProcessReportInput struct {
	Approve bool   `json:"approve"`
	Fine    *int   `json:"fine" validate:"omitempty,min=0"`
	Reason  string `json:"reason" validate:"required,notblank"`
}

func (in ProcessReportInput) validate() error {
	if strings.TrimSpace(in.Reason) == "" {
		return errors.Validation("reason is required")
	}
	if in.Approve {
		if in.Fine == nil {
			return errors.Validation("fine is required when approving")
		}
		if *in.Fine < 0 {
			return errors.Validation("fine must not be negative")
		}
	}
	return nil
}

// Process applies an approve or reject decision to a pending report. key is
// the report's document link id or, failing that, its numeric id.
func (uc *ApprovalUseCase) Process(ctx context.Context, admin *entity.Admin, key string, input ProcessReportInput) (*entity.Report, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, errors.Unauthorized("Admin not authenticated", nil)
	}

	report, err := uc.load(ctx, key)
	if err != nil {
		return nil, err
	}

	if err := uc.guard.Authorize(ctx, admin, report); err != nil {
		return nil, err
	}

	if report.Status.IsTerminal() {
		return nil, errors.Conflict("report has already been processed")
	}

	if input.Approve {
		report.Approve(input.Reason, *input.Fine, admin.ID, uc.now())
	} else {
		report.Reject(input.Reason, admin.ID)
	}

	applied, err := uc.reportRepo.TransitionFromPending(ctx, report)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, errors.Conflict("report has already been processed")
	}

	decision := "rejected"
	if input.Approve {
		decision = "approved"
	}
	uc.metrics.IncrementProcessed(decision)
	logger.Info("Report %d %s by admin %s", report.ID, decision, admin.LoginID)

	if !input.Approve {
		return report, nil
	}

	// The relational transition is committed; a failed snapshot is reported, not rolled back.
	fields := snapshotFields(report)
	fields[entity.FieldStatus] = string(report.Status)
	fields[entity.FieldApprovedAt] = *report.ApprovedAt
	if err := uc.snapshots.Upsert(ctx, snapshotKey(report), fields); err != nil {
		uc.metrics.IncrementWriteBackFailure("approve")
		logger.Error("Report %d approved but snapshot write failed: %v", report.ID, err)
		return report, err
	}

	return report, nil
}

func (uc *ApprovalUseCase) load(ctx context.Context, key string) (*entity.Report, error) {
	report, err := uc.reportRepo.FindByDocumentLinkID(ctx, key)
	if err == nil {
		return report, nil
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}

	id, parseErr := strconv.ParseUint(key, 10, 64)
	if parseErr != nil {
		return nil, errors.ReportNotFound(err)
	}

	report, err = uc.reportRepo.FindByID(ctx, uint(id))
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.ReportNotFound(err)
		}
		return nil, err
	}
	return report, nil
}
