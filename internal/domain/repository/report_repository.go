package repository

import (
	"context"
	"time"

	"github.com/Korea-Traffic-Solution/backend/internal/domain/entity"
)

// ReportRepository is the relational store of locally owned reports.
type ReportRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Report, error)
	FindByDocumentLinkID(ctx context.Context, documentID string) (*entity.Report, error)
	Save(ctx context.Context, report *entity.Report) error
	// TransitionFromPending applies a terminal transition only while the stored
	// status is still PENDING. It returns false when another writer got there first.
	TransitionFromPending(ctx context.Context, report *entity.Report) (bool, error)
	CountAll(ctx context.Context) (int64, error)
	CountBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountByStatus(ctx context.Context, status entity.ReportStatus) (int64, error)
	FindByAddressContaining(ctx context.Context, substr string, limit, offset int) ([]*entity.Report, int64, error)
	FindByAddressContainingAndDateBetween(ctx context.Context, substr string, from, to time.Time, limit, offset int) ([]*entity.Report, int64, error)
	FindApprovedByBrand(ctx context.Context, brand string, approvedFrom, approvedTo *time.Time) ([]*entity.Report, error)
}

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	FindByLoginID(ctx context.Context, loginID string) (*entity.Admin, error)
}
