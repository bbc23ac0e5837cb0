package repository

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Korea-Traffic-Solution/backend/internal/domain/entity"
	"github.com/Korea-Traffic-Solution/backend/internal/domain/repository"
	"github.com/Korea-Traffic-Solution/backend/pkg/errors"
)

type gormReportRepository struct {
	db *gorm.DB
}

func NewGormReportRepository(db *gorm.DB) repository.ReportRepository {
	return &gormReportRepository{
		db: db,
	}
}

func (r *gormReportRepository) FindByID(ctx context.Context, id uint) (*entity.Report, error) {
	var report entity.Report
	if err := r.db.WithContext(ctx).First(&report, id).Error; err != nil {
		return nil, mapReportError(err)
	}

	return &report, nil
}

func (r *gormReportRepository) FindByDocumentLinkID(ctx context.Context, documentID string) (*entity.Report, error) {
	var report entity.Report
	err := r.db.WithContext(ctx).
		Where("firestore_doc_id = ?", documentID).
		First(&report).Error
	if err != nil {
		return nil, mapReportError(err)
	}

	return &report, nil
}

func (r *gormReportRepository) Save(ctx context.Context, report *entity.Report) error {
	if err := r.db.WithContext(ctx).Save(report).Error; err != nil {
		return errors.Unavailable("Failed to save report", err)
	}

	return nil
}

func (r *gormReportRepository) TransitionFromPending(ctx context.Context, report *entity.Report) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Report{}).
		Where("id = ? AND status = ?", report.ID, entity.ReportStatusPending).
		Updates(map[string]interface{}{
			"status":      report.Status,
			"reason":      report.Reason,
			"fine":        report.Fine,
			"approved_at": report.ApprovedAt,
			"admin_id":    report.AdminID,
		})
	if result.Error != nil {
		return false, errors.Unavailable("Failed to update report status", result.Error)
	}

	return result.RowsAffected == 1, nil
}

func (r *gormReportRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.Report{}).Count(&total).Error; err != nil {
		return 0, errors.Unavailable("Failed to count reports", err)
	}

	return total, nil
}

func (r *gormReportRepository) CountBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entity.Report{}).
		Where("reported_at BETWEEN ? AND ?", from, to).
		Count(&total).Error
	if err != nil {
		return 0, errors.Unavailable("Failed to count monthly reports", err)
	}

	return total, nil
}

func (r *gormReportRepository) CountByStatus(ctx context.Context, status entity.ReportStatus) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entity.Report{}).
		Where("status = ?", status).
		Count(&total).Error
	if err != nil {
		return 0, errors.Unavailable("Failed to count reports by status", err)
	}

	return total, nil
}

func (r *gormReportRepository) FindByAddressContaining(ctx context.Context, substr string, limit, offset int) ([]*entity.Report, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&entity.Report{}).
		Where("address LIKE ?", likeContains(substr))

	return r.page(query, limit, offset)
}

func (r *gormReportRepository) FindByAddressContainingAndDateBetween(ctx context.Context, substr string, from, to time.Time, limit, offset int) ([]*entity.Report, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&entity.Report{}).
		Where("address LIKE ?", likeContains(substr)).
		Where("reported_at BETWEEN ? AND ?", from, to)

	return r.page(query, limit, offset)
}

func (r *gormReportRepository) FindApprovedByBrand(ctx context.Context, brand string, approvedFrom, approvedTo *time.Time) ([]*entity.Report, error) {
	query := r.db.WithContext(ctx).
		Preload("Admin").
		Where("status = ? AND brand = ?", entity.ReportStatusApproved, brand)
	if approvedFrom != nil && approvedTo != nil {
		query = query.Where("approved_at BETWEEN ? AND ?", *approvedFrom, *approvedTo)
	}

	var reports []*entity.Report
	if err := query.Order("approved_at ASC, id ASC").Find(&reports).Error; err != nil {
		return nil, errors.Unavailable("Failed to load approved reports", err)
	}

	return reports, nil
}

// page counts the full match set, then loads one window ordered newest first
// with id as the tie breaker.
func (r *gormReportRepository) page(query *gorm.DB, limit, offset int) ([]*entity.Report, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Unavailable("Failed to count reports", err)
	}

	reports := []*entity.Report{}
	if offset < 0 || int64(offset) >= total {
		return reports, total, nil
	}

	err := query.
		Order("reported_at DESC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&reports).Error
	if err != nil {
		return nil, 0, errors.Unavailable("Failed to list reports", err)
	}

	return reports, total, nil
}

func mapReportError(err error) error {
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return errors.ReportNotFound(err)
	}
	return errors.Unavailable("Failed to load report", err)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likeContains(substr string) string {
	return "%" + likeEscaper.Replace(substr) + "%"
}
