package repository

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/Korea-Traffic-Solution/backend/internal/domain/entity"
	"github.com/Korea-Traffic-Solution/backend/internal/domain/repository"
	"github.com/Korea-Traffic-Solution/backend/pkg/errors"
)

type gormAdminRepository struct {
	db *gorm.DB
}

func NewGormAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &gormAdminRepository{
		db: db,
	}
}

func (r *gormAdminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	if err := r.db.WithContext(ctx).Create(admin).Error; err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.Conflict("login id already in use")
		}
		return errors.Unavailable("Failed to create admin", err)
	}

	return nil
}

func (r *gormAdminRepository) FindByLoginID(ctx context.Context, loginID string) (*entity.Admin, error) {
	var admin entity.Admin
	err := r.db.WithContext(ctx).
		Where("login_id = ?", loginID).
		First(&admin).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.AdminNotFound(err)
		}
		return nil, errors.Unavailable("Failed to load admin", err)
	}

	return &admin, nil
}
