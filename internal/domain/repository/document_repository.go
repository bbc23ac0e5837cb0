package repository

import (
	"context"

	"github.com/Korea-Traffic-Solution/backend/internal/domain/entity"
)

// DocumentRepository reads and writes one collection of the document store.
// No schema is enforced; callers read fields through entity.Fields accessors.
type DocumentRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Document, error)
	ListAll(ctx context.Context) ([]*entity.Document, error)
	Upsert(ctx context.Context, id string, fields entity.Fields) error
	QueryByField(ctx context.Context, name string, value interface{}) ([]*entity.Document, error)
}
