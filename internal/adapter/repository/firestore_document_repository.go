package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Korea-Traffic-Solution/backend/internal/domain/entity"
	"github.com/Korea-Traffic-Solution/backend/internal/domain/repository"
	"github.com/Korea-Traffic-Solution/backend/pkg/errors"
)

type firestoreDocumentRepository struct {
	client     *firestore.Client
	collection string
}

// NewFirestoreDocumentRepository binds a gateway to one Firestore collection.
func NewFirestoreDocumentRepository(client *firestore.Client, collection string) repository.DocumentRepository {
	return &firestoreDocumentRepository{
		client:     client,
		collection: collection,
	}
}

func (r *firestoreDocumentRepository) GetByID(ctx context.Context, id string) (*entity.Document, error) {
	doc, err := r.client.Collection(r.collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound(r.collection+" document", err)
		}
		return nil, errors.Unavailable("Failed to get "+r.collection+" document", err)
	}

	return toDocument(doc), nil
}

func (r *firestoreDocumentRepository) ListAll(ctx context.Context) ([]*entity.Document, error) {
	iter := r.client.Collection(r.collection).Documents(ctx)
	defer iter.Stop()

	return collect(iter, r.collection)
}

// Upsert merges fields into the document, creating it when absent. Repeating
// the same write leaves the document unchanged.
func (r *firestoreDocumentRepository) Upsert(ctx context.Context, id string, fields entity.Fields) error {
	_, err := r.client.Collection(r.collection).Doc(id).Set(ctx, map[string]interface{}(fields), firestore.MergeAll)
	if err != nil {
		return errors.Unavailable("Failed to write "+r.collection+" document", err)
	}

	return nil
}

func (r *firestoreDocumentRepository) QueryByField(ctx context.Context, name string, value interface{}) ([]*entity.Document, error) {
	iter := r.client.Collection(r.collection).Where(name, "==", value).Documents(ctx)
	defer iter.Stop()

	return collect(iter, r.collection)
}

func collect(iter *firestore.DocumentIterator, collection string) ([]*entity.Document, error) {
	var docs []*entity.Document
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Unavailable("Failed to iterate "+collection+" documents", err)
		}
		docs = append(docs, toDocument(doc))
	}

	return docs, nil
}

func toDocument(doc *firestore.DocumentSnapshot) *entity.Document {
	data := doc.Data()
	if data == nil {
		data = map[string]interface{}{}
	}
	return &entity.Document{
		ID:     doc.Ref.ID,
		Fields: entity.Fields(data),
	}
}
