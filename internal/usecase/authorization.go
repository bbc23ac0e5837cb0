package usecase

import (
	"context"
	"strings"

	"github.com/Korea-Traffic-Solution/backend/internal/domain/entity"
	"github.com/Korea-Traffic-Solution/backend/internal/domain/repository"
	"github.com/Korea-Traffic-Solution/backend/internal/domain/service"
	"github.com/Korea-Traffic-Solution/backend/internal/infrastructure/metrics"
	"github.com/Korea-Traffic-Solution/backend/pkg/errors"
)

// AuthorizationGuard scopes admins to the reports inside their jurisdiction.
// The jurisdiction comes from the manager directory, never from the request.
type AuthorizationGuard struct {
	managers repository.DocumentRepository
	metrics  *metrics.Metrics
}

func NewAuthorizationGuard(managers repository.DocumentRepository, m *metrics.Metrics) *AuthorizationGuard {
	return &AuthorizationGuard{
		managers: managers,
		metrics:  m,
	}
}

// RegionOf looks up the raw jurisdiction label registered for admin.
func (g *AuthorizationGuard) RegionOf(ctx context.Context, admin *entity.Admin) (string, error) {
	if admin == nil {
		return "", errors.Unauthorized("Admin not authenticated", nil)
	}

	docs, err := g.managers.QueryByField(ctx, entity.FieldRegion, admin.Region)
	if err != nil {
		return "", err
	}

	for _, doc := range docs {
		if region := doc.Fields.NonBlank(entity.FieldRegion, ""); region != "" {
			return region, nil
		}
	}

	return "", errors.AdminNotFound(nil)
}

// Jurisdiction returns the normalized district token of admin.
func (g *AuthorizationGuard) Jurisdiction(ctx context.Context, admin *entity.Admin) (string, error) {
	region, err := g.RegionOf(ctx, admin)
	if err != nil {
		return "", err
	}
	return service.NormalizeRegion(region), nil
}

// Authorize fails with FORBIDDEN_ACCESS unless the report address contains the
// admin's jurisdiction token.
func (g *AuthorizationGuard) Authorize(ctx context.Context, admin *entity.Admin, report *entity.Report) error {
	token, err := g.Jurisdiction(ctx, admin)
	if err != nil {
		return err
	}

	var address *string
	if report != nil {
		address = report.Address
	}

	if !Allows(token, address) {
		g.metrics.IncrementAuthorization("denied")
		return errors.ForbiddenAccess()
	}

	g.metrics.IncrementAuthorization("allowed")
	return nil
}

// Allows is the jurisdiction rule: exact, case-sensitive containment of the
// token in the address. An unset address or an empty token never matches.
func Allows(token string, address *string) bool {
	if address == nil || token == "" {
		return false
	}
	return strings.Contains(*address, token)
}

// ListFilter resolves the token used to filter listings. With mine set the
// admin's own jurisdiction is used; a directory miss yields matchNone instead
// of an error. Otherwise a non-empty region is normalized, and an empty one
// disables filtering.
func (g *AuthorizationGuard) ListFilter(ctx context.Context, admin *entity.Admin, mine bool, region string) (token string, matchNone bool, err error) {
	if mine {
		token, err = g.Jurisdiction(ctx, admin)
		if err != nil {
			if errors.Is(err, errors.CodeAdminNotFound) {
				return "", true, nil
			}
			return "", false, err
		}
		return token, token == "", nil
	}

	region = strings.TrimSpace(region)
	if region == "" {
		return "", false, nil
	}
	return service.NormalizeRegion(region), false, nil
}

// matchesJurisdiction applies the list filter to a document region label.
func matchesJurisdiction(token, region string) bool {
	if token == "" {
		return true
	}
	return strings.Contains(service.NormalizeRegion(region), token)
}
