package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Korea-Traffic-Solution/backend/internal/domain/entity"
	"github.com/Korea-Traffic-Solution/backend/pkg/errors"
)

type fakeDocuments struct {
	mu       sync.Mutex
	order    []string
	docs     map[string]entity.Fields
	upserts  int
	failNext error
	listErr  error
}

func newFakeDocuments() *fakeDocuments {
	return &fakeDocuments{docs: map[string]entity.Fields{}}
}

func (f *fakeDocuments) put(id string, fields entity.Fields) {
	if _, ok := f.docs[id]; !ok {
		f.order = append(f.order, id)
	}
	f.docs[id] = fields
}

func (f *fakeDocuments) GetByID(ctx context.Context, id string) (*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fields, ok := f.docs[id]
	if !ok {
		return nil, errors.NotFound("document", nil)
	}
	return &entity.Document{ID: id, Fields: fields}, nil
}

func (f *fakeDocuments) ListAll(ctx context.Context) ([]*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	docs := make([]*entity.Document, 0, len(f.order))
	for _, id := range f.order {
		docs = append(docs, &entity.Document{ID: id, Fields: f.docs[id]})
	}
	return docs, nil
}

func (f *fakeDocuments) Upsert(ctx context.Context, id string, fields entity.Fields) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return err
	}
	f.upserts++
	merged := entity.Fields{}
	for k, v := range f.docs[id] {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	f.put(id, merged)
	return nil
}

func (f *fakeDocuments) QueryByField(ctx context.Context, name string, value interface{}) ([]*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var docs []*entity.Document
	for _, id := range f.order {
		if f.docs[id][name] == value {
			docs = append(docs, &entity.Document{ID: id, Fields: f.docs[id]})
		}
	}
	return docs, nil
}

type fakeReports struct {
	mu      sync.Mutex
	reports []*entity.Report
	nextID  uint
}

func newFakeReports(reports ...*entity.Report) *fakeReports {
	f := &fakeReports{}
	for _, r := range reports {
		_ = f.Save(context.Background(), r)
	}
	return f
}

func (f *fakeReports) FindByID(ctx context.Context, id uint) (*entity.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.reports {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, errors.ReportNotFound(nil)
}

func (f *fakeReports) FindByDocumentLinkID(ctx context.Context, documentID string) (*entity.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.reports {
		if r.DocumentID() == documentID {
			cp := *r
			return &cp, nil
		}
	}
	return nil, errors.ReportNotFound(nil)
}

func (f *fakeReports) Save(ctx context.Context, report *entity.Report) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if report.ID == 0 {
		f.nextID++
		report.ID = f.nextID
	} else if report.ID > f.nextID {
		f.nextID = report.ID
	}
	for i, r := range f.reports {
		if r.ID == report.ID {
			cp := *report
			f.reports[i] = &cp
			return nil
		}
	}
	cp := *report
	f.reports = append(f.reports, &cp)
	return nil
}

func (f *fakeReports) TransitionFromPending(ctx context.Context, report *entity.Report) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.reports {
		if r.ID == report.ID {
			if r.Status != entity.ReportStatusPending {
				return false, nil
			}
			cp := *report
			f.reports[i] = &cp
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReports) stored(id uint) *entity.Report {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.reports {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func (f *fakeReports) CountAll(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.reports)), nil
}

func (f *fakeReports) CountBetween(ctx context.Context, from, to time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, r := range f.reports {
		if !r.ReportedAt.Before(from) && !r.ReportedAt.After(to) {
			n++
		}
	}
	return n, nil
}

func (f *fakeReports) CountByStatus(ctx context.Context, status entity.ReportStatus) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, r := range f.reports {
		if r.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeReports) FindByAddressContaining(ctx context.Context, substr string, limit, offset int) ([]*entity.Report, int64, error) {
	return f.filterPage(func(r *entity.Report) bool {
		return strings.Contains(r.AddressOrEmpty(), substr)
	}, limit, offset)
}

func (f *fakeReports) FindByAddressContainingAndDateBetween(ctx context.Context, substr string, from, to time.Time, limit, offset int) ([]*entity.Report, int64, error) {
	return f.filterPage(func(r *entity.Report) bool {
		return strings.Contains(r.AddressOrEmpty(), substr) &&
			!r.ReportedAt.Before(from) && !r.ReportedAt.After(to)
	}, limit, offset)
}

func (f *fakeReports) filterPage(keep func(*entity.Report) bool, limit, offset int) ([]*entity.Report, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []*entity.Report
	for _, r := range f.reports {
		if keep(r) {
			matched = append(matched, r)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].ReportedAt.After(matched[j].ReportedAt)
	})
	total := int64(len(matched))
	if offset >= len(matched) {
		return []*entity.Report{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (f *fakeReports) FindApprovedByBrand(ctx context.Context, brand string, approvedFrom, approvedTo *time.Time) ([]*entity.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Report
	for _, r := range f.reports {
		if r.Status != entity.ReportStatusApproved || r.Brand != brand {
			continue
		}
		if approvedFrom != nil && approvedTo != nil && r.ApprovedAt != nil &&
			(r.ApprovedAt.Before(*approvedFrom) || r.ApprovedAt.After(*approvedTo)) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type fakeAdmins struct {
	mu     sync.Mutex
	admins map[string]*entity.Admin
	nextID uint
}

func newFakeAdmins() *fakeAdmins {
	return &fakeAdmins{admins: map[string]*entity.Admin{}}
}

func (f *fakeAdmins) Create(ctx context.Context, admin *entity.Admin) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.admins[admin.LoginID]; ok {
		return errors.Conflict("login id already in use")
	}
	f.nextID++
	admin.ID = f.nextID
	cp := *admin
	f.admins[admin.LoginID] = &cp
	return nil
}

func (f *fakeAdmins) FindByLoginID(ctx context.Context, loginID string) (*entity.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	admin, ok := f.admins[loginID]
	if !ok {
		return nil, errors.AdminNotFound(nil)
	}
	cp := *admin
	return &cp, nil
}

type fakeSigner struct {
	calls int
	err   error
}

func (s *fakeSigner) Sign(ctx context.Context, raw string, ttl time.Duration) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return raw + "?signed=" + ttl.String(), nil
}

type fakeMirror struct {
	emails []string
	err    error
}

func (m *fakeMirror) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.emails = append(m.emails, email)
	return "uid-" + email, nil
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

// managerDirectory registers one manager per raw region label.
func managerDirectory(regions ...string) *fakeDocuments {
	d := newFakeDocuments()
	for _, region := range regions {
		d.put(region+"@police.go.kr", entity.Fields{
			"email":            region + "@police.go.kr",
			entity.FieldRegion: region,
		})
	}
	return d
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
