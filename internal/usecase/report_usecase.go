package usecase

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Korea-Traffic-Solution/backend/internal/domain/entity"
	"github.com/Korea-Traffic-Solution/backend/internal/domain/repository"
	"github.com/Korea-Traffic-Solution/backend/internal/domain/service"
	"github.com/Korea-Traffic-Solution/backend/internal/infrastructure/metrics"
	"github.com/Korea-Traffic-Solution/backend/pkg/errors"
	"github.com/Korea-Traffic-Solution/backend/pkg/logger"
	"github.com/Korea-Traffic-Solution/backend/pkg/utils"
)

const (
	defaultTitle    = "제목 없음"
	defaultReporter = "익명"
)

// ReportUseCase reconciles conclusion documents with locally owned reports.
type ReportUseCase struct {
	reportRepo   repository.ReportRepository
	conclusions  repository.DocumentRepository
	snapshots    repository.DocumentRepository
	guard        *AuthorizationGuard
	signer       ImageSigner
	signedURLTTL time.Duration
	metrics      *metrics.Metrics
	now          func() time.Time
}

func NewReportUseCase(
	reportRepo repository.ReportRepository,
	conclusions repository.DocumentRepository,
	snapshots repository.DocumentRepository,
	guard *AuthorizationGuard,
	signer ImageSigner,
	signedURLTTL time.Duration,
	m *metrics.Metrics,
) *ReportUseCase {
	if signedURLTTL <= 0 {
		signedURLTTL = 10 * time.Minute
	}
	return &ReportUseCase{
		reportRepo:   reportRepo,
		conclusions:  conclusions,
		snapshots:    snapshots,
		guard:        guard,
		signer:       signer,
		signedURLTTL: signedURLTTL,
		metrics:      m,
		now:          time.Now,
	}
}

type ListReportsInput struct {
	Admin  *entity.Admin
	Mine   bool
	Region string
	Page   utils.PaginationParams
}

type datedSummary struct {
	summary *entity.ReportSummary
	at      time.Time
}

// ListReports returns one page of conclusion documents, newest first, and the
// size of the whole matched set.
func (uc *ReportUseCase) ListReports(ctx context.Context, input ListReportsInput) ([]*entity.ReportSummary, int64, error) {
	token, matchNone, err := uc.guard.ListFilter(ctx, input.Admin, input.Mine, input.Region)
	if err != nil {
		return nil, 0, err
	}
	if matchNone {
		return []*entity.ReportSummary{}, 0, nil
	}

	docs, err := uc.conclusions.ListAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	rows := make([]datedSummary, 0, len(docs))
	for _, doc := range docs {
		if !matchesJurisdiction(token, doc.Fields.String(entity.FieldRegion, "")) {
			continue
		}
		rows = append(rows, uc.summarize(doc))
	}

	// Unknown dates are the zero time and therefore land at the end.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].at.After(rows[j].at)
	})

	summaries := make([]*entity.ReportSummary, len(rows))
	for i, row := range rows {
		summaries[i] = row.summary
	}

	return utils.Paginate(summaries, input.Page), int64(len(summaries)), nil
}

func (uc *ReportUseCase) summarize(doc *entity.Document) datedSummary {
	f := doc.Fields

	title := f.NonBlank(entity.FieldTitle, f.NonBlank(entity.FieldViolation, defaultTitle))
	reporter := f.NonBlank(entity.FieldReporterID, f.NonBlank(entity.FieldUserID, defaultReporter))

	at := uc.harmonize(f.Raw(entity.FieldDate))

	return datedSummary{
		summary: &entity.ReportSummary{
			ID:           doc.ID,
			Title:        title,
			ReporterName: reporter,
			Status:       statusFromResult(f.String(entity.FieldResult, "")),
			ReportedAt:   timePtr(at),
		},
		at: at,
	}
}

func (uc *ReportUseCase) harmonize(v interface{}) time.Time {
	at, strategy := service.ParseReportedAt(v)
	uc.metrics.IncrementDateStrategy(string(strategy))
	return at
}

// GetReportDetail merges the conclusion document with its linked report.
func (uc *ReportUseCase) GetReportDetail(ctx context.Context, documentID string) (*entity.MergedReportView, error) {
	doc, err := uc.conclusions.GetByID(ctx, documentID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.ReportNotFound(err)
		}
		return nil, err
	}

	report, err := uc.reportRepo.FindByDocumentLinkID(ctx, documentID)
	if err != nil {
		if !errors.IsNotFound(err) {
			return nil, err
		}
		report = &entity.Report{}
	}

	view := mergeReport(doc, report, uc.harmonize(doc.Fields.Raw(entity.FieldDate)))

	if view.ImageURL != "" && uc.signer != nil {
		signed, err := uc.signer.Sign(ctx, view.ImageURL, uc.signedURLTTL)
		if err != nil {
			logger.Warn("Failed to sign image for report %s: %v", documentID, err)
		} else {
			view.ImageURL = signed
		}
	}

	return view, nil
}

// mergeReport prefers document values for content and report values for workflow state.
func mergeReport(doc *entity.Document, report *entity.Report, reportedAt time.Time) *entity.MergedReportView {
	f := doc.Fields

	view := &entity.MergedReportView{
		ID:            doc.ID,
		Title:         f.String(entity.FieldTitle, report.Title),
		Description:   f.String(entity.FieldDescription, report.Description),
		ReporterName:  f.String(entity.FieldUserID, f.String(entity.FieldReporterID, report.ReporterName)),
		TargetName:    f.String(entity.FieldTargetName, report.TargetName),
		Region:        f.String(entity.FieldRegion, ""),
		GPS:           f.String(entity.FieldGPSInfo, report.GPS),
		Reason:        report.Reason,
		Fine:          report.Fine,
		Brand:         f.String(entity.FieldDetectedBrand, report.Brand),
		ApprovedAt:    report.ApprovedAt,
		ApproverID:    report.AdminID,
		AIConclusion:  f.StringList(entity.FieldAIConclusion),
		Result:        f.String(entity.FieldResult, ""),
		ReportContent: f.String(entity.FieldViolation, report.Description),
		ImageURL:      f.NonBlank(entity.FieldImageURL, f.NonBlank(entity.FieldReportImgURL, report.ImageURL)),
	}

	view.Address = report.AddressOrEmpty()
	if view.Address == "" {
		view.Address = view.Region
	}

	if service.IsKnown(reportedAt) {
		view.ReportedAt = &reportedAt
	} else {
		view.ReportedAt = timePtr(report.ReportedAt)
	}

	if f.Kind(entity.FieldConfidence) == entity.KindNumber {
		confidence := f.Number(entity.FieldConfidence, 0)
		view.Confidence = &confidence
	}

	switch {
	case view.Result == entity.ResultUnconfirmed:
		view.Status = entity.ReportStatusPending
	case report.Status != "":
		view.Status = report.Status
	default:
		view.Status = entity.ReportStatusPending
	}

	return view
}

// GetMonthlyReportsByRegion pages the admin's locally created reports from the
// current calendar month.
func (uc *ReportUseCase) GetMonthlyReportsByRegion(ctx context.Context, admin *entity.Admin, page utils.PaginationParams) ([]*entity.ReportSummary, int64, error) {
	token, err := uc.guard.Jurisdiction(ctx, admin)
	if err != nil {
		return nil, 0, err
	}

	from, to := service.MonthBounds(uc.now(), service.KST)
	reports, total, err := uc.reportRepo.FindByAddressContainingAndDateBetween(ctx, token, from, to, page.PageSize, page.Offset)
	if err != nil {
		return nil, 0, err
	}

	return toSummaries(reports), total, nil
}

// ListLocalReportsByRegion pages every locally created report in the admin's jurisdiction.
func (uc *ReportUseCase) ListLocalReportsByRegion(ctx context.Context, admin *entity.Admin, page utils.PaginationParams) ([]*entity.ReportSummary, int64, error) {
	token, err := uc.guard.Jurisdiction(ctx, admin)
	if err != nil {
		return nil, 0, err
	}

	reports, total, err := uc.reportRepo.FindByAddressContaining(ctx, token, page.PageSize, page.Offset)
	if err != nil {
		return nil, 0, err
	}

	return toSummaries(reports), total, nil
}

type CreateReportInput struct {
	Title        string `json:"title" validate:"required,notblank"`
	Description  string `json:"description" validate:"required,notblank"`
	ReporterName string `json:"reporterName" validate:"required,notblank"`
	TargetName   string `json:"targetName" validate:"required,notblank"`
	Address      string `json:"address" validate:"required,notblank"`
	GPS          string `json:"gps" validate:"required,notblank"`
	Brand        string `json:"brand" validate:"required,notblank"`
	ImageURL     string `json:"imageUrl"`
}

// CreateReport stores a new pending report, then writes its snapshot under a
// fresh document link id.
func (uc *ReportUseCase) CreateReport(ctx context.Context, input CreateReportInput) (*entity.Report, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Address) == "" {
		return nil, errors.Validation("title and address are required")
	}

	linkID := uuid.New().String()
	address := input.Address
	report := &entity.Report{
		Title:          input.Title,
		Description:    input.Description,
		ReporterName:   input.ReporterName,
		TargetName:     input.TargetName,
		Address:        &address,
		GPS:            input.GPS,
		Brand:          input.Brand,
		ImageURL:       input.ImageURL,
		Status:         entity.ReportStatusPending,
		ReportedAt:     uc.now(),
		DocumentLinkID: &linkID,
	}

	if err := uc.reportRepo.Save(ctx, report); err != nil {
		return nil, err
	}

	if err := uc.snapshots.Upsert(ctx, snapshotKey(report), snapshotFields(report)); err != nil {
		uc.metrics.IncrementWriteBackFailure("create")
		logger.Error("Report %d saved but snapshot write failed: %v", report.ID, err)
		return report, err
	}

	return report, nil
}

// snapshotKey is the document id a report's snapshot is written under.
func snapshotKey(report *entity.Report) string {
	if id := report.DocumentID(); id != "" {
		return id
	}
	return strconv.FormatUint(uint64(report.ID), 10)
}

func snapshotFields(report *entity.Report) entity.Fields {
	return entity.Fields{
		entity.FieldDetectedBrand: report.Brand,
		entity.FieldRegion:        strings.TrimSpace(report.AddressOrEmpty()),
		entity.FieldViolation:     report.Description,
		entity.FieldReportImgURL:  report.ImageURL,
	}
}

func toSummaries(reports []*entity.Report) []*entity.ReportSummary {
	summaries := make([]*entity.ReportSummary, len(reports))
	for i, r := range reports {
		summaries[i] = &entity.ReportSummary{
			ID:           strconv.FormatUint(uint64(r.ID), 10),
			Title:        r.Title,
			ReporterName: r.ReporterName,
			Status:       r.Status,
			ReportedAt:   timePtr(r.ReportedAt),
		}
	}
	return summaries
}

func statusFromResult(result string) entity.ReportStatus {
	switch result {
	case entity.ResultApproved:
		return entity.ReportStatusApproved
	case entity.ResultRejected:
		return entity.ReportStatusRejected
	}
	return entity.ReportStatusPending
}

func timePtr(t time.Time) *time.Time {
	if !service.IsKnown(t) {
		return nil
	}
	return &t
}
