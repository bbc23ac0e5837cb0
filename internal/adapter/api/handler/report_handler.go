package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Korea-Traffic-Solution/backend/internal/adapter/api/middleware"
	"github.com/Korea-Traffic-Solution/backend/internal/usecase"
	"github.com/Korea-Traffic-Solution/backend/pkg/response"
	"github.com/Korea-Traffic-Solution/backend/pkg/utils"
)

type ReportHandler struct {
	reportUseCase     *usecase.ReportUseCase
	approvalUseCase   *usecase.ApprovalUseCase
	statisticsUseCase *usecase.StatisticsUseCase
}

func NewReportHandler(
	reportUseCase *usecase.ReportUseCase,
	approvalUseCase *usecase.ApprovalUseCase,
	statisticsUseCase *usecase.StatisticsUseCase,
) *ReportHandler {
	return &ReportHandler{
		reportUseCase:     reportUseCase,
		approvalUseCase:   approvalUseCase,
		statisticsUseCase: statisticsUseCase,
	}
}

func (h *ReportHandler) ListReports(c echo.Context) error {
	page := utils.GetPaginationParams(c)

	items, total, err := h.reportUseCase.ListReports(c.Request().Context(), usecase.ListReportsInput{
		Admin:  middleware.AdminFromContext(c),
		Mine:   queryBool(c, "mine"),
		Region: c.QueryParam("region"),
		Page:   page,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, items, total, page.Page, page.PageSize)
}

func (h *ReportHandler) GetReport(c echo.Context) error {
	view, err := h.reportUseCase.GetReportDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, view)
}

func (h *ReportHandler) ProcessReport(c echo.Context) error {
	var req usecase.ProcessReportInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	report, err := h.approvalUseCase.Process(c.Request().Context(), middleware.AdminFromContext(c), c.Param("id"), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, report)
}

func (h *ReportHandler) CreateReport(c echo.Context) error {
	var req usecase.CreateReportInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	report, err := h.reportUseCase.CreateReport(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, report)
}

func (h *ReportHandler) GetMonthlyReports(c echo.Context) error {
	page := utils.GetPaginationParams(c)

	items, total, err := h.reportUseCase.GetMonthlyReportsByRegion(c.Request().Context(), middleware.AdminFromContext(c), page)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, items, total, page.Page, page.PageSize)
}

func (h *ReportHandler) ListLocalReports(c echo.Context) error {
	page := utils.GetPaginationParams(c)

	items, total, err := h.reportUseCase.ListLocalReportsByRegion(c.Request().Context(), middleware.AdminFromContext(c), page)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, items, total, page.Page, page.PageSize)
}

func (h *ReportHandler) GetStatistics(c echo.Context) error {
	stats, err := h.statisticsUseCase.GetStatistics(c.Request().Context(), usecase.StatisticsInput{
		Admin:  middleware.AdminFromContext(c),
		Mine:   queryBool(c, "mine"),
		Region: c.QueryParam("region"),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}

func (h *ReportHandler) GetLocalStatistics(c echo.Context) error {
	stats, err := h.statisticsUseCase.GetLocalStatistics(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}

func queryBool(c echo.Context, name string) bool {
	v, _ := strconv.ParseBool(c.QueryParam(name))
	return v
}
