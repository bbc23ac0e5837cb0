package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Korea-Traffic-Solution/backend/internal/infrastructure/export"
	"github.com/Korea-Traffic-Solution/backend/internal/usecase"
	"github.com/Korea-Traffic-Solution/backend/pkg/response"
)

type ExportHandler struct {
	exportUseCase *usecase.ExportUseCase
}

func NewExportHandler(exportUseCase *usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{
		exportUseCase: exportUseCase,
	}
}

func (h *ExportHandler) DownloadApprovedReports(c echo.Context) error {
	data, err := h.exportUseCase.ExportApprovedReports(c.Request().Context(), c.QueryParam("brand"), c.QueryParam("date"))
	if err != nil {
		return response.Error(c, err)
	}

	fileName := strings.ReplaceAll(url.QueryEscape(export.ApprovedFileName), "+", "%20")
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename*=UTF-8''"+fileName)
	return c.Blob(http.StatusOK, export.ContentType, data)
}
