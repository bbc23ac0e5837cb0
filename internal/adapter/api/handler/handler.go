package handler

import (
	"github.com/Korea-Traffic-Solution/backend/internal/usecase"
)

var (
	authHandler   *AuthHandler
	reportHandler *ReportHandler
	exportHandler *ExportHandler
	noticeHandler *NoticeHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	reportUseCase *usecase.ReportUseCase,
	approvalUseCase *usecase.ApprovalUseCase,
	statisticsUseCase *usecase.StatisticsUseCase,
	exportUseCase *usecase.ExportUseCase,
	noticeUseCase *usecase.NoticeUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	reportHandler = NewReportHandler(reportUseCase, approvalUseCase, statisticsUseCase)
	exportHandler = NewExportHandler(exportUseCase)
	noticeHandler = NewNoticeHandler(noticeUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetReportHandler() *ReportHandler {
	return reportHandler
}

func GetExportHandler() *ExportHandler {
	return exportHandler
}

func GetNoticeHandler() *NoticeHandler {
	return noticeHandler
}
