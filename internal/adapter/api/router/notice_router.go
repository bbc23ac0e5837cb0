package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Korea-Traffic-Solution/backend/internal/adapter/api/handler"
)

func SetupNoticeRouter(e *echo.Echo) {
	noticeHandler := handler.GetNoticeHandler()
	e.GET("/api/notices", noticeHandler.GetNotices)
}
