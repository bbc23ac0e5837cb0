package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Korea-Traffic-Solution/backend/internal/usecase"
	"github.com/Korea-Traffic-Solution/backend/pkg/response"
)

type NoticeHandler struct {
	noticeUseCase *usecase.NoticeUseCase
}

func NewNoticeHandler(noticeUseCase *usecase.NoticeUseCase) *NoticeHandler {
	return &NoticeHandler{
		noticeUseCase: noticeUseCase,
	}
}

func (h *NoticeHandler) GetNotices(c echo.Context) error {
	return response.Success(c, h.noticeUseCase.GetNotices(c.Request().Context()))
}
