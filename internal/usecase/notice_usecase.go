package usecase

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Korea-Traffic-Solution/backend/pkg/logger"
)

const noticeFailurePrefix = "공지사항 불러오기 실패: "

// maxNoticeBytes bounds how much of the upstream body is relayed.
const maxNoticeBytes = 1 << 20

// NoticeUseCase relays the notice board published at a configured URL.
type NoticeUseCase struct {
	url    string
	client *http.Client
}

func NewNoticeUseCase(url string, client *http.Client) *NoticeUseCase {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &NoticeUseCase{
		url:    url,
		client: client,
	}
}

// GetNotices returns the upstream body. Upstream failures are reported in the
// returned text rather than as an error.
func (uc *NoticeUseCase) GetNotices(ctx context.Context) string {
	body, err := uc.fetch(ctx)
	if err != nil {
		logger.Warn("Failed to fetch notices from %s: %v", uc.url, err)
		return noticeFailurePrefix + err.Error()
	}
	return body
}

func (uc *NoticeUseCase) fetch(ctx context.Context) (string, error) {
	if uc.url == "" {
		return "", fmt.Errorf("notice url is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uc.url, nil)
	if err != nil {
		return "", err
	}

	resp, err := uc.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("upstream returned %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxNoticeBytes))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
