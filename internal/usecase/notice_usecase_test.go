package usecase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetNoticesRelaysUpstreamBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"title":"점검 안내"}]`))
	}))
	defer upstream.Close()

	uc := NewNoticeUseCase(upstream.URL, upstream.Client())
	assert.Equal(t, `[{"title":"점검 안내"}]`, uc.GetNotices(context.Background()))
}

func TestGetNoticesReportsFailureAsText(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	tests := []struct {
		name string
		uc   *NoticeUseCase
	}{
		{"upstream error status", NewNoticeUseCase(upstream.URL, upstream.Client())},
		{"not configured", NewNoticeUseCase("", nil)},
		{"unreachable", NewNoticeUseCase("http://127.0.0.1:1/notices", nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.uc.GetNotices(context.Background())
			assert.True(t, strings.HasPrefix(got, noticeFailurePrefix), got)
		})
	}
}
