package service

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func koreanLongForm(t time.Time) string {
	s := t.In(KST).Format("2006년 1월 2일 PM 3시 4분 5초")
	return strings.NewReplacer("AM", "오전", "PM", "오후").Replace(s)
}

func TestParseReportedAtRoundTrips(t *testing.T) {
	instants := []time.Time{
		time.Date(2025, 8, 1, 7, 31, 12, 0, time.UTC),
		time.Date(2024, 12, 31, 15, 0, 0, 0, time.UTC), // 2025-01-01 00:00 KST
		time.Date(2025, 3, 9, 2, 5, 59, 0, time.UTC),
	}

	for _, want := range instants {
		encodings := map[string]struct {
			value    interface{}
			strategy Strategy
		}{
			"native":          {want, StrategyNative},
			"native pointer":  {&want, StrategyNative},
			"korean":          {koreanLongForm(want), StrategyLocalized},
			"korean with utc": {koreanLongForm(want) + " UTC+9", StrategyLocalized},
			"korean 24h":      {want.In(KST).Format("2006년 1월 2일 15시 4분 5초"), StrategyLocalized},
			"dotted":          {strings.NewReplacer("AM", "오전", "PM", "오후").Replace(want.In(KST).Format("2006. 1. 2. PM 3:04:05")), StrategyLocalized},
			"iso8601":         {want.In(KST).Format(time.RFC3339), StrategyISO8601},
			"iso8601 utc":     {want.Format(time.RFC3339Nano), StrategyISO8601},
			"epoch ms string": {strconv.FormatInt(want.UnixMilli(), 10), StrategyEpochMs},
			"epoch ms number": {want.UnixMilli(), StrategyEpochMs},
			"json timestamp":  {map[string]interface{}{"_seconds": float64(want.Unix()), "_nanoseconds": float64(0)}, StrategyNative},
		}

		for name, enc := range encodings {
			got, strategy := ParseReportedAt(enc.value)
			assert.Equal(t, enc.strategy, strategy, name)
			assert.True(t, want.Equal(got), "%s: want %v got %v", name, want, got)
		}
	}
}

func TestParseReportedAtHonoursExplicitOffset(t *testing.T) {
	got, strategy := ParseReportedAt("2025년 8월 1일 오후 4시 31분 12초 UTC-5")
	assert.Equal(t, StrategyLocalized, strategy)
	assert.True(t, time.Date(2025, 8, 1, 21, 31, 12, 0, time.UTC).Equal(got))
}

func TestParseReportedAtISOOffsetVariants(t *testing.T) {
	want := time.Date(2025, 8, 1, 7, 31, 12, 0, time.UTC)

	for _, s := range []string{
		"2025-08-01T16:31:12+09:00",
		"2025-08-01T16:31:12+0900",
		"2025-08-01 16:31:12+09:00",
		"2025-08-01 16:31:12+0900",
		"2025-08-01T07:31:12Z",
		"2025-08-01 07:31:12Z",
	} {
		got, strategy := ParseReportedAt(s)
		assert.Equal(t, StrategyISO8601, strategy, s)
		assert.True(t, want.Equal(got), "%s parsed as %v", s, got)

		again, _ := ParseReportedAt(got.Format(time.RFC3339Nano))
		assert.True(t, got.Equal(again), s)
	}
}

func TestParseReportedAtUnknown(t *testing.T) {
	for _, v := range []interface{}{nil, "", "   ", "어제 저녁", "2025-13-45", true, []interface{}{"x"}, time.Time{}, map[string]interface{}{"foo": 1}} {
		got, strategy := ParseReportedAt(v)
		assert.Equal(t, StrategyUnknown, strategy, "%#v", v)
		assert.False(t, IsKnown(got))
	}
}

func TestMonthBounds(t *testing.T) {
	// 2025-05-31 20:00 UTC is already June in KST.
	now := time.Date(2025, 5, 31, 20, 0, 0, 0, time.UTC)
	start, end := MonthBounds(now, KST)

	assert.True(t, time.Date(2025, 6, 1, 0, 0, 0, 0, KST).Equal(start))
	assert.True(t, time.Date(2025, 6, 30, 23, 59, 59, 999999999, KST).Equal(end))

	assert.True(t, WithinMonth(start, now, KST))
	assert.True(t, WithinMonth(end, now, KST))
	assert.False(t, WithinMonth(start.Add(-time.Nanosecond), now, KST))
	assert.False(t, WithinMonth(end.Add(time.Nanosecond), now, KST))
	assert.False(t, WithinMonth(time.Time{}, now, KST))
}
