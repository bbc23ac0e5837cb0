package service

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Strategy names the parser that recognised a reported-at value. It is
// recorded for diagnostics only.
type Strategy string

const (
	StrategyNative    Strategy = "native"
	StrategyLocalized Strategy = "localized"
	StrategyISO8601   Strategy = "iso8601"
	StrategyEpochMs   Strategy = "epoch_ms"
	StrategyUnknown   Strategy = "unknown"
)

// KST is the reference zone for localized dates and calendar-month windows.
var KST = time.FixedZone("KST", 9*60*60)

// Localized layouts, tried in order after 오전/오후 is rewritten to AM/PM.
var localizedLayouts = []string{
	"2006년 1월 2일 PM 3시 4분 5초",
	"2006년 1월 2일 15시 4분 5초",
	"2006년 1월 2일 PM 3시 4분",
	"2006. 1. 2. PM 3:04:05",
	"2006. 1. 2. 15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02 15:04:05",
}

// ISO-8601 layouts carrying an explicit offset.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z0700",
}

var utcSuffixPattern = regexp.MustCompile(`\s*UTC([+-])(\d{1,2})(?::?(\d{2}))?$`)

var meridiemReplacer = strings.NewReplacer("오전", "AM", "오후", "PM")

// ParseReportedAt harmonizes a reported-at value of unknown encoding into an
// instant. Strategies are tried in a fixed order: native timestamp, localized
// long-form text, ISO-8601 with offset, epoch milliseconds. When every strategy
// fails the zero time and StrategyUnknown are returned; callers treat the zero
// time as the earliest possible instant.
func ParseReportedAt(v interface{}) (time.Time, Strategy) {
	if t, ok := parseNative(v); ok {
		return t, StrategyNative
	}

	s, isText := v.(string)
	if isText {
		s = strings.TrimSpace(s)
		if s == "" {
			return time.Time{}, StrategyUnknown
		}
		if t, ok := parseLocalized(s); ok {
			return t, StrategyLocalized
		}
		if t, ok := parseISO8601(s); ok {
			return t, StrategyISO8601
		}
	}

	if ms, ok := epochMillis(v); ok {
		return time.UnixMilli(ms), StrategyEpochMs
	}
	return time.Time{}, StrategyUnknown
}

func parseISO8601(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsKnown reports whether t came from a successful parse.
func IsKnown(t time.Time) bool {
	return !t.IsZero()
}

func parseNative(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case *time.Time:
		if t != nil && !t.IsZero() {
			return *t, true
		}
	case map[string]interface{}:
		// JSON-exported timestamps: {"_seconds": .., "_nanoseconds": ..} or {"seconds": .., "nanos": ..}
		sec, ok := firstInt(t, "_seconds", "seconds")
		if !ok {
			return time.Time{}, false
		}
		nanos, _ := firstInt(t, "_nanoseconds", "nanos", "nanoseconds")
		return time.Unix(sec, nanos), true
	}
	return time.Time{}, false
}

func parseLocalized(s string) (time.Time, bool) {
	loc := KST
	if m := utcSuffixPattern.FindStringSubmatch(s); m != nil {
		hours, _ := strconv.Atoi(m[2])
		minutes := 0
		if m[3] != "" {
			minutes, _ = strconv.Atoi(m[3])
		}
		offset := hours*3600 + minutes*60
		if m[1] == "-" {
			offset = -offset
		}
		loc = time.FixedZone("", offset)
		s = strings.TrimSpace(s[:len(s)-len(m[0])])
	}
	s = meridiemReplacer.Replace(s)

	for _, layout := range localizedLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func epochMillis(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case string:
		ms, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return ms, err == nil
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	}
	return 0, false
}

func firstInt(m map[string]interface{}, keys ...string) (int64, bool) {
	for _, k := range keys {
		switch n := m[k].(type) {
		case int64:
			return n, true
		case int:
			return int64(n), true
		case float64:
			return int64(n), true
		}
	}
	return 0, false
}

// MonthBounds returns the first and last instant of the calendar month that
// contains now, in loc.
func MonthBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// WithinMonth reports whether t lies in the calendar month containing now.
func WithinMonth(t, now time.Time, loc *time.Location) bool {
	if !IsKnown(t) {
		return false
	}
	start, end := MonthBounds(now, loc)
	return !t.Before(start) && !t.After(end)
}
