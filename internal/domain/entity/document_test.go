package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFieldsAccessorsFallBack(t *testing.T) {
	f := Fields{
		"title":        "불법 주정차",
		"blank":        "   ",
		"confidence":   int64(87),
		"score":        0.5,
		"aiConclusion": []interface{}{"정차", nil, 3},
		"date":         time.Now(),
		"nothing":      nil,
	}

	assert.Equal(t, "불법 주정차", f.String("title", "x"))
	assert.Equal(t, "x", f.String("missing", "x"))
	assert.Equal(t, "x", f.String("confidence", "x"))
	assert.Equal(t, "   ", f.String("blank", "x"))
	assert.Equal(t, "x", f.NonBlank("blank", "x"))

	assert.Equal(t, 87.0, f.Number("confidence", -1))
	assert.Equal(t, 0.5, f.Number("score", -1))
	assert.Equal(t, -1.0, f.Number("title", -1))

	assert.Equal(t, []string{"정차", "3"}, f.StringList("aiConclusion"))
	assert.Equal(t, []string{"불법 주정차"}, f.StringList("title"))
	assert.Equal(t, []string{}, f.StringList("missing"))
}

func TestFieldsKind(t *testing.T) {
	f := Fields{"a": "s", "b": 1, "c": []string{}, "d": time.Time{}, "e": nil, "g": map[string]interface{}{}, "h": true}

	assert.Equal(t, KindString, f.Kind("a"))
	assert.Equal(t, KindNumber, f.Kind("b"))
	assert.Equal(t, KindList, f.Kind("c"))
	assert.Equal(t, KindTimestamp, f.Kind("d"))
	assert.Equal(t, KindNull, f.Kind("e"))
	assert.Equal(t, KindMap, f.Kind("g"))
	assert.Equal(t, KindBool, f.Kind("h"))
	assert.Equal(t, KindMissing, f.Kind("z"))

	assert.True(t, f.Has("a"))
	assert.False(t, f.Has("e"))
	assert.False(t, f.Has("z"))
}

func TestReportStatusTerminal(t *testing.T) {
	assert.False(t, ReportStatusPending.IsTerminal())
	assert.True(t, ReportStatusApproved.IsTerminal())
	assert.True(t, ReportStatusRejected.IsTerminal())
}
