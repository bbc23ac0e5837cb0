package entity

import (
	"fmt"
	"strings"
	"time"
)

// Conclusion document field names.
const (
	FieldTitle         = "title"
	FieldDescription   = "description"
	FieldReporterID    = "reporterId"
	FieldUserID        = "userId"
	FieldTargetName    = "targetName"
	FieldDate          = "date"
	FieldRegion        = "region"
	FieldGPSInfo       = "gpsInfo"
	FieldDetectedBrand = "detectedBrand"
	FieldImageURL      = "imageUrl"
	FieldReportImgURL  = "reportImgUrl"
	FieldAIConclusion  = "aiConclusion"
	FieldConfidence    = "confidence"
	FieldResult        = "result"
	FieldViolation     = "violation"
	FieldStatus        = "status"
	FieldApprovedAt    = "approvedAt"
)

// Values written by the classifier into the result field.
const (
	ResultUnconfirmed = "미확인"
	ResultApproved    = "승인"
	ResultRejected    = "반려"
)

type FieldKind int

const (
	KindMissing FieldKind = iota
	KindNull
	KindString
	KindNumber
	KindBool
	KindList
	KindTimestamp
	KindMap
)

// Fields is the schema-less payload of a document-store record. All reads go
// through the accessors so absent or mistyped fields fall back to a default.
type Fields map[string]interface{}

// Document is one record of the document store.
type Document struct {
	ID     string
	Fields Fields
}

func (f Fields) Kind(key string) FieldKind {
	v, ok := f[key]
	if !ok {
		return KindMissing
	}
	switch v.(type) {
	case nil:
		return KindNull
	case string:
		return KindString
	case int, int32, int64, float32, float64:
		return KindNumber
	case bool:
		return KindBool
	case []interface{}, []string:
		return KindList
	case time.Time, *time.Time:
		return KindTimestamp
	case map[string]interface{}:
		return KindMap
	}
	return KindNull
}

func (f Fields) Has(key string) bool {
	k := f.Kind(key)
	return k != KindMissing && k != KindNull
}

func (f Fields) Raw(key string) interface{} {
	return f[key]
}

// String returns the field when it holds a string, def otherwise.
func (f Fields) String(key, def string) string {
	if s, ok := f[key].(string); ok {
		return s
	}
	return def
}

// NonBlank is like String but also falls back when the value is blank.
func (f Fields) NonBlank(key, def string) string {
	if s, ok := f[key].(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	return def
}

func (f Fields) Number(key string, def float64) float64 {
	switch n := f[key].(type) {
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case float32:
		return float64(n)
	case float64:
		return n
	}
	return def
}

// StringList accepts a list of any element type; non-string elements are formatted.
func (f Fields) StringList(key string) []string {
	switch l := f[key].(type) {
	case []string:
		out := make([]string, len(l))
		copy(out, l)
		return out
	case []interface{}:
		out := make([]string, 0, len(l))
		for _, item := range l {
			if item == nil {
				continue
			}
			if s, ok := item.(string); ok {
				out = append(out, s)
				continue
			}
			out = append(out, fmt.Sprint(item))
		}
		return out
	case string:
		if l != "" {
			return []string{l}
		}
	}
	return []string{}
}
