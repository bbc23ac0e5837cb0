package entity

import "time"

// ReportSummary is one row of a report listing.
type ReportSummary struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	ReporterName string       `json:"reporter_name"`
	Status       ReportStatus `json:"status"`
	ReportedAt   *time.Time   `json:"reported_at"`
}

// MergedReportView combines a conclusion document with its linked report.
// Content fields come from the document, workflow fields from the report.
type MergedReportView struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	ReporterName  string       `json:"reporter_name"`
	TargetName    string       `json:"target_name"`
	Status        ReportStatus `json:"status"`
	ReportedAt    *time.Time   `json:"reported_at"`
	Address       string       `json:"address"`
	Region        string       `json:"region"`
	GPS           string       `json:"gps"`
	Reason        string       `json:"reason"`
	Fine          *int         `json:"fine"`
	Brand         string       `json:"brand"`
	ApprovedAt    *time.Time   `json:"approved_at"`
	ApproverID    *uint        `json:"approver_id"`
	AIConclusion  []string     `json:"ai_conclusion"`
	Confidence    *float64     `json:"confidence,omitempty"`
	Result        string       `json:"result,omitempty"`
	ReportContent string       `json:"report_content"`
	ImageURL      string       `json:"image_url,omitempty"`
}

type ReportStatistics struct {
	Total    int64 `json:"total_count"`
	Monthly  int64 `json:"monthly_count"`
	Approved int64 `json:"approved_count"`
	Rejected int64 `json:"rejected_count"`
}
