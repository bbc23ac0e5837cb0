package entity

import (
	"time"
)

type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "PENDING"
	ReportStatusApproved ReportStatus = "APPROVED"
	ReportStatusRejected ReportStatus = "REJECTED"
)

// IsTerminal reports whether no further transition is defined from s.
func (s ReportStatus) IsTerminal() bool {
	return s == ReportStatusApproved || s == ReportStatusRejected
}

// Report is the locally owned workflow record. DocumentLinkID ties it to a
// document-store record when one exists.
type Report struct {
	ID             uint         `json:"id" gorm:"primaryKey;autoIncrement"`
	Title          string       `json:"title" gorm:"size:255"`
	Description    string       `json:"description" gorm:"type:text"`
	ReporterName   string       `json:"reporter_name" gorm:"size:100"`
	TargetName     string       `json:"target_name" gorm:"size:100"`
	Status         ReportStatus `json:"status" gorm:"size:20;not null;default:'PENDING';index"`
	ReportedAt     time.Time    `json:"reported_at" gorm:"index"`
	Address        *string      `json:"address" gorm:"size:255;index"`
	GPS            string       `json:"gps" gorm:"column:gps;size:100"`
	Reason         string       `json:"reason" gorm:"size:500"`
	Fine           *int         `json:"fine"`
	Brand          string       `json:"brand" gorm:"size:100;index"`
	ApprovedAt     *time.Time   `json:"approved_at"`
	ImageURL       string       `json:"image_url" gorm:"column:image_url;size:1000"`
	DocumentLinkID *string      `json:"document_link_id" gorm:"column:firestore_doc_id;size:128;uniqueIndex"`
	AdminID        *uint        `json:"admin_id" gorm:"index"`
	Admin          *Admin       `json:"-" gorm:"foreignKey:AdminID"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// Approve moves a pending report to APPROVED, recording the approver and instant.
func (r *Report) Approve(reason string, fine int, adminID uint, at time.Time) {
	r.Status = ReportStatusApproved
	r.Reason = reason
	r.Fine = &fine
	r.ApprovedAt = &at
	r.AdminID = &adminID
}

// Reject moves a pending report to REJECTED. No fine or approval instant is kept.
func (r *Report) Reject(reason string, adminID uint) {
	r.Status = ReportStatusRejected
	r.Reason = reason
	r.Fine = nil
	r.ApprovedAt = nil
	r.AdminID = &adminID
}

func (r *Report) AddressOrEmpty() string {
	if r == nil || r.Address == nil {
		return ""
	}
	return *r.Address
}

func (r *Report) DocumentID() string {
	if r == nil || r.DocumentLinkID == nil {
		return ""
	}
	return *r.DocumentLinkID
}

// Admin is an administrator account. Region holds the raw jurisdiction label as stored.
type Admin struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	LoginID   string    `json:"login_id" gorm:"column:login_id;size:100;uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Name      string    `json:"name" gorm:"size:100"`
	Region    string    `json:"region" gorm:"size:100"`
	Email     string    `json:"email" gorm:"size:255"`
	Classname string    `json:"classname" gorm:"size:100"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
