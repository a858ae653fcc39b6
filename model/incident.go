package model

import "time"

// SecurityIncident is a tracked incident moving through open, investigating
// and resolved states. ResolvedAt is never stamped automatically on a status
// change; the caller sets it explicitly.
type SecurityIncident struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Severity    string     `gorm:"type:varchar(16);not null;index" json:"severity"`
	Status      string     `gorm:"type:varchar(16);not null;default:open;index" json:"status"`
	ThreatLevel string     `gorm:"column:threat_level;type:decimal(5,2);not null" json:"threatLevel"`
	Source      string     `gorm:"type:varchar(255);not null" json:"source"`
	DetectedAt  time.Time  `gorm:"column:detected_at;not null" json:"detectedAt"`
	ResolvedAt  *time.Time `gorm:"column:resolved_at" json:"resolvedAt"`
	AssignedTo  *uint      `gorm:"column:assigned_to" json:"assignedTo"`
	CreatedBy   uint       `gorm:"column:created_by;not null" json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	Assignee *User `gorm:"foreignKey:AssignedTo;constraint:OnDelete:SET NULL" json:"-"`
	Creator  *User `gorm:"foreignKey:CreatedBy;constraint:OnDelete:RESTRICT" json:"-"`
}

// SecurityIncidentUpdate carries a partial update. String fields are merged
// when non-empty, pointer fields when non-nil. Any status may follow any
// status; transition legality is intentionally not enforced.
type SecurityIncidentUpdate struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Severity    string     `json:"severity"`
	Status      string     `json:"status"`
	ThreatLevel string     `json:"threatLevel"`
	Source      string     `json:"source"`
	DetectedAt  *time.Time `json:"detectedAt"`
	ResolvedAt  *time.Time `json:"resolvedAt"`
	AssignedTo  *uint      `json:"assignedTo"`
}
