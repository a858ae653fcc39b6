package model

import "time"

// AIEthicsAudit is a periodic evaluation of an AI model against a named
// criterion (bias, fairness, transparency, accountability).
type AIEthicsAudit struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	ModelID         uint       `gorm:"column:model_id;not null;index" json:"modelId"`
	AuditType       string     `gorm:"column:audit_type;type:varchar(32);not null" json:"auditType"`
	Result          string     `gorm:"type:varchar(16);not null" json:"result"`
	Score           string     `gorm:"type:decimal(5,2)" json:"score"`
	Findings        string     `gorm:"type:text;not null" json:"findings"`
	Recommendations string     `gorm:"type:text" json:"recommendations"`
	AuditedBy       uint       `gorm:"column:audited_by;not null" json:"auditedBy"`
	AuditDate       time.Time  `gorm:"column:audit_date;not null;index" json:"auditDate"`
	NextAuditDue    *time.Time `gorm:"column:next_audit_due" json:"nextAuditDue"`
	CreatedAt       time.Time  `json:"createdAt"`

	Model   *AIModel `gorm:"foreignKey:ModelID;constraint:OnDelete:RESTRICT" json:"-"`
	Auditor *User    `gorm:"foreignKey:AuditedBy;constraint:OnDelete:RESTRICT" json:"-"`
}
