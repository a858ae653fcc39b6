package model

import (
	"time"

	"gorm.io/datatypes"
)

// SecurityEvent is a raw log entry in the security event stream. Metadata is
// an opaque JSON document; it is not validated against any schema.
type SecurityEvent struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	EventType string         `gorm:"column:event_type;type:varchar(64);not null;index" json:"eventType"`
	Severity  string         `gorm:"type:varchar(16);not null" json:"severity"`
	Message   string         `gorm:"type:text;not null" json:"message"`
	SourceIP  string         `gorm:"column:source_ip;type:varchar(45)" json:"sourceIp"`
	TargetIP  string         `gorm:"column:target_ip;type:varchar(45)" json:"targetIp"`
	UserID    *uint          `gorm:"column:user_id" json:"userId"`
	Metadata  datatypes.JSON `json:"metadata"`
	Timestamp time.Time      `gorm:"not null;index" json:"timestamp"`
	Processed bool           `gorm:"not null;default:false" json:"processed"`
	CreatedAt time.Time      `json:"createdAt"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
}
