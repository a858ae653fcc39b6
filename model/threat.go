package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// ThreatIntelligence is a time-bounded indicator record for a known or
// suspected threat pattern. ExpiresAt is advisory only: nothing sweeps
// expired rows, IsActive must be cleared by the caller.
type ThreatIntelligence struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	ThreatType  string         `gorm:"column:threat_type;type:varchar(64);not null" json:"threatType"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Indicators  datatypes.JSON `gorm:"not null" json:"indicators"`
	Confidence  string         `gorm:"type:decimal(5,2);not null" json:"confidence"`
	Source      string         `gorm:"type:varchar(255);not null" json:"source"`
	IsActive    bool           `gorm:"column:is_active;not null;default:true;index" json:"isActive"`
	ExpiresAt   *time.Time     `gorm:"column:expires_at" json:"expiresAt"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// EncodeIndicators stores an ordered indicator list as a JSON column value.
func EncodeIndicators(indicators []string) (datatypes.JSON, error) {
	b, err := json.Marshal(indicators)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

// DecodeIndicators returns the indicator list stored in a JSON column value.
func DecodeIndicators(raw datatypes.JSON) ([]string, error) {
	var indicators []string
	if err := json.Unmarshal(raw, &indicators); err != nil {
		return nil, err
	}
	return indicators, nil
}
