package model

import "time"

// AIModel tracks a deployed or in-training model and its monitoring scores.
// Accuracy and BiasScore are decimal strings ("0.9850") matching the wire
// format; empty means not yet measured.
type AIModel struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Name          string     `gorm:"type:varchar(255);not null" json:"name"`
	Version       string     `gorm:"type:varchar(64);not null" json:"version"`
	Type          string     `gorm:"type:varchar(32);not null" json:"type"`
	Status        string     `gorm:"type:varchar(16);not null;default:active" json:"status"`
	Accuracy      string     `gorm:"type:decimal(5,4)" json:"accuracy"`
	BiasScore     string     `gorm:"column:bias_score;type:decimal(3,2)" json:"biasScore"`
	LastTrainedAt *time.Time `gorm:"column:last_trained_at" json:"lastTrainedAt"`
	DeployedAt    *time.Time `gorm:"column:deployed_at" json:"deployedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// AIModelUpdate carries a partial update for an AI model record.
type AIModelUpdate struct {
	Name          string     `json:"name"`
	Version       string     `json:"version"`
	Type          string     `json:"type"`
	Status        string     `json:"status"`
	Accuracy      string     `json:"accuracy"`
	BiasScore     string     `json:"biasScore"`
	LastTrainedAt *time.Time `json:"lastTrainedAt"`
	DeployedAt    *time.Time `json:"deployedAt"`
}
