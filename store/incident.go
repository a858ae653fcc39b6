package store

import (
	"math"
	"strconv"
	"time"

	"github.com/daifend/platform/model"
)

// isDecimal reports whether s is a plain decimal literal, the wire format for
// the schema's numeric columns (e.g. "85.50").
func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// ListSecurityIncidents returns incidents newest-created first. A limit of
// zero or less falls back to the default page size.
func (s *Storage) ListSecurityIncidents(limit int) ([]model.SecurityIncident, error) {
	if limit <= 0 {
		limit = defaultIncidentLimit
	}
	var incidents []model.SecurityIncident
	err := s.db.Order("created_at DESC").Limit(limit).Find(&incidents).Error
	return incidents, err
}

// GetSecurityIncident returns a single incident or ErrNotFound.
func (s *Storage) GetSecurityIncident(id uint) (model.SecurityIncident, error) {
	var incident model.SecurityIncident
	if err := s.db.First(&incident, id).Error; err != nil {
		return model.SecurityIncident{}, translate(err)
	}
	return incident, nil
}

func validateIncident(inc *model.SecurityIncident) error {
	if inc.Title == "" || inc.Description == "" || inc.Source == "" {
		return invalidf("title, description and source are required")
	}
	if inc.DetectedAt.IsZero() {
		return invalidf("detectedAt is required")
	}
	if inc.CreatedBy == 0 {
		return invalidf("createdBy is required")
	}
	if !model.ValidIncidentSeverity(inc.Severity) {
		return invalidf("severity must be one of %v", model.IncidentSeverities)
	}
	if !model.ValidIncidentStatus(inc.Status) {
		return invalidf("status must be one of %v", model.IncidentStatuses)
	}
	if !isDecimal(inc.ThreatLevel) {
		return invalidf("threatLevel must be a decimal string")
	}
	return nil
}

// CreateSecurityIncident validates and persists a new incident. Status
// defaults to "open" when omitted.
func (s *Storage) CreateSecurityIncident(inc *model.SecurityIncident) error {
	if inc.Status == "" {
		inc.Status = "open"
	}
	if err := validateIncident(inc); err != nil {
		return err
	}
	return s.db.Create(inc).Error
}

// UpdateSecurityIncident merges a partial update into an existing incident.
// The updatedAt stamp always advances; status transitions are not restricted
// and resolvedAt is only ever set by the caller.
func (s *Storage) UpdateSecurityIncident(id uint, updates model.SecurityIncidentUpdate) (model.SecurityIncident, error) {
	var incident model.SecurityIncident
	if err := s.db.First(&incident, id).Error; err != nil {
		return model.SecurityIncident{}, translate(err)
	}

	if updates.Title != "" {
		incident.Title = updates.Title
	}
	if updates.Description != "" {
		incident.Description = updates.Description
	}
	if updates.Severity != "" {
		if !model.ValidIncidentSeverity(updates.Severity) {
			return model.SecurityIncident{}, invalidf("severity must be one of %v", model.IncidentSeverities)
		}
		incident.Severity = updates.Severity
	}
	if updates.Status != "" {
		if !model.ValidIncidentStatus(updates.Status) {
			return model.SecurityIncident{}, invalidf("status must be one of %v", model.IncidentStatuses)
		}
		incident.Status = updates.Status
	}
	if updates.ThreatLevel != "" {
		if !isDecimal(updates.ThreatLevel) {
			return model.SecurityIncident{}, invalidf("threatLevel must be a decimal string")
		}
		incident.ThreatLevel = updates.ThreatLevel
	}
	if updates.Source != "" {
		incident.Source = updates.Source
	}
	if updates.DetectedAt != nil {
		incident.DetectedAt = *updates.DetectedAt
	}
	if updates.ResolvedAt != nil {
		incident.ResolvedAt = updates.ResolvedAt
	}
	if updates.AssignedTo != nil {
		incident.AssignedTo = updates.AssignedTo
	}

	if err := s.db.Save(&incident).Error; err != nil {
		return model.SecurityIncident{}, err
	}
	return incident, nil
}

// DashboardStats is the computed-on-read aggregate behind /api/dashboard/stats.
type DashboardStats struct {
	TotalIncidents        int64   `json:"totalIncidents"`
	OpenIncidents         int64   `json:"openIncidents"`
	CriticalIncidents     int64   `json:"criticalIncidents"`
	AverageResolutionTime float64 `json:"averageResolutionTime"`
	ThreatLevel           int     `json:"threatLevel"`
}

// GetDashboardStats computes incident counts, the mean threat level across
// incidents created in the trailing 24 hours, and the mean resolution time in
// hours across resolved incidents. Empty inputs yield zeroes.
func (s *Storage) GetDashboardStats() (DashboardStats, error) {
	var stats DashboardStats

	if err := s.db.Model(&model.SecurityIncident{}).Count(&stats.TotalIncidents).Error; err != nil {
		return DashboardStats{}, err
	}
	if err := s.db.Model(&model.SecurityIncident{}).Where("status = ?", "open").Count(&stats.OpenIncidents).Error; err != nil {
		return DashboardStats{}, err
	}
	if err := s.db.Model(&model.SecurityIncident{}).Where("severity = ?", "critical").Count(&stats.CriticalIncidents).Error; err != nil {
		return DashboardStats{}, err
	}

	var recent []model.SecurityIncident
	cutoff := time.Now().Add(-24 * time.Hour)
	if err := s.db.Select("threat_level").Where("created_at >= ?", cutoff).Find(&recent).Error; err != nil {
		return DashboardStats{}, err
	}
	if len(recent) > 0 {
		var sum float64
		for _, inc := range recent {
			v, _ := strconv.ParseFloat(inc.ThreatLevel, 64)
			sum += v
		}
		stats.ThreatLevel = int(math.Round(sum / float64(len(recent))))
	}

	var resolved []model.SecurityIncident
	if err := s.db.Select("detected_at", "resolved_at").Where("resolved_at IS NOT NULL").Find(&resolved).Error; err != nil {
		return DashboardStats{}, err
	}
	if len(resolved) > 0 {
		var total time.Duration
		for _, inc := range resolved {
			total += inc.ResolvedAt.Sub(inc.DetectedAt)
		}
		hours := (total / time.Duration(len(resolved))).Hours()
		stats.AverageResolutionTime = math.Round(hours*100) / 100
	}

	return stats, nil
}
