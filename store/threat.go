package store

import "github.com/daifend/platform/model"

// ListThreatIntelligence returns threat records newest-created first. With
// activeOnly set, only rows whose isActive flag is still true are returned.
func (s *Storage) ListThreatIntelligence(activeOnly bool) ([]model.ThreatIntelligence, error) {
	query := s.db.Order("created_at DESC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var threats []model.ThreatIntelligence
	err := query.Find(&threats).Error
	return threats, err
}

// CreateThreatIntelligence validates and persists a new threat record. The
// indicator list must be non-empty; expiry is advisory and never enforced.
func (s *Storage) CreateThreatIntelligence(t *model.ThreatIntelligence, indicators []string) error {
	if t.ThreatType == "" || t.Description == "" || t.Source == "" {
		return invalidf("threatType, description and source are required")
	}
	if len(indicators) == 0 {
		return invalidf("at least one indicator is required")
	}
	if !isDecimal(t.Confidence) {
		return invalidf("confidence must be a decimal string")
	}

	encoded, err := model.EncodeIndicators(indicators)
	if err != nil {
		return err
	}
	t.Indicators = encoded
	return s.db.Create(t).Error
}
