package store

import "github.com/daifend/platform/model"

// ListSecurityEvents returns events newest-by-timestamp first. A limit of
// zero or less falls back to the default page size.
func (s *Storage) ListSecurityEvents(limit int) ([]model.SecurityEvent, error) {
	if limit <= 0 {
		limit = defaultEventLimit
	}
	var events []model.SecurityEvent
	err := s.db.Order("timestamp DESC").Limit(limit).Find(&events).Error
	return events, err
}

// CreateSecurityEvent validates and persists a new event. Metadata is stored
// opaque; only presence of the core fields is checked.
func (s *Storage) CreateSecurityEvent(e *model.SecurityEvent) error {
	if e.EventType == "" || e.Severity == "" || e.Message == "" {
		return invalidf("eventType, severity and message are required")
	}
	if e.Timestamp.IsZero() {
		return invalidf("timestamp is required")
	}
	return s.db.Create(e).Error
}
