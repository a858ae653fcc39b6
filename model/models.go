package model

// AllModels lists every entity for AutoMigrate, ordered so referenced tables
// are created before the tables holding foreign keys to them.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&AIModel{},
		&SecurityIncident{},
		&ThreatIntelligence{},
		&SecurityEvent{},
		&AIEthicsAudit{},
	}
}
