package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Seed populates the database with sample users, models, incidents, threat
// intelligence, events and audits. It is idempotent: existing rows are
// detected by their natural keys and left alone.
func Seed(db *gorm.DB) error {
	admin, err := ensureUser(db, User{
		Username: "admin",
		Email:    "admin@daifend.com",
		Password: "hashed_password_here",
		Role:     "admin",
	})
	if err != nil {
		return err
	}

	analyst, err := ensureUser(db, User{
		Username: "security_analyst",
		Email:    "analyst@daifend.com",
		Password: "hashed_password_here",
		Role:     "analyst",
	})
	if err != nil {
		return err
	}

	models, err := seedAIModels(db)
	if err != nil {
		return err
	}

	if err := seedIncidents(db, admin, analyst); err != nil {
		return err
	}
	if err := seedThreats(db); err != nil {
		return err
	}
	if err := seedEvents(db); err != nil {
		return err
	}
	return seedAudits(db, models, admin, analyst)
}

func ensureUser(db *gorm.DB, user User) (User, error) {
	var existing User
	err := db.Where("username = ?", user.Username).First(&existing).Error
	if err == nil {
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return User{}, err
	}
	if err := db.Create(&user).Error; err != nil {
		return User{}, fmt.Errorf("failed to seed user %s: %w", user.Username, err)
	}
	return user, nil
}

func seedAIModels(db *gorm.DB) ([]AIModel, error) {
	now := time.Now()
	samples := []AIModel{
		{
			Name: "Threat Detection Engine", Version: "v2.1.0", Type: "threat_detection",
			Status: "active", Accuracy: "0.9850", BiasScore: "0.02",
			LastTrainedAt: timePtr(now.AddDate(0, 0, -7)), DeployedAt: timePtr(now.AddDate(0, 0, -14)),
		},
		{
			Name: "Bias Monitor System", Version: "v1.3.2", Type: "bias_monitor",
			Status: "active", Accuracy: "0.9720", BiasScore: "0.01",
			LastTrainedAt: timePtr(now.AddDate(0, 0, -3)), DeployedAt: timePtr(now.AddDate(0, 0, -30)),
		},
		{
			Name: "Content Safety Filter", Version: "v1.8.1", Type: "content_filter",
			Status: "active", Accuracy: "0.9950", BiasScore: "0.03",
			LastTrainedAt: timePtr(now.AddDate(0, 0, -1)), DeployedAt: timePtr(now.AddDate(0, 0, -60)),
		},
	}

	out := make([]AIModel, 0, len(samples))
	for _, m := range samples {
		var existing AIModel
		err := db.Where("name = ? AND version = ?", m.Name, m.Version).First(&existing).Error
		if err == nil {
			out = append(out, existing)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		if err := db.Create(&m).Error; err != nil {
			return nil, fmt.Errorf("failed to seed model %s: %w", m.Name, err)
		}
		out = append(out, m)
	}
	return out, nil
}

func seedIncidents(db *gorm.DB, admin, analyst User) error {
	now := time.Now()
	incidents := []SecurityIncident{
		{
			Title:       "Advanced Persistent Threat Detected",
			Description: "Sophisticated AI-powered attack targeting user authentication systems. Multiple vectors detected including social engineering and credential stuffing.",
			Severity:    "critical", Status: "investigating", ThreatLevel: "85.50",
			Source: "External Network", DetectedAt: now.Add(-2 * time.Hour),
			CreatedBy: analyst.ID, AssignedTo: &admin.ID,
		},
		{
			Title:       "Anomalous AI Model Behavior",
			Description: "Bias monitor detected potential discriminatory patterns in threat classification. Requires immediate ethics review.",
			Severity:    "high", Status: "open", ThreatLevel: "72.30",
			Source: "AI Ethics Monitor", DetectedAt: now.Add(-4 * time.Hour),
			CreatedBy: admin.ID, AssignedTo: &analyst.ID,
		},
		{
			Title:       "DDoS Attack Mitigated",
			Description: "Large-scale distributed denial of service attack successfully mitigated by automated defense systems.",
			Severity:    "medium", Status: "resolved", ThreatLevel: "45.80",
			Source: "CDN Provider", DetectedAt: now.Add(-6 * time.Hour), ResolvedAt: timePtr(now.Add(-5 * time.Hour)),
			CreatedBy: analyst.ID, AssignedTo: &analyst.ID,
		},
		{
			Title:       "Suspicious Data Access Pattern",
			Description: "Unusual data access patterns detected suggesting potential insider threat or compromised credentials.",
			Severity:    "medium", Status: "investigating", ThreatLevel: "58.20",
			Source: "Internal Monitor", DetectedAt: now.Add(-8 * time.Hour),
			CreatedBy: admin.ID, AssignedTo: &analyst.ID,
		},
	}

	for _, inc := range incidents {
		var existing SecurityIncident
		err := db.Where("title = ?", inc.Title).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&inc).Error; err != nil {
			return fmt.Errorf("failed to seed incident %q: %w", inc.Title, err)
		}
	}
	return nil
}

func seedThreats(db *gorm.DB) error {
	now := time.Now()
	type sample struct {
		threat     ThreatIntelligence
		indicators []string
	}
	samples := []sample{
		{
			threat: ThreatIntelligence{
				ThreatType:  "credential_stuffing",
				Description: "Botnet rotating through leaked credential pairs against login endpoints.",
				Confidence:  "92.00", Source: "Daifend Research", IsActive: true,
				ExpiresAt: timePtr(now.AddDate(0, 1, 0)),
			},
			indicators: []string{"185.220.101.0/24", "curl/7.64-botnet", "login-burst>50/min"},
		},
		{
			threat: ThreatIntelligence{
				ThreatType:  "ai_generated_phishing",
				Description: "LLM-generated spear phishing campaign impersonating executive staff.",
				Confidence:  "78.50", Source: "Partner Feed", IsActive: true,
			},
			indicators: []string{"daifend-support.net", "urgent-wire-transfer", "dkim-fail"},
		},
	}

	for _, s := range samples {
		var existing ThreatIntelligence
		err := db.Where("threat_type = ? AND source = ?", s.threat.ThreatType, s.threat.Source).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		encoded, err := EncodeIndicators(s.indicators)
		if err != nil {
			return err
		}
		s.threat.Indicators = encoded
		if err := db.Create(&s.threat).Error; err != nil {
			return fmt.Errorf("failed to seed threat %s: %w", s.threat.ThreatType, err)
		}
	}
	return nil
}

func seedEvents(db *gorm.DB) error {
	now := time.Now()
	events := []SecurityEvent{
		{
			EventType: "intrusion_attempt", Severity: "high",
			Message:  "Blocked SSH brute force from known malicious range",
			SourceIP: "185.220.101.34", TargetIP: "10.0.1.12",
			Timestamp: now.Add(-30 * time.Minute),
		},
		{
			EventType: "anomaly_detected", Severity: "medium",
			Message:  "Outbound traffic spike from build server",
			SourceIP: "10.0.2.41",
			Timestamp: now.Add(-90 * time.Minute), Processed: true,
		},
	}

	for _, e := range events {
		var existing SecurityEvent
		err := db.Where("event_type = ? AND message = ?", e.EventType, e.Message).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&e).Error; err != nil {
			return fmt.Errorf("failed to seed event %s: %w", e.EventType, err)
		}
	}
	return nil
}

func seedAudits(db *gorm.DB, models []AIModel, admin, analyst User) error {
	if len(models) < 2 {
		return nil
	}
	now := time.Now()
	audits := []AIEthicsAudit{
		{
			ModelID: models[0].ID, AuditType: "bias", Result: "passed", Score: "94.50",
			Findings:        "No statistically significant bias detected across protected classes.",
			Recommendations: "Re-audit after next training cycle.",
			AuditedBy:       admin.ID, AuditDate: now.AddDate(0, 0, -10),
			NextAuditDue: timePtr(now.AddDate(0, 3, 0)),
		},
		{
			ModelID: models[1].ID, AuditType: "transparency", Result: "warning", Score: "71.20",
			Findings:  "Model decision explanations incomplete for edge-case classifications.",
			AuditedBy: analyst.ID, AuditDate: now.AddDate(0, 0, -5),
		},
	}

	for _, a := range audits {
		var existing AIEthicsAudit
		err := db.Where("model_id = ? AND audit_type = ?", a.ModelID, a.AuditType).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&a).Error; err != nil {
			return fmt.Errorf("failed to seed audit for model %d: %w", a.ModelID, err)
		}
	}
	return nil
}

func timePtr(t time.Time) *time.Time { return &t }
