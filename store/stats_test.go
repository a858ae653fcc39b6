package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetDashboardStats_EmptyTable(t *testing.T) {
	s, _ := newTestStorage(t, "stats_empty")

	stats, err := s.GetDashboardStats()
	assert.NoError(t, err)
	assert.EqualValues(t, 0, stats.TotalIncidents)
	assert.EqualValues(t, 0, stats.OpenIncidents)
	assert.EqualValues(t, 0, stats.CriticalIncidents)
	assert.Equal(t, 0, stats.ThreatLevel)
	assert.Equal(t, 0.0, stats.AverageResolutionTime)
}

func TestGetDashboardStats_Counts(t *testing.T) {
	s, db := newTestStorage(t, "stats_counts")
	user := newTestUser(t, db, "analyst")

	open := newTestIncident(user.ID, "open one")
	open.Severity = "critical"
	assert.NoError(t, s.CreateSecurityIncident(&open))

	investigating := newTestIncident(user.ID, "investigating one")
	investigating.Status = "investigating"
	assert.NoError(t, s.CreateSecurityIncident(&investigating))

	resolved := newTestIncident(user.ID, "resolved one")
	resolved.Status = "resolved"
	assert.NoError(t, s.CreateSecurityIncident(&resolved))

	stats, err := s.GetDashboardStats()
	assert.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalIncidents)
	assert.EqualValues(t, 1, stats.OpenIncidents)
	assert.EqualValues(t, 1, stats.CriticalIncidents)
}

func TestGetDashboardStats_ThreatLevelTrailingWindow(t *testing.T) {
	s, db := newTestStorage(t, "stats_threat")
	user := newTestUser(t, db, "analyst")

	recent := newTestIncident(user.ID, "recent high")
	recent.ThreatLevel = "80.00"
	assert.NoError(t, s.CreateSecurityIncident(&recent))

	alsoRecent := newTestIncident(user.ID, "recent low")
	alsoRecent.ThreatLevel = "40.00"
	assert.NoError(t, s.CreateSecurityIncident(&alsoRecent))

	old := newTestIncident(user.ID, "old spike")
	old.ThreatLevel = "99.00"
	assert.NoError(t, s.CreateSecurityIncident(&old))
	// Push the third incident outside the trailing 24h window.
	db.Model(&old).Update("created_at", time.Now().Add(-48*time.Hour))

	stats, err := s.GetDashboardStats()
	assert.NoError(t, err)
	assert.Equal(t, 60, stats.ThreatLevel)
}

func TestGetDashboardStats_AverageResolutionTime(t *testing.T) {
	s, db := newTestStorage(t, "stats_resolution")
	user := newTestUser(t, db, "analyst")

	// Resolved in 2 hours.
	first := newTestIncident(user.ID, "fast fix")
	first.Status = "resolved"
	first.DetectedAt = time.Now().Add(-3 * time.Hour)
	resolvedA := first.DetectedAt.Add(2 * time.Hour)
	first.ResolvedAt = &resolvedA
	assert.NoError(t, s.CreateSecurityIncident(&first))

	// Resolved in 4 hours.
	second := newTestIncident(user.ID, "slow fix")
	second.Status = "resolved"
	second.DetectedAt = time.Now().Add(-6 * time.Hour)
	resolvedB := second.DetectedAt.Add(4 * time.Hour)
	second.ResolvedAt = &resolvedB
	assert.NoError(t, s.CreateSecurityIncident(&second))

	// Unresolved rows never count toward the mean.
	pending := newTestIncident(user.ID, "still open")
	assert.NoError(t, s.CreateSecurityIncident(&pending))

	stats, err := s.GetDashboardStats()
	assert.NoError(t, err)
	assert.InDelta(t, 3.0, stats.AverageResolutionTime, 0.01)
}

func TestGetDashboardStats_ThreatLevelRounds(t *testing.T) {
	s, db := newTestStorage(t, "stats_round")
	user := newTestUser(t, db, "analyst")

	a := newTestIncident(user.ID, "a")
	a.ThreatLevel = "70.00"
	assert.NoError(t, s.CreateSecurityIncident(&a))

	b := newTestIncident(user.ID, "b")
	b.ThreatLevel = "71.00"
	assert.NoError(t, s.CreateSecurityIncident(&b))

	c := newTestIncident(user.ID, "c")
	c.ThreatLevel = "71.00"
	assert.NoError(t, s.CreateSecurityIncident(&c))

	stats, err := s.GetDashboardStats()
	assert.NoError(t, err)
	// Mean 70.666... rounds to 71.
	assert.Equal(t, 71, stats.ThreatLevel)
}
