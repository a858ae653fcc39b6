package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeed_Idempotent(t *testing.T) {
	db := setupTestDB(t, "seed", AllModels()...)

	assert.NoError(t, Seed(db))

	var users, models, incidents, threats, events, audits int64
	db.Model(&User{}).Count(&users)
	db.Model(&AIModel{}).Count(&models)
	db.Model(&SecurityIncident{}).Count(&incidents)
	db.Model(&ThreatIntelligence{}).Count(&threats)
	db.Model(&SecurityEvent{}).Count(&events)
	db.Model(&AIEthicsAudit{}).Count(&audits)

	assert.EqualValues(t, 2, users)
	assert.EqualValues(t, 3, models)
	assert.EqualValues(t, 4, incidents)
	assert.NotZero(t, threats)
	assert.NotZero(t, events)
	assert.NotZero(t, audits)

	// Running the seeder again must not duplicate anything.
	assert.NoError(t, Seed(db))

	var again int64
	db.Model(&User{}).Count(&again)
	assert.Equal(t, users, again)
	db.Model(&SecurityIncident{}).Count(&again)
	assert.Equal(t, incidents, again)
	db.Model(&AIModel{}).Count(&again)
	assert.Equal(t, models, again)
}

func TestSeed_CreatesReferencedRows(t *testing.T) {
	db := setupTestDB(t, "seed_refs", AllModels()...)
	assert.NoError(t, Seed(db))

	var admin User
	assert.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.Equal(t, "admin", admin.Role)

	var incident SecurityIncident
	assert.NoError(t, db.Where("severity = ?", "critical").First(&incident).Error)
	assert.NotZero(t, incident.CreatedBy)
	assert.NotNil(t, incident.AssignedTo)
}
