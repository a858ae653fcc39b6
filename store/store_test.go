package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/daifend/platform/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestStorage opens a uniquely named in-memory SQLite database with the
// full schema migrated and returns a Storage over it.
func newTestStorage(t *testing.T, name string) (*Storage, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:storetest_%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		t.Fatalf("failed to auto-migrate: %v", err)
	}
	return New(db), db
}

// newTestUser persists a user for rows that need a creator or auditor.
func newTestUser(t *testing.T, db *gorm.DB, username string) model.User {
	t.Helper()
	user := model.User{
		Username: username,
		Email:    fmt.Sprintf("%s@test.daifend.com", username),
		Password: "opaque",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// newTestIncident builds a valid incident for the given creator; callers
// tweak fields before persisting.
func newTestIncident(creator uint, title string) model.SecurityIncident {
	return model.SecurityIncident{
		Title:       title,
		Description: "test incident",
		Severity:    "medium",
		ThreatLevel: "50.00",
		Source:      "test",
		DetectedAt:  time.Now().Add(-time.Hour),
		CreatedBy:   creator,
	}
}

func countIncidents(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&model.SecurityIncident{}).Count(&n).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return n
}
