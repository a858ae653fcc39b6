package endpoint

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/daifend/platform/config"
	"github.com/daifend/platform/middleware"
	"github.com/daifend/platform/model"
	"github.com/daifend/platform/store"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// setupEndpointTestDB connects the shared in-memory test database, migrates
// the full schema and clears every table. Tables are dropped again in
// cleanup so tests cannot leak rows into each other.
func setupEndpointTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	t.Setenv("APPENV", "test")

	db, err := config.ConnectDatabase()
	if err != nil {
		t.Fatalf("failed to connect test DB: %v", err)
	}

	models := model.AllModels()
	if err := db.AutoMigrate(models...); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	for _, m := range models {
		db.Where("1 = 1").Delete(m)
	}

	t.Cleanup(func() {
		for _, m := range models {
			_ = db.Migrator().DropTable(m)
		}
	})

	return db
}

// setupEndpointTest returns a Gin engine and database connection configured
// for endpoint tests.
func setupEndpointTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupEndpointTestDB(t)
	r := gin.New()
	r.Use(middleware.DatabaseMiddleware(db))
	return r, db
}

// doJSON performs a request with an optional JSON body and decodes the
// response into a generic map when possible.
func doJSON(r http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var response map[string]interface{}
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &response)
	}
	return w, response
}

// decodeList decodes a JSON array response body.
func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var list []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to decode list response: %v (body: %s)", err, w.Body.String())
	}
	return list
}

// createTestUser persists a user so incidents and audits have a valid creator.
func createTestUser(t *testing.T, db *gorm.DB, username string) model.User {
	t.Helper()
	user := model.User{
		Username: username,
		Email:    fmt.Sprintf("%s-%d@test.daifend.com", username, time.Now().UnixNano()),
		Password: "opaque",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// createTestIncident persists an incident directly through the store.
func createTestIncident(t *testing.T, db *gorm.DB, creator uint, title string) model.SecurityIncident {
	t.Helper()
	incident := model.SecurityIncident{
		Title:       title,
		Description: "test incident",
		Severity:    "medium",
		ThreatLevel: "50.00",
		Source:      "test",
		DetectedAt:  time.Now().Add(-time.Hour),
		CreatedBy:   creator,
	}
	if err := store.New(db).CreateSecurityIncident(&incident); err != nil {
		t.Fatalf("failed to create test incident: %v", err)
	}
	return incident
}

// testDeps bundles the DB handle and a persisted user for handlers that
// need a valid creator or auditor.
type testDeps struct {
	db   *gorm.DB
	user model.User
}

func countRows(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(m).Count(&n).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return n
}
