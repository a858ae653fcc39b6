package util

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/daifend/platform/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// APIEvent describes a platform activity entry destined for the
// security_events table.
type APIEvent struct {
	EventType string
	Severity  string
	Message   string
	SourceIP  string
	UserID    *uint
	Details   map[string]interface{}
}

var eventLogger *log.Logger
var eventDB *gorm.DB

// SetEventLoggerDB sets the gorm DB used to persist activity events. Call
// this during application startup after the database is initialized; without
// it events only go to stdout.
func SetEventLoggerDB(db *gorm.DB) {
	eventDB = db
}

func init() {
	eventLogger = log.New(os.Stdout, "[SECURITY] ", log.LstdFlags|log.Lmsgprefix)
}

// sanitizeLogValue removes newlines and other characters that could break log
// parsing, and truncates very long values to prevent log flooding.
func sanitizeLogValue(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\t", " ")
	if len(value) > 200 {
		value = value[:200] + "..."
	}
	return value
}

// LogAPIEvent writes the event to the security log and, when a DB was
// configured, persists it best-effort as a SecurityEvent row. Persistence
// failures never fail the request being logged.
func LogAPIEvent(event APIEvent) {
	msg := fmt.Sprintf("Event=%s Severity=%s IP=%s Message=%s",
		sanitizeLogValue(event.EventType),
		sanitizeLogValue(event.Severity),
		sanitizeLogValue(event.SourceIP),
		sanitizeLogValue(event.Message),
	)
	eventLogger.Println(msg)

	if eventDB == nil {
		return
	}

	details := event.Details
	if details == nil {
		details = map[string]interface{}{}
	}
	// Annotate with a location when the GeoIP database can resolve one.
	if city, country := GetIPLocation(event.SourceIP); city != "" || country != "" {
		loc := country
		if city != "" && country != "" {
			loc = fmt.Sprintf("%s/%s", city, country)
		} else if city != "" {
			loc = city
		}
		details["location"] = loc
	}

	var metadata datatypes.JSON
	if b, err := json.Marshal(details); err == nil {
		metadata = datatypes.JSON(b)
	}

	entry := model.SecurityEvent{
		EventType: sanitizeLogValue(event.EventType),
		Severity:  sanitizeLogValue(event.Severity),
		Message:   sanitizeLogValue(event.Message),
		SourceIP:  sanitizeLogValue(event.SourceIP),
		UserID:    event.UserID,
		Metadata:  metadata,
		Timestamp: time.Now(),
	}
	if err := eventDB.Create(&entry).Error; err != nil {
		eventLogger.Printf("Failed to persist activity event: %v", err)
	}
}

// LogStorageError records an internal storage failure for a request.
func LogStorageError(method, path string, err error) {
	eventLogger.Printf("Storage error on %s %s: %v", method, path, err)
}

// LogRateLimitExceeded records a rejected request on a rate-limited endpoint.
func LogRateLimitExceeded(ip, endpoint string) {
	LogAPIEvent(APIEvent{
		EventType: "rate_limit_exceeded",
		Severity:  "medium",
		Message:   fmt.Sprintf("Rate limit exceeded for endpoint: %s", endpoint),
		SourceIP:  ip,
	})
}

// GetEventLoggerForTest returns the current event logger for testing purposes.
func GetEventLoggerForTest() *log.Logger {
	return eventLogger
}

// SetEventLoggerForTest sets a custom logger for testing purposes.
func SetEventLoggerForTest(logger *log.Logger) {
	eventLogger = logger
}
