package endpoint

import (
	"encoding/json"
	"time"

	"github.com/daifend/platform/model"
	"github.com/daifend/platform/util"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type createSecurityEventRequest struct {
	EventType string                 `json:"eventType" example:"intrusion_attempt"`
	Severity  string                 `json:"severity" example:"high"`
	Message   string                 `json:"message" example:"Blocked SSH brute force"`
	SourceIP  string                 `json:"sourceIp" example:"185.220.101.34"`
	TargetIP  string                 `json:"targetIp" example:"10.0.1.12"`
	UserID    *uint                  `json:"userId"`
	Metadata  map[string]interface{} `json:"metadata"`
	Timestamp *time.Time             `json:"timestamp"`
	Processed bool                   `json:"processed"`
}

// ListSecurityEvents godoc
// @Summary      List security events
// @Description  Events newest-by-timestamp first, optionally limited
// @Tags         SecurityEvent
// @Produce      json
// @Param        limit query int false "Maximum number of results" default(100)
// @Success      200 {array} model.SecurityEvent
// @Failure      400 {object} util.APIError "Invalid limit"
// @Failure      500 {object} util.APIError "Server error"
// @Router       /api/security-events [get]
func ListSecurityEvents(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}
	storage, ok := getStorage(c)
	if !ok {
		return
	}

	events, err := storage.ListSecurityEvents(limit)
	if err != nil {
		util.CallServerError(c, "Failed to fetch security events", err)
		return
	}
	util.CallSuccessOK(c, events)
}

// CreateSecurityEvent godoc
// @Summary      Record a security event
// @Description  Metadata is stored opaque, not validated against a schema
// @Tags         SecurityEvent
// @Accept       json
// @Produce      json
// @Param        request body createSecurityEventRequest true "Event fields"
// @Success      201 {object} model.SecurityEvent
// @Failure      400 {object} util.APIError "Validation failure"
// @Failure      500 {object} util.APIError "Server error"
// @Router       /api/security-events [post]
func CreateSecurityEvent(c *gin.Context) {
	var req createSecurityEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, "Invalid request body")
		return
	}
	storage, ok := getStorage(c)
	if !ok {
		return
	}

	event := model.SecurityEvent{
		EventType: req.EventType,
		Severity:  req.Severity,
		Message:   req.Message,
		SourceIP:  req.SourceIP,
		TargetIP:  req.TargetIP,
		UserID:    req.UserID,
		Processed: req.Processed,
	}
	if req.Timestamp != nil {
		event.Timestamp = *req.Timestamp
	}
	if req.Metadata != nil {
		b, err := json.Marshal(req.Metadata)
		if err != nil {
			util.CallUserError(c, "Invalid metadata")
			return
		}
		event.Metadata = datatypes.JSON(b)
	}

	if err := storage.CreateSecurityEvent(&event); err != nil {
		handleStoreError(c, err, "", "Failed to create security event")
		return
	}
	util.CallCreated(c, event)
}
