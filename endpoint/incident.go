package endpoint

import (
	"time"

	"github.com/daifend/platform/model"
	"github.com/daifend/platform/util"
	"github.com/gin-gonic/gin"
)

type createSecurityIncidentRequest struct {
	Title       string     `json:"title" example:"Advanced Persistent Threat Detected"`
	Description string     `json:"description" example:"Credential stuffing against login endpoints"`
	Severity    string     `json:"severity" example:"high"`
	Status      string     `json:"status" example:"open"`
	ThreatLevel string     `json:"threatLevel" example:"72.50"`
	Source      string     `json:"source" example:"External Network"`
	DetectedAt  *time.Time `json:"detectedAt"`
	ResolvedAt  *time.Time `json:"resolvedAt"`
	AssignedTo  *uint      `json:"assignedTo"`
	CreatedBy   uint       `json:"createdBy" example:"1"`
}

// ListSecurityIncidents godoc
// @Summary      List security incidents
// @Description  Incidents newest-created first, optionally limited
// @Tags         SecurityIncident
// @Produce      json
// @Param        limit query int false "Maximum number of results" default(50)
// @Success      200 {array} model.SecurityIncident
// @Failure      400 {object} util.APIError "Invalid limit"
// @Failure      500 {object} util.APIError "Server error"
// @Router       /api/security-incidents [get]
func ListSecurityIncidents(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}
	storage, ok := getStorage(c)
	if !ok {
		return
	}

	incidents, err := storage.ListSecurityIncidents(limit)
	if err != nil {
		util.CallServerError(c, "Failed to fetch security incidents", err)
		return
	}
	util.CallSuccessOK(c, incidents)
}

// GetSecurityIncident godoc
// @Summary      Get a security incident
// @Tags         SecurityIncident
// @Produce      json
// @Param        id path int true "Incident ID"
// @Success      200 {object} model.SecurityIncident
// @Failure      400 {object} util.APIError "Invalid id"
// @Failure      404 {object} util.APIError "Incident not found"
// @Failure      500 {object} util.APIError "Server error"
// @Router       /api/security-incidents/{id} [get]
func GetSecurityIncident(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	storage, ok := getStorage(c)
	if !ok {
		return
	}

	incident, err := storage.GetSecurityIncident(id)
	if err != nil {
		handleStoreError(c, err, "Security incident not found", "Failed to fetch security incident")
		return
	}
	util.CallSuccessOK(c, incident)
}

// CreateSecurityIncident godoc
// @Summary      Create a security incident
// @Description  Status defaults to "open"; resolvedAt is never stamped automatically
// @Tags         SecurityIncident
// @Accept       json
// @Produce      json
// @Param        request body createSecurityIncidentRequest true "Incident fields"
// @Success      201 {object} model.SecurityIncident
// @Failure      400 {object} util.APIError "Validation failure"
// @Failure      500 {object} util.APIError "Server error"
// @Router       /api/security-incidents [post]
func CreateSecurityIncident(c *gin.Context) {
	var req createSecurityIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, "Invalid request body")
		return
	}
	storage, ok := getStorage(c)
	if !ok {
		return
	}

	incident := model.SecurityIncident{
		Title:       req.Title,
		Description: req.Description,
		Severity:    req.Severity,
		Status:      req.Status,
		ThreatLevel: req.ThreatLevel,
		Source:      req.Source,
		ResolvedAt:  req.ResolvedAt,
		AssignedTo:  req.AssignedTo,
		CreatedBy:   req.CreatedBy,
	}
	if req.DetectedAt != nil {
		incident.DetectedAt = *req.DetectedAt
	}

	if err := storage.CreateSecurityIncident(&incident); err != nil {
		handleStoreError(c, err, "", "Failed to create security incident")
		return
	}
	util.CallCreated(c, incident)
}

// UpdateSecurityIncident godoc
// @Summary      Update a security incident
// @Description  Partial update; any status may follow any status
// @Tags         SecurityIncident
// @Accept       json
// @Produce      json
// @Param        id path int true "Incident ID"
// @Param        request body model.SecurityIncidentUpdate true "Fields to update"
// @Success      200 {object} model.SecurityIncident
// @Failure      400 {object} util.APIError "Validation failure"
// @Failure      404 {object} util.APIError "Incident not found"
// @Failure      500 {object} util.APIError "Server error"
// @Router       /api/security-incidents/{id} [patch]
func UpdateSecurityIncident(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var updates model.SecurityIncidentUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		util.CallUserError(c, "Invalid request body")
		return
	}
	storage, ok := getStorage(c)
	if !ok {
		return
	}

	incident, err := storage.UpdateSecurityIncident(id, updates)
	if err != nil {
		handleStoreError(c, err, "Security incident not found", "Failed to update security incident")
		return
	}
	util.CallSuccessOK(c, incident)
}
