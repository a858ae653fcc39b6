package endpoint

import (
	"time"

	"github.com/daifend/platform/model"
	"github.com/daifend/platform/util"
	"github.com/gin-gonic/gin"
)

type createThreatIntelligenceRequest struct {
	ThreatType  string     `json:"threatType" example:"credential_stuffing"`
	Description string     `json:"description" example:"Botnet rotating leaked credential pairs"`
	Indicators  []string   `json:"indicators" example:"185.220.101.0/24,login-burst>50/min"`
	Confidence  string     `json:"confidence" example:"92.00"`
	Source      string     `json:"source" example:"Daifend Research"`
	IsActive    *bool      `json:"isActive"`
	ExpiresAt   *time.Time `json:"expiresAt"`
}

// ListThreatIntelligence godoc
// @Summary      List threat intelligence
// @Description  Newest-created first. Active rows only, unless active=false is supplied; any other value keeps the filter on.
// @Tags         ThreatIntelligence
// @Produce      json
// @Param        active query string false "Pass the literal string false to include inactive rows"
// @Success      200 {array} model.ThreatIntelligence
// @Failure      500 {object} util.APIError "Server error"
// @Router       /api/threat-intelligence [get]
func ListThreatIntelligence(c *gin.Context) {
	// Only the exact string "false" disables the isActive filter.
	activeOnly := c.Query("active") != "false"

	storage, ok := getStorage(c)
	if !ok {
		return
	}

	threats, err := storage.ListThreatIntelligence(activeOnly)
	if err != nil {
		util.CallServerError(c, "Failed to fetch threat intelligence", err)
		return
	}
	util.CallSuccessOK(c, threats)
}

// CreateThreatIntelligence godoc
// @Summary      Record a threat intelligence entry
// @Description  isActive defaults to true; expiresAt is advisory and never swept automatically
// @Tags         ThreatIntelligence
// @Accept       json
// @Produce      json
// @Param        request body createThreatIntelligenceRequest true "Threat fields"
// @Success      201 {object} model.ThreatIntelligence
// @Failure      400 {object} util.APIError "Validation failure"
// @Failure      500 {object} util.APIError "Server error"
// @Router       /api/threat-intelligence [post]
func CreateThreatIntelligence(c *gin.Context) {
	var req createThreatIntelligenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, "Invalid request body")
		return
	}
	storage, ok := getStorage(c)
	if !ok {
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	threat := model.ThreatIntelligence{
		ThreatType:  req.ThreatType,
		Description: req.Description,
		Confidence:  req.Confidence,
		Source:      req.Source,
		IsActive:    active,
		ExpiresAt:   req.ExpiresAt,
	}

	if err := storage.CreateThreatIntelligence(&threat, req.Indicators); err != nil {
		handleStoreError(c, err, "", "Failed to create threat intelligence")
		return
	}
	util.CallCreated(c, threat)
}
