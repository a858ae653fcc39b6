package endpoint

import (
	"strconv"
	"time"

	"github.com/daifend/platform/model"
	"github.com/daifend/platform/util"
	"github.com/gin-gonic/gin"
)

type createAIEthicsAuditRequest struct {
	ModelID         uint       `json:"modelId" example:"1"`
	AuditType       string     `json:"auditType" example:"bias"`
	Result          string     `json:"result" example:"passed"`
	Score           string     `json:"score" example:"94.50"`
	Findings        string     `json:"findings" example:"No statistically significant bias detected"`
	Recommendations string     `json:"recommendations"`
	AuditedBy       uint       `json:"auditedBy" example:"1"`
	AuditDate       *time.Time `json:"auditDate"`
	NextAuditDue    *time.Time `json:"nextAuditDue"`
}

// ListAIEthicsAudits godoc
// @Summary      List AI ethics audits
// @Description  Audits newest-audit-date first, optionally filtered by model
// @Tags         AIEthicsAudit
// @Produce      json
// @Param        modelId query int false "Filter audits to one model"
// @Success      200 {array} model.AIEthicsAudit
// @Failure      400 {object} util.APIError "Invalid modelId"
// @Failure      500 {object} util.APIError "Server error"
// @Router       /api/ai-ethics-audits [get]
func ListAIEthicsAudits(c *gin.Context) {
	var modelID uint
	if raw := c.Query("modelId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			util.CallUserError(c, "Invalid modelId parameter")
			return
		}
		modelID = uint(parsed)
	}

	storage, ok := getStorage(c)
	if !ok {
		return
	}

	audits, err := storage.ListAIEthicsAudits(modelID)
	if err != nil {
		util.CallServerError(c, "Failed to fetch AI ethics audits", err)
		return
	}
	util.CallSuccessOK(c, audits)
}

// CreateAIEthicsAudit godoc
// @Summary      Record an AI ethics audit
// @Tags         AIEthicsAudit
// @Accept       json
// @Produce      json
// @Param        request body createAIEthicsAuditRequest true "Audit fields"
// @Success      201 {object} model.AIEthicsAudit
// @Failure      400 {object} util.APIError "Validation failure"
// @Failure      500 {object} util.APIError "Server error"
// @Router       /api/ai-ethics-audits [post]
func CreateAIEthicsAudit(c *gin.Context) {
	var req createAIEthicsAuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, "Invalid request body")
		return
	}
	storage, ok := getStorage(c)
	if !ok {
		return
	}

	audit := model.AIEthicsAudit{
		ModelID:         req.ModelID,
		AuditType:       req.AuditType,
		Result:          req.Result,
		Score:           req.Score,
		Findings:        req.Findings,
		Recommendations: req.Recommendations,
		AuditedBy:       req.AuditedBy,
		NextAuditDue:    req.NextAuditDue,
	}
	if req.AuditDate != nil {
		audit.AuditDate = *req.AuditDate
	}

	if err := storage.CreateAIEthicsAudit(&audit); err != nil {
		handleStoreError(c, err, "", "Failed to create AI ethics audit")
		return
	}
	util.CallCreated(c, audit)
}
