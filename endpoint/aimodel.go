package endpoint

import (
	"time"

	"github.com/daifend/platform/model"
	"github.com/daifend/platform/util"
	"github.com/gin-gonic/gin"
)

type createAIModelRequest struct {
	Name          string     `json:"name" example:"Threat Detection Engine"`
	Version       string     `json:"version" example:"v2.1.0"`
	Type          string     `json:"type" example:"threat_detection"`
	Status        string     `json:"status" example:"active"`
	Accuracy      string     `json:"accuracy" example:"0.9850"`
	BiasScore     string     `json:"biasScore" example:"0.02"`
	LastTrainedAt *time.Time `json:"lastTrainedAt"`
	DeployedAt    *time.Time `json:"deployedAt"`
}

// ListAIModels godoc
// @Summary      List AI models
// @Description  Models newest-created first
// @Tags         AIModel
// @Produce      json
// @Success      200 {array} model.AIModel
// @Failure      500 {object} util.APIError "Server error"
// @Router       /api/ai-models [get]
func ListAIModels(c *gin.Context) {
	storage, ok := getStorage(c)
	if !ok {
		return
	}

	models, err := storage.ListAIModels()
	if err != nil {
		util.CallServerError(c, "Failed to fetch AI models", err)
		return
	}
	util.CallSuccessOK(c, models)
}

// CreateAIModel godoc
// @Summary      Register an AI model
// @Description  Status defaults to "active"
// @Tags         AIModel
// @Accept       json
// @Produce      json
// @Param        request body createAIModelRequest true "Model fields"
// @Success      201 {object} model.AIModel
// @Failure      400 {object} util.APIError "Validation failure"
// @Failure      500 {object} util.APIError "Server error"
// @Router       /api/ai-models [post]
func CreateAIModel(c *gin.Context) {
	var req createAIModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, "Invalid request body")
		return
	}
	storage, ok := getStorage(c)
	if !ok {
		return
	}

	m := model.AIModel{
		Name:          req.Name,
		Version:       req.Version,
		Type:          req.Type,
		Status:        req.Status,
		Accuracy:      req.Accuracy,
		BiasScore:     req.BiasScore,
		LastTrainedAt: req.LastTrainedAt,
		DeployedAt:    req.DeployedAt,
	}

	if err := storage.CreateAIModel(&m); err != nil {
		handleStoreError(c, err, "", "Failed to create AI model")
		return
	}
	util.CallCreated(c, m)
}

// UpdateAIModel godoc
// @Summary      Update an AI model
// @Tags         AIModel
// @Accept       json
// @Produce      json
// @Param        id path int true "Model ID"
// @Param        request body model.AIModelUpdate true "Fields to update"
// @Success      200 {object} model.AIModel
// @Failure      400 {object} util.APIError "Validation failure"
// @Failure      404 {object} util.APIError "Model not found"
// @Failure      500 {object} util.APIError "Server error"
// @Router       /api/ai-models/{id} [patch]
func UpdateAIModel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var updates model.AIModelUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		util.CallUserError(c, "Invalid request body")
		return
	}
	storage, ok := getStorage(c)
	if !ok {
		return
	}

	m, err := storage.UpdateAIModel(id, updates)
	if err != nil {
		handleStoreError(c, err, "AI model not found", "Failed to update AI model")
		return
	}
	util.CallSuccessOK(c, m)
}
