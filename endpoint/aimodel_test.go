package endpoint

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/daifend/platform/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func aiModelRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	r, db := setupEndpointTest(t)
	r.GET("/api/ai-models", ListAIModels)
	r.POST("/api/ai-models", CreateAIModel)
	r.PATCH("/api/ai-models/:id", UpdateAIModel)
	return r, db
}

func TestCreateAIModelEndpoint(t *testing.T) {
	r, _ := aiModelRouter(t)

	w, response := doJSON(r, http.MethodPost, "/api/ai-models", map[string]interface{}{
		"name":     "Anomaly Scorer",
		"version":  "v3.0.1",
		"type":     "bias_monitor",
		"accuracy": "0.9712",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Anomaly Scorer", response["name"])
	assert.Equal(t, "active", response["status"], "status defaults to active")
}

func TestCreateAIModelInvalidType(t *testing.T) {
	r, _ := aiModelRouter(t)

	w, _ := doJSON(r, http.MethodPost, "/api/ai-models", map[string]interface{}{
		"name":     "Bad Type",
		"version":  "v1.0.0",
		"type":     "clairvoyance",
		"accuracy": "0.5000",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAIModelsNewestFirst(t *testing.T) {
	r, db := aiModelRouter(t)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		m := createTestAIModel(t, db, fmt.Sprintf("model-%d", i))
		db.Model(&model.AIModel{}).
			Where("id = ?", m.ID).
			Update("created_at", base.Add(time.Duration(i)*time.Minute))
	}

	w, _ := doJSON(r, http.MethodGet, "/api/ai-models", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	assert.Len(t, list, 3)
	assert.Equal(t, "model-2", list[0]["name"])
}

func TestUpdateAIModelEndpoint(t *testing.T) {
	r, db := aiModelRouter(t)
	m := createTestAIModel(t, db, "retraining target")

	w, response := doJSON(r, http.MethodPatch, fmt.Sprintf("/api/ai-models/%d", m.ID), map[string]interface{}{
		"status":   "training",
		"accuracy": "0.9901",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "training", response["status"])
	assert.Equal(t, "0.9901", response["accuracy"])
	assert.Equal(t, "retraining target", response["name"], "unset fields untouched")
}

func TestUpdateAIModelNotFound(t *testing.T) {
	r, _ := aiModelRouter(t)

	w, response := doJSON(r, http.MethodPatch, "/api/ai-models/99999", map[string]interface{}{
		"status": "inactive",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "AI model not found", response["error"])
}

func TestUpdateAIModelInvalidID(t *testing.T) {
	r, _ := aiModelRouter(t)

	w, response := doJSON(r, http.MethodPatch, "/api/ai-models/abc", map[string]interface{}{
		"status": "inactive",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid id parameter", response["error"])
}
