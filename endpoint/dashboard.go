package endpoint

import (
	"github.com/daifend/platform/util"
	"github.com/gin-gonic/gin"
)

// GetDashboardStats godoc
// @Summary      Dashboard statistics
// @Description  Incident counts, trailing-24h mean threat level, and mean resolution time in hours across resolved incidents
// @Tags         Dashboard
// @Produce      json
// @Success      200 {object} store.DashboardStats
// @Failure      500 {object} util.APIError "Server error"
// @Router       /api/dashboard/stats [get]
func GetDashboardStats(c *gin.Context) {
	storage, ok := getStorage(c)
	if !ok {
		return
	}

	stats, err := storage.GetDashboardStats()
	if err != nil {
		util.CallServerError(c, "Failed to fetch dashboard stats", err)
		return
	}
	util.CallSuccessOK(c, stats)
}
