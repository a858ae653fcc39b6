package endpoint

import (
	"errors"
	"strconv"

	"github.com/daifend/platform/middleware"
	"github.com/daifend/platform/store"
	"github.com/daifend/platform/util"
	"github.com/gin-gonic/gin"
)

// getStorage resolves the repository for this request. A missing database
// connection is a server fault, reported before any handler logic runs.
func getStorage(c *gin.Context) (*store.Storage, bool) {
	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, "Database connection not available", errors.New("db is nil"))
		return nil, false
	}
	return store.New(db), true
}

// parseLimit reads the optional limit query parameter. A missing parameter
// yields zero (store default applies); a non-numeric or negative value is
// rejected with a 400 rather than silently ignored.
func parseLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		util.CallUserError(c, "Invalid limit parameter")
		return 0, false
	}
	return limit, true
}

// parseIDParam reads the :id path parameter as a positive integer.
func parseIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		util.CallUserError(c, "Invalid id parameter")
		return 0, false
	}
	return uint(id), true
}

// handleStoreError maps a store failure onto the API's error taxonomy:
// missing row -> 404, validation failure -> 400, anything else -> 500.
func handleStoreError(c *gin.Context, err error, notFoundMsg, serverMsg string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		util.CallErrorNotFound(c, notFoundMsg)
	case errors.Is(err, store.ErrInvalid):
		util.CallUserError(c, err.Error())
	default:
		util.CallServerError(c, serverMsg, err)
	}
}
