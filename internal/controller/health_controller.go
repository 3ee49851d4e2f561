package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthStore is the slice of the user repository the health check needs
// to prove the hosted store answers queries.
type HealthStore interface {
	SampleIDs(limit int) ([]map[string]interface{}, error)
}

type HealthController struct {
	Users HealthStore
}

func NewHealthController(users HealthStore) *HealthController {
	return &HealthController{Users: users}
}

// @Summary Health check
// @Description Verifies the hosted store answers queries
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	sample, err := c.Users.SampleIDs(1)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status": "error",
			"error":  err.Error(),
		})
		return
	}
	if sample == nil {
		sample = []map[string]interface{}{}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":             "ok",
		"supabase_connected": true,
		"sample":             sample,
	})
}
