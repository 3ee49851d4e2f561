package controller

import (
	"net/http"

	"quizdesk_backend/internal/service"
	"quizdesk_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TeacherController struct {
	Service *service.TeacherService
}

func NewTeacherController(svc *service.TeacherService) *TeacherController {
	return &TeacherController{Service: svc}
}

// @Summary Aggregated stats for a teacher's quizzes
// @Tags teachers
// @Produce json
// @Param id path int true "teacher id"
// @Success 200 {object} service.TeacherStats
// @Router /teacher/{id}/stats [get]
func (c *TeacherController) Stats(ctx *gin.Context) {
	id, err := util.ParseID(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid teacher id")
		return
	}

	stats, err := c.Service.Stats(id)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
