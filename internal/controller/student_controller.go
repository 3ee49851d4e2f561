package controller

import (
	"errors"
	"net/http"

	"quizdesk_backend/internal/service"
	"quizdesk_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StudentController struct {
	Service *service.StudentService
}

func NewStudentController(svc *service.StudentService) *StudentController {
	return &StudentController{Service: svc}
}

// @Summary Student profile with recent attempts
// @Tags students
// @Produce json
// @Param id path int true "student id"
// @Success 200 {object} map[string]interface{}
// @Router /student/{id} [get]
func (c *StudentController) Profile(ctx *gin.Context) {
	id, err := util.ParseID(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid student id")
		return
	}

	user, attempts, err := c.Service.Profile(id)
	if errors.Is(err, service.ErrNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user":     user,
		"attempts": attempts,
	})
}
