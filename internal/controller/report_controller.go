package controller

import (
	"fmt"
	"net/http"

	"quizdesk_backend/internal/service"
	"quizdesk_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Service *service.ReportService
}

func NewReportController(svc *service.ReportService) *ReportController {
	return &ReportController{Service: svc}
}

// @Summary Download the attempt report for a quiz
// @Tags reports
// @Produce application/pdf
// @Param id path int true "quiz id"
// @Success 200 {file} binary
// @Router /quiz/{id}/report.pdf [get]
func (c *ReportController) QuizReport(ctx *gin.Context) {
	id, err := util.ParseID(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid quiz id")
		return
	}

	filename, data, err := c.Service.QuizReport(ctx.Request.Context(), id)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "application/pdf", data)
}
