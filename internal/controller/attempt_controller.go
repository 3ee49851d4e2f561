package controller

import (
	"net/http"

	"quizdesk_backend/internal/service"
	"quizdesk_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AttemptController struct {
	Service *service.AttemptService
}

func NewAttemptController(svc *service.AttemptService) *AttemptController {
	return &AttemptController{Service: svc}
}

type createAttemptRequest struct {
	QuizID    uint `json:"quiz_id"`
	StudentID uint `json:"student_id"`
}

type submitAttemptRequest struct {
	Answers []service.AnswerSubmission `json:"answers"`
}

// @Summary Start an attempt
// @Tags attempts
// @Accept json
// @Produce json
// @Param body body createAttemptRequest true "quiz and student"
// @Success 200 {object} model.Attempt
// @Router /attempts [post]
func (c *AttemptController) Create(ctx *gin.Context) {
	var req createAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "quiz_id and student_id required")
		return
	}
	if req.QuizID == 0 || req.StudentID == 0 {
		util.BadRequest(ctx, "quiz_id and student_id required")
		return
	}

	attempt, err := c.Service.Start(req.QuizID, req.StudentID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, attempt)
}

// @Summary Submit an attempt's answers
// @Tags attempts
// @Accept json
// @Produce json
// @Param id path int true "attempt id"
// @Param body body submitAttemptRequest true "answers"
// @Success 200 {object} map[string]interface{}
// @Router /attempts/{id}/submit [post]
func (c *AttemptController) Submit(ctx *gin.Context) {
	id, err := util.ParseID(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid attempt id")
		return
	}

	var req submitAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	count, err := c.Service.Submit(id, req.Answers)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "submitted",
		"count":  count,
	})
}
