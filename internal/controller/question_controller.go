package controller

import (
	"errors"
	"net/http"

	"quizdesk_backend/internal/service"
	"quizdesk_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(svc *service.QuestionService) *QuestionController {
	return &QuestionController{Service: svc}
}

// @Summary List questions
// @Tags questions
// @Produce json
// @Param subject query string false "filter by subject"
// @Param difficulty query string false "filter by difficulty"
// @Success 200 {array} model.Question
// @Router /questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	subject := ctx.Query("subject")
	difficulty := ctx.Query("difficulty")

	questions, err := c.Service.List(subject, difficulty)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, questions)
}

// @Summary Get one question
// @Tags questions
// @Produce json
// @Param id path int true "question id"
// @Success 200 {object} model.Question
// @Router /questions/{id} [get]
func (c *QuestionController) Get(ctx *gin.Context) {
	id, err := util.ParseID(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	question, err := c.Service.Get(id)
	if errors.Is(err, service.ErrNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, question)
}
