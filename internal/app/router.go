package app

import (
	"quizdesk_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		api.GET("/questions", c.question.List)
		api.GET("/questions/:id", c.question.Get)

		api.POST("/attempts", c.attempt.Create)
		api.POST("/attempts/:id/submit", c.attempt.Submit)

		api.GET("/student/:id", c.student.Profile)
		api.GET("/teacher/:id/stats", c.teacher.Stats)

		api.GET("/quiz/:id/report.pdf", c.report.QuizReport)
	}
}
