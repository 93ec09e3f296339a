package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Публичные маршруты аутентификации
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	// Все остальные маршруты требуют сессии
	protected := api.Group("", h.SessionAuthMiddleware())

	protected.POST("/auth/logout", h.logout)
	protected.GET("/auth/me", h.currentUser)
	protected.PUT("/auth/profile", h.updateProfile)

	// Маршруты для работы с инцидентами
	incidents := protected.Group("/incidents")
	{
		incidents.POST("", h.reportIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.PATCH("/:id/status", h.updateIncidentStatus)
		incidents.PUT("/:id/assign", h.assignIncident)
		incidents.POST("/:id/photos", h.uploadIncidentPhoto)
		incidents.GET("/:id/photos/:seq", h.getIncidentPhoto)
	}

	// Административное управление пользователями
	users := protected.Group("/users")
	{
		users.GET("", h.listUsers)
		users.POST("", h.createUser)
		users.GET("/:id", h.getUser)
		users.PUT("/:id", h.updateUser)
		users.DELETE("/:id", h.deleteUser)
	}

	// Объекты
	projects := protected.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("", h.listProjects)
		projects.GET("/:id", h.getProject)
		projects.PUT("/:id", h.updateProject)
	}

	// Инструктажи и их результаты
	trainings := protected.Group("/trainings")
	{
		trainings.POST("", h.createTraining)
		trainings.GET("", h.listTrainings)
		trainings.GET("/:id", h.getTraining)
		trainings.PUT("/:id", h.updateTraining)
		trainings.DELETE("/:id", h.deleteTraining)
		trainings.POST("/:id/results", h.recordTrainingResult)
	}
	protected.GET("/training-results", h.listMyTrainingResults)

	// Оценки рисков
	risks := protected.Group("/risk-assessments")
	{
		risks.POST("", h.createRiskAssessment)
		risks.GET("", h.listRiskAssessments)
		risks.GET("/:id", h.getRiskAssessment)
	}

	// Посещаемость
	attendance := protected.Group("/attendance")
	{
		attendance.POST("/check-in", h.checkIn)
		attendance.POST("/check-out", h.checkOut)
		attendance.GET("", h.listMyAttendance)
	}

	// Уведомления
	notifications := protected.Group("/notifications")
	{
		notifications.GET("", h.listMyNotifications)
		notifications.PUT("/:id/read", h.markNotificationRead)
		notifications.PUT("/read-all", h.markAllNotificationsRead)
	}
}
