package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ssmapp/safety_management_system/internal/models"
)

// @Summary Create a risk assessment
// @Description Submit a filled risk checklist for a project. The risk score is computed server-side.
// @Tags RiskAssessments
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param assessment body CreateRiskAssessmentRequest true "Risk assessment request"
// @Success 201 {object} RiskAssessmentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /risk-assessments [post]
func (h *Handler) createRiskAssessment(c *gin.Context) {
	var input CreateRiskAssessmentRequest
	log := h.logger.WithField("method", "createRiskAssessment")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assessment := DTOToRiskAssessmentModel(input)
	if err := h.services.Risks.CreateAssessment(c.Request.Context(), sessionFrom(c), assessment); err != nil {
		log.WithError(err).Error("Failed to create risk assessment in service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToRiskAssessmentResponse(assessment))
}

// @Summary List risk assessments
// @Description Get risk assessments, optionally filtered by user or project.
// @Tags RiskAssessments
// @Produce json
// @Security SessionAuth
// @Param user_id query string false "Filter by author"
// @Param project_id query string false "Filter by project"
// @Success 200 {array} RiskAssessmentResponse
// @Failure 400 {object} map[string]string "Invalid filter parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /risk-assessments [get]
func (h *Handler) listRiskAssessments(c *gin.Context) {
	log := h.logger.WithField("method", "listRiskAssessments")

	filter := models.RiskAssessmentFilter{}
	if raw := c.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
			return
		}
		filter.UserID = &id
	}
	if raw := c.Query("project_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project_id"})
			return
		}
		filter.ProjectID = &id
	}

	assessments, err := h.services.Risks.ListAssessments(c.Request.Context(), sessionFrom(c), filter)
	if err != nil {
		log.WithError(err).Error("Failed to list risk assessments from service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToRiskAssessmentResponses(assessments))
}

// @Summary Get risk assessment by ID
// @Description Get a single risk assessment.
// @Tags RiskAssessments
// @Produce json
// @Security SessionAuth
// @Param id path string true "Risk assessment ID"
// @Success 200 {object} RiskAssessmentResponse
// @Failure 400 {object} map[string]string "Invalid risk assessment ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Risk assessment not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /risk-assessments/{id} [get]
func (h *Handler) getRiskAssessment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid risk assessment ID"})
		return
	}
	log := h.logger.WithField("method", "getRiskAssessment").WithField("id", id)

	assessment, err := h.services.Risks.GetAssessment(c.Request.Context(), sessionFrom(c), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get risk assessment from service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToRiskAssessmentResponse(assessment))
}
