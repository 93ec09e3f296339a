package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Create a training
// @Description Create a safety training material. Requires the training management permission.
// @Tags Trainings
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param training body TrainingRequest true "Training creation request"
// @Success 201 {object} TrainingResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Operation not permitted"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /trainings [post]
func (h *Handler) createTraining(c *gin.Context) {
	var input TrainingRequest
	log := h.logger.WithField("method", "createTraining")

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

	training := DTOToTrainingModel(input)
	if err := h.services.Trainings.CreateTraining(c.Request.Context(), sessionFrom(c), training); err != nil {
		log.WithError(err).Error("Failed to create training in service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToTrainingResponse(training))
}

// @Summary List trainings
// @Description Get all safety training materials.
// @Tags Trainings
// @Produce json
// @Security SessionAuth
// @Success 200 {array} TrainingResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /trainings [get]
func (h *Handler) listTrainings(c *gin.Context) {
	log := h.logger.WithField("method", "listTrainings")

	trainings, err := h.services.Trainings.ListTrainings(c.Request.Context(), sessionFrom(c))
	if err != nil {
		log.WithError(err).Error("Failed to list trainings from service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToTrainingResponses(trainings))
}

// @Summary Get training by ID
// @Description Get a single safety training material.
// @Tags Trainings
// @Produce json
// @Security SessionAuth
// @Param id path string true "Training ID"
// @Success 200 {object} TrainingResponse
// @Failure 400 {object} map[string]string "Invalid training ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Training not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /trainings/{id} [get]
func (h *Handler) getTraining(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid training ID"})
		return
	}
	log := h.logger.WithField("method", "getTraining").WithField("id", id)

	training, err := h.services.Trainings.GetTraining(c.Request.Context(), sessionFrom(c), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get training from service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToTrainingResponse(training))
}

// @Summary Update a training
// @Description Update a safety training material. Requires the training management permission.
// @Tags Trainings
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "Training ID"
// @Param training body TrainingRequest true "Training update request"
// @Success 200 {object} TrainingResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Operation not permitted"
// @Failure 404 {object} map[string]string "Training not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /trainings/{id} [put]
func (h *Handler) updateTraining(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid training ID"})
		return
	}
	log := h.logger.WithField("method", "updateTraining").WithField("id", id)

	var input TrainingRequest
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

	training := DTOToTrainingModel(input)
	training.ID = id
	if err := h.services.Trainings.UpdateTraining(c.Request.Context(), sessionFrom(c), training); err != nil {
		log.WithError(err).Warn("Failed to update training in service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToTrainingResponse(training))
}

// @Summary Delete a training
// @Description Delete a safety training material. Requires the training management permission.
// @Tags Trainings
// @Produce json
// @Security SessionAuth
// @Param id path string true "Training ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid training ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Operation not permitted"
// @Failure 404 {object} map[string]string "Training not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /trainings/{id} [delete]
func (h *Handler) deleteTraining(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid training ID"})
		return
	}
	log := h.logger.WithField("method", "deleteTraining").WithField("id", id)

	if err := h.services.Trainings.DeleteTraining(c.Request.Context(), sessionFrom(c), id); err != nil {
		log.WithError(err).Warn("Failed to delete training in service")
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Record a training result
// @Description Record the authenticated user's test score for a training. The pass mark comes from service configuration.
// @Tags Trainings
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "Training ID"
// @Param result body RecordTrainingResultRequest true "Training result request"
// @Success 201 {object} TrainingResultResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Training not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /trainings/{id}/results [post]
func (h *Handler) recordTrainingResult(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid training ID"})
		return
	}
	log := h.logger.WithField("method", "recordTrainingResult").WithField("id", id)

	var input RecordTrainingResultRequest
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

	result, err := h.services.Trainings.RecordResult(c.Request.Context(), sessionFrom(c), id, input.Score)
	if err != nil {
		log.WithError(err).Warn("Failed to record training result in service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToTrainingResultResponse(result))
}

// @Summary List own training results
// @Description Get all training results of the authenticated user.
// @Tags Trainings
// @Produce json
// @Security SessionAuth
// @Success 200 {array} TrainingResultResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /training-results [get]
func (h *Handler) listMyTrainingResults(c *gin.Context) {
	log := h.logger.WithField("method", "listMyTrainingResults")

	results, err := h.services.Trainings.ListMyResults(c.Request.Context(), sessionFrom(c))
	if err != nil {
		log.WithError(err).Error("Failed to list training results from service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToTrainingResultResponses(results))
}
