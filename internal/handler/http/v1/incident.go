package v1

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ssmapp/safety_management_system/internal/models"
)

// @Summary Report a new incident
// @Description Report a new safety incident. Status is always set to "reported".
// @Tags Incidents
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param incident body ReportIncidentRequest true "Incident report request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) reportIncident(c *gin.Context) {
	var input ReportIncidentRequest
	log := h.logger.WithField("method", "reportIncident")

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

	incident := &models.Incident{
		ProjectID:   input.ProjectID,
		Type:        models.IncidentType(input.Type),
		Description: input.Description,
		Location: models.Location{
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
			Address:   input.Address,
		},
	}

	if err := h.services.Incidents.ReportIncident(c.Request.Context(), sessionFrom(c), incident); err != nil {
		log.WithError(err).Error("Failed to report incident in service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(incident))
}

// @Summary Get a list of incidents
// @Description Get incidents ordered by report date descending. Supports free-text search and type filter.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param q query string false "Free-text search over description and type label"
// @Param type query string false "Incident type filter"
// @Param reporter_id query string false "Filter by reporting user"
// @Param project_id query string false "Filter by project"
// @Param limit query int false "Maximum number of incidents" default(100)
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	filter := models.IncidentListFilter{}
	if raw := c.Query("reporter_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reporter_id"})
			return
		}
		filter.ReporterID = &id
	}
	if raw := c.Query("project_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project_id"})
			return
		}
		filter.ProjectID = &id
	}
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))

	incidents, err := h.services.Incidents.ListIncidents(
		c.Request.Context(),
		sessionFrom(c),
		filter,
		c.Query("q"),
		models.IncidentType(c.Query("type")),
	)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.services.Incidents.GetIncident(c.Request.Context(), sessionFrom(c), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Update incident status
// @Description Move an incident to the next lifecycle status. Only the single next step (or re-applying the current status) is accepted.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "Incident ID"
// @Param status body UpdateIncidentStatusRequest true "Status update request"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or status transition"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Operation not permitted"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/status [patch]
func (h *Handler) updateIncidentStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "updateIncidentStatus").WithField("id", id)

	var input UpdateIncidentStatusRequest
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

	incident, err := h.services.Incidents.UpdateIncidentStatus(
		c.Request.Context(),
		sessionFrom(c),
		id,
		models.IncidentStatus(input.Status),
		input.ActionsTaken,
		input.PreventiveMeasures,
	)
	if err != nil {
		log.WithError(err).Warn("Failed to update incident status in service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Assign incident to a user
// @Description Make a user responsible for incident follow-up.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "Incident ID"
// @Param assignment body AssignIncidentRequest true "Assignment request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Operation not permitted"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/assign [put]
func (h *Handler) assignIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "assignIncident").WithField("id", id)

	var input AssignIncidentRequest
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

	if err := h.services.Incidents.AssignIncident(c.Request.Context(), sessionFrom(c), id, input.UserID); err != nil {
		log.WithError(err).Warn("Failed to assign incident in service")
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Upload incident photo
// @Description Attach a photo to an incident. Returns a durable locator for later retrieval.
// @Tags Incidents
// @Accept mpfd
// @Produce json
// @Security SessionAuth
// @Param id path string true "Incident ID"
// @Param photo formData file true "Photo file"
// @Success 201 {object} PhotoUploadResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or photo"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/photos [post]
func (h *Handler) uploadIncidentPhoto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "uploadIncidentPhoto").WithField("id", id)

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		log.WithError(err).Warn("Photo file missing from request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file required"})
		return
	}
	if fileHeader.Size > h.cfg.PhotoMaxBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.WithError(err).Error("Failed to open uploaded photo")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.WithError(err).Error("Failed to read uploaded photo")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	locator, err := h.services.Incidents.UploadIncidentPhoto(c.Request.Context(), sessionFrom(c), id, contentType, data)
	if err != nil {
		log.WithError(err).Error("Failed to store incident photo in service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, PhotoUploadResponse{Locator: locator})
}

// @Summary Download incident photo
// @Description Download an incident photo by its sequence index.
// @Tags Incidents
// @Produce octet-stream
// @Security SessionAuth
// @Param id path string true "Incident ID"
// @Param seq path int true "Photo sequence index"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string "Invalid incident ID or index"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Photo not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/photos/{seq} [get]
func (h *Handler) getIncidentPhoto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	seq, err := strconv.Atoi(c.Param("seq"))
	if err != nil || seq < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo index"})
		return
	}
	log := h.logger.WithField("method", "getIncidentPhoto").WithField("id", id)

	contentType, data, err := h.services.Incidents.GetIncidentPhoto(c.Request.Context(), sessionFrom(c), id, seq)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident photo from service")
		h.respondError(c, err)
		return
	}
	c.Data(http.StatusOK, contentType, data)
}
