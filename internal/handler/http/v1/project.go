package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Create a project
// @Description Create a construction site. Requires the project management permission.
// @Tags Projects
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param project body ProjectRequest true "Project creation request"
// @Success 201 {object} ProjectResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Operation not permitted"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /projects [post]
func (h *Handler) createProject(c *gin.Context) {
	var input ProjectRequest
	log := h.logger.WithField("method", "createProject")

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

	project := DTOToProjectModel(input)
	if err := h.services.Projects.CreateProject(c.Request.Context(), sessionFrom(c), project); err != nil {
		log.WithError(err).Error("Failed to create project in service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToProjectResponse(project))
}

// @Summary List projects
// @Description Get all construction sites.
// @Tags Projects
// @Produce json
// @Security SessionAuth
// @Success 200 {array} ProjectResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /projects [get]
func (h *Handler) listProjects(c *gin.Context) {
	log := h.logger.WithField("method", "listProjects")

	projects, err := h.services.Projects.ListProjects(c.Request.Context(), sessionFrom(c))
	if err != nil {
		log.WithError(err).Error("Failed to list projects from service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToProjectResponses(projects))
}

// @Summary Get project by ID
// @Description Get a single construction site.
// @Tags Projects
// @Produce json
// @Security SessionAuth
// @Param id path string true "Project ID"
// @Success 200 {object} ProjectResponse
// @Failure 400 {object} map[string]string "Invalid project ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /projects/{id} [get]
func (h *Handler) getProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}
	log := h.logger.WithField("method", "getProject").WithField("id", id)

	project, err := h.services.Projects.GetProject(c.Request.Context(), sessionFrom(c), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get project from service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToProjectResponse(project))
}

// @Summary Update a project
// @Description Update a construction site. Requires the project management permission.
// @Tags Projects
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "Project ID"
// @Param project body ProjectRequest true "Project update request"
// @Success 200 {object} ProjectResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Operation not permitted"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /projects/{id} [put]
func (h *Handler) updateProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}
	log := h.logger.WithField("method", "updateProject").WithField("id", id)

	var input ProjectRequest
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

	project := DTOToProjectModel(input)
	project.ID = id
	if err := h.services.Projects.UpdateProject(c.Request.Context(), sessionFrom(c), project); err != nil {
		log.WithError(err).Warn("Failed to update project in service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToProjectResponse(project))
}
