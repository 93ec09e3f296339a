package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Check in on a project
// @Description Register the start of a working day on a construction site. A second open check-in on the same day is rejected.
// @Tags Attendance
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param check_in body CheckInRequest true "Check-in request"
// @Success 201 {object} AttendanceResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Already checked in"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /attendance/check-in [post]
func (h *Handler) checkIn(c *gin.Context) {
	var input CheckInRequest
	log := h.logger.WithField("method", "checkIn")

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

	record, err := h.services.Attendance.CheckIn(c.Request.Context(), sessionFrom(c), input.ProjectID, input.Latitude, input.Longitude)
	if err != nil {
		log.WithError(err).Warn("Failed to check in")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAttendanceResponse(record))
}

// @Summary Check out
// @Description Register the end of the working day. Hours worked are computed from the open check-in.
// @Tags Attendance
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param check_out body CheckOutRequest true "Check-out request"
// @Success 200 {object} AttendanceResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "No open check-in"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /attendance/check-out [post]
func (h *Handler) checkOut(c *gin.Context) {
	var input CheckOutRequest
	log := h.logger.WithField("method", "checkOut")

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

	record, err := h.services.Attendance.CheckOut(c.Request.Context(), sessionFrom(c), input.Latitude, input.Longitude)
	if err != nil {
		log.WithError(err).Warn("Failed to check out")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAttendanceResponse(record))
}

// @Summary List own attendance
// @Description Get attendance records of the authenticated user, optionally bounded by date.
// @Tags Attendance
// @Produce json
// @Security SessionAuth
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} AttendanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /attendance [get]
func (h *Handler) listMyAttendance(c *gin.Context) {
	log := h.logger.WithField("method", "listMyAttendance")

	records, err := h.services.Attendance.ListMyAttendance(c.Request.Context(), sessionFrom(c), c.Query("from"), c.Query("to"))
	if err != nil {
		log.WithError(err).Error("Failed to list attendance from service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAttendanceResponses(records))
}
