package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary List own notifications
// @Description Get notifications of the authenticated user, newest first.
// @Tags Notifications
// @Produce json
// @Security SessionAuth
// @Param limit query int false "Maximum number of notifications" default(50)
// @Success 200 {array} NotificationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notifications [get]
func (h *Handler) listMyNotifications(c *gin.Context) {
	log := h.logger.WithField("method", "listMyNotifications")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	notifications, err := h.services.Notifications.ListMyNotifications(c.Request.Context(), sessionFrom(c), limit)
	if err != nil {
		log.WithError(err).Error("Failed to list notifications from service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToNotificationResponses(notifications))
}

// @Summary Mark notification as read
// @Description Mark a single notification of the authenticated user as read.
// @Tags Notifications
// @Produce json
// @Security SessionAuth
// @Param id path string true "Notification ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid notification ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Notification not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notifications/{id}/read [put]
func (h *Handler) markNotificationRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification ID"})
		return
	}
	log := h.logger.WithField("method", "markNotificationRead").WithField("id", id)

	if err := h.services.Notifications.MarkRead(c.Request.Context(), sessionFrom(c), id); err != nil {
		log.WithError(err).Warn("Failed to mark notification read in service")
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Mark all notifications as read
// @Description Mark every notification of the authenticated user as read.
// @Tags Notifications
// @Produce json
// @Security SessionAuth
// @Success 200 "OK"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notifications/read-all [put]
func (h *Handler) markAllNotificationsRead(c *gin.Context) {
	log := h.logger.WithField("method", "markAllNotificationsRead")

	if err := h.services.Notifications.MarkAllRead(c.Request.Context(), sessionFrom(c)); err != nil {
		log.WithError(err).Error("Failed to mark all notifications read in service")
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
