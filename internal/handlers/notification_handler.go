package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetnatin/internal/pagination"
	"budgetnatin/internal/response"
	"budgetnatin/internal/services"
)

// NotificationHandler handles notification requests
type NotificationHandler struct {
	notificationService services.NotificationServicer
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService services.NotificationServicer) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// NotificationListQuery holds the notification list filters
type NotificationListQuery struct {
	Unread bool `form:"unread"`
	pagination.PageRequest
}

// MarkAllResponse reports how many notifications changed
type MarkAllResponse struct {
	Updated int64 `json:"updated"`
}

// CheckResponse reports how many notifications a scan created
type CheckResponse struct {
	Created int `json:"created"`
}

// ListNotifications handles listing notifications
// @Summary     List notifications
// @Description Get the user's notifications, newest first
// @Tags        notifications
// @Produce     json
// @Security    BearerAuth
// @Param       unread    query bool false "Only unread notifications"
// @Param       page      query int  false "Page number"
// @Param       page_size query int  false "Items per page (max 100)"
// @Success     200 {object} EnvelopeResponse{data=[]models.Notification} "Notifications retrieved"
// @Failure     500 {object} ErrorResponse "Error fetching notifications"
// @Router      /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Error fetching notifications")
		return
	}

	var query NotificationListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, bindingError(err), "Error fetching notifications")
		return
	}

	result, err := h.notificationService.ListNotifications(userID, query.Unread, query.PageRequest)
	if err != nil {
		respondWithError(c, err, "Error fetching notifications")
		return
	}

	if query.Enabled() {
		response.OK(c, http.StatusOK, "Notifications retrieved", result)
		return
	}
	response.OK(c, http.StatusOK, "Notifications retrieved", result.Items)
}

// MarkAsRead handles flagging one notification as read
// @Summary     Mark notification as read
// @Tags        notifications
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Notification ID"
// @Success     200 {object} EnvelopeResponse "Notification marked as read"
// @Failure     404 {object} ErrorResponse "Notification not found"
// @Failure     500 {object} ErrorResponse "Error updating notification"
// @Router      /notifications/{id}/read [put]
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Error updating notification")
		return
	}

	notificationID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err, "Error updating notification")
		return
	}

	if err := h.notificationService.MarkAsRead(userID, notificationID); err != nil {
		respondWithError(c, err, "Error updating notification")
		return
	}

	response.OK(c, http.StatusOK, "Notification marked as read", nil)
}

// MarkAllAsRead handles flagging every notification as read
// @Summary     Mark all notifications as read
// @Tags        notifications
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} EnvelopeResponse{data=MarkAllResponse} "All notifications marked as read"
// @Failure     500 {object} ErrorResponse "Error updating notifications"
// @Router      /notifications/read-all [put]
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Error updating notifications")
		return
	}

	updated, err := h.notificationService.MarkAllAsRead(userID)
	if err != nil {
		respondWithError(c, err, "Error updating notifications")
		return
	}

	response.OK(c, http.StatusOK, "All notifications marked as read", MarkAllResponse{Updated: updated})
}

// DeleteNotification handles deleting a notification
// @Summary     Delete notification
// @Tags        notifications
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Notification ID"
// @Success     200 {object} EnvelopeResponse "Notification deleted"
// @Failure     404 {object} ErrorResponse "Notification not found"
// @Failure     500 {object} ErrorResponse "Error deleting notification"
// @Router      /notifications/{id} [delete]
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Error deleting notification")
		return
	}

	notificationID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err, "Error deleting notification")
		return
	}

	if err := h.notificationService.DeleteNotification(userID, notificationID); err != nil {
		respondWithError(c, err, "Error deleting notification")
		return
	}

	response.OK(c, http.StatusOK, "Notification deleted", nil)
}

// CheckOverdue handles scanning the user's bills for due dates
// @Summary     Check due expenses
// @Description Create overdue and due-soon notifications for unpaid expenses. Repeated calls create nothing new.
// @Tags        notifications
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} EnvelopeResponse{data=CheckResponse} "Notifications checked"
// @Failure     500 {object} ErrorResponse "Error checking notifications"
// @Router      /notifications/check-overdue [post]
func (h *NotificationHandler) CheckOverdue(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Error checking notifications")
		return
	}

	created, err := h.notificationService.CheckDueExpenses(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Error checking notifications")
		return
	}

	response.OK(c, http.StatusOK, "Notifications checked", CheckResponse{Created: created})
}
