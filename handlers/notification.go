package handlers

import (
	"net/http"
	"strconv"

	"travelhub/models"
	"travelhub/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler serves the caller's notification inbox.
type NotificationHandler struct {
	svc notification.NotificationService
}

func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List pages through the caller's notifications, newest first.
func (h *NotificationHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	unreadOnly, _ := strconv.ParseBool(c.Query("unreadOnly"))

	page, err := h.svc.List(c.Request.Context(), actor, queryInt(c, "page"), queryInt(c, "limit"), unreadOnly)
	if err != nil {
		writeError(c, err, "Failed to list notifications", zap.String("userId", actor.ID))
		return
	}

	count := len(page.Items)
	totalPages := 0
	if page.Limit > 0 {
		limit := int64(page.Limit)
		totalPages = int(page.Total / limit)
		if page.Total%limit != 0 {
			totalPages++
		}
	}
	c.JSON(http.StatusOK, models.APIResponse{
		Success:     true,
		Data:        page.Items,
		Count:       &count,
		Total:       &page.Total,
		UnreadCount: &page.UnreadCount,
		Page:        &page.Page,
		TotalPages:  &totalPages,
	})
}

// Create sends a notification to any user. Admin only.
func (h *NotificationHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req notification.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	n, err := h.svc.Create(c.Request.Context(), actor, req)
	if err != nil {
		writeError(c, err, "Failed to create notification", zap.String("recipientId", req.UserID))
		return
	}
	respond(c, http.StatusCreated, "Notification created", n)
}

// MarkRead flags one of the caller's notifications as read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id := c.Param("id")
	n, err := h.svc.MarkRead(c.Request.Context(), actor, id)
	if err != nil {
		writeError(c, err, "Failed to mark notification read", zap.String("notificationId", id))
		return
	}
	respond(c, http.StatusOK, "Notification marked as read", n)
}

// MarkAllRead flags every unread notification of the caller.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	updated, err := h.svc.MarkAllRead(c.Request.Context(), actor)
	if err != nil {
		writeError(c, err, "Failed to mark notifications read", zap.String("userId", actor.ID))
		return
	}
	respond(c, http.StatusOK, "All notifications marked as read", gin.H{"updated": updated})
}

// Delete removes one of the caller's notifications.
func (h *NotificationHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if err := h.svc.Delete(c.Request.Context(), actor, id); err != nil {
		writeError(c, err, "Failed to delete notification", zap.String("notificationId", id))
		return
	}
	respond(c, http.StatusOK, "Notification deleted", nil)
}
