package v1

import (
	"net/http"

	"github.com/Tsilavina4274/odyssea/internal/domain/notifications"
	"github.com/Tsilavina4274/odyssea/internal/domain/users"
	"github.com/Tsilavina4274/odyssea/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler defines the interface for handling notifications
type NotificationHandler interface {
	List(ctx *gin.Context)
	ListRecent(ctx *gin.Context)
	UnreadCount(ctx *gin.Context)
	MarkAsRead(ctx *gin.Context)
	MarkAllAsRead(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	DeleteRead(ctx *gin.Context)
	Broadcast(ctx *gin.Context)
}

type notificationHandler struct {
	notificationService notifications.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService notifications.NotificationService) NotificationHandler {
	return &notificationHandler{notificationService: notificationService}
}

// List returns the notifications of the signed in user, newest first
// @Summary Own notifications
// @Tags Notification
// @Produce json
// @Param is_read query bool false "Read state"
// @Param type query string false "Notification type"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {array} NotificationResponse
// @Failure 400 {object} ErrorResponse
// @Router /notifications [get]
func (handler *notificationHandler) List(ctx *gin.Context) {
	query := &notifications.Query{
		IsRead: utils.ParseOptionalBool(ctx.Query("is_read")),
		Type:   notifications.Type(ctx.Query("type")),
		Limit:  utils.ConvertToInt(ctx.Query("limit")),
		Offset: utils.ConvertToInt(ctx.Query("offset")),
	}
	if err := query.Validate(); err != nil {
		respondBadRequest(ctx, "validation failed", err)
		return
	}

	list, err := handler.notificationService.List(ctx.Request.Context(), currentIdentity(ctx).UserID, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mapList(list, toNotificationResponse))
}

// ListRecent returns the notifications of the last 24 hours
// @Summary Recent notifications
// @Tags Notification
// @Produce json
// @Success 200 {array} NotificationResponse
// @Router /notifications/recent [get]
func (handler *notificationHandler) ListRecent(ctx *gin.Context) {
	list, err := handler.notificationService.ListRecent(ctx.Request.Context(), currentIdentity(ctx).UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mapList(list, toNotificationResponse))
}

// UnreadCount counts the unread notifications
// @Summary Unread notification count
// @Tags Notification
// @Produce json
// @Success 200 {object} CountResponse
// @Router /notifications/unread-count [get]
func (handler *notificationHandler) UnreadCount(ctx *gin.Context) {
	count, err := handler.notificationService.UnreadCount(ctx.Request.Context(), currentIdentity(ctx).UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, CountResponse{Count: count})
}

// MarkAsRead marks one notification as read
// @Summary Mark a notification as read
// @Tags Notification
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} MarkReadResponse
// @Failure 404 {object} ErrorResponse
// @Router /notifications/{id}/read [post]
func (handler *notificationHandler) MarkAsRead(ctx *gin.Context) {
	updated, err := handler.notificationService.MarkAsRead(ctx.Request.Context(), ctx.Param("id"), currentIdentity(ctx).UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, MarkReadResponse{Updated: updated})
}

// MarkAllAsRead marks every notification as read
// @Summary Mark all notifications as read
// @Tags Notification
// @Produce json
// @Success 200 {object} CountResponse
// @Router /notifications/read-all [post]
func (handler *notificationHandler) MarkAllAsRead(ctx *gin.Context) {
	count, err := handler.notificationService.MarkAllAsRead(ctx.Request.Context(), currentIdentity(ctx).UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, CountResponse{Count: count})
}

// DeleteByID removes a notification
// @Summary Delete a notification
// @Tags Notification
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /notifications/{id} [delete]
func (handler *notificationHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.notificationService.DeleteByID(ctx.Request.Context(), ctx.Param("id"), currentIdentity(ctx).UserID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DeleteRead removes every read notification
// @Summary Delete read notifications
// @Tags Notification
// @Produce json
// @Success 200 {object} CountResponse
// @Router /notifications/read [delete]
func (handler *notificationHandler) DeleteRead(ctx *gin.Context) {
	count, err := handler.notificationService.DeleteRead(ctx.Request.Context(), currentIdentity(ctx).UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, CountResponse{Count: count})
}

// Broadcast sends a notification to every user of a type
// @Summary Broadcast a notification
// @Tags Notification
// @Accept json
// @Produce json
// @Param requestBody body BroadcastRequest true "Notification"
// @Success 201 {object} CountResponse
// @Failure 400 {object} ErrorResponse
// @Router /notifications/broadcast [post]
func (handler *notificationHandler) Broadcast(ctx *gin.Context) {
	var request BroadcastRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid notification data", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "validation failed", err)
		return
	}

	sent, err := handler.notificationService.BroadcastToUserType(ctx.Request.Context(), users.UserType(request.UserType), request.ToInput())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, CountResponse{Count: int64(sent)})
}
