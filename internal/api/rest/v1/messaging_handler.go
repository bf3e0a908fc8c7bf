package v1

import (
	"net/http"

	"github.com/Tsilavina4274/odyssea/internal/domain/messaging"
	"github.com/Tsilavina4274/odyssea/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MessagingHandler defines the interface for handling conversations and messages
type MessagingHandler interface {
	ListConversations(ctx *gin.Context)
	GetConversation(ctx *gin.Context)
	CreateConversation(ctx *gin.Context)
	GetDirectConversation(ctx *gin.Context)
	ListMessages(ctx *gin.Context)
	SendMessage(ctx *gin.Context)
	MarkAsRead(ctx *gin.Context)
}

type messagingHandler struct {
	messagingService messaging.MessagingService
}

// NewMessagingHandler creates a new MessagingHandler
func NewMessagingHandler(messagingService messaging.MessagingService) MessagingHandler {
	return &messagingHandler{messagingService: messagingService}
}

// ListConversations returns the conversations of the signed in user, most recent first
// @Summary Own conversations
// @Tags Messaging
// @Produce json
// @Success 200 {array} ConversationResponse
// @Router /conversations [get]
func (handler *messagingHandler) ListConversations(ctx *gin.Context) {
	list, err := handler.messagingService.ListConversations(ctx.Request.Context(), currentIdentity(ctx).UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mapList(list, toConversationResponse))
}

// GetConversation fetches a conversation of the signed in user
// @Summary Get a conversation
// @Tags Messaging
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} ConversationResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /conversations/{id} [get]
func (handler *messagingHandler) GetConversation(ctx *gin.Context) {
	conversation, err := handler.messagingService.GetConversation(ctx.Request.Context(), ctx.Param("id"), currentIdentity(ctx).UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toConversationResponse(conversation))
}

// CreateConversation opens a conversation, reusing the direct one between two users
// @Summary Create a conversation
// @Tags Messaging
// @Accept json
// @Produce json
// @Param requestBody body CreateConversationRequest true "Participants"
// @Success 201 {object} ConversationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /conversations [post]
func (handler *messagingHandler) CreateConversation(ctx *gin.Context) {
	var request CreateConversationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid conversation data", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "validation failed", err)
		return
	}

	conversation, err := handler.messagingService.CreateConversation(ctx.Request.Context(), currentIdentity(ctx).UserID, request.ToInput())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toConversationResponse(conversation))
}

// GetDirectConversation returns the direct conversation with another user
// @Summary Direct conversation with a user
// @Tags Messaging
// @Produce json
// @Param user_id query string true "Other user ID"
// @Success 200 {object} ConversationResponse
// @Failure 404 {object} ErrorResponse
// @Router /conversations/direct [get]
func (handler *messagingHandler) GetDirectConversation(ctx *gin.Context) {
	otherUserID := ctx.Query("user_id")
	if otherUserID == "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Message: "user_id is required"})
		return
	}

	conversation, err := handler.messagingService.GetDirectConversation(ctx.Request.Context(), currentIdentity(ctx).UserID, otherUserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if conversation == nil {
		ctx.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Message: "no direct conversation with user " + otherUserID})
		return
	}
	ctx.JSON(http.StatusOK, toConversationResponse(conversation))
}

// ListMessages returns the messages of a conversation, oldest first
// @Summary Messages of a conversation
// @Tags Messaging
// @Produce json
// @Param id path string true "Conversation ID"
// @Param limit query int false "Limit, 50 by default"
// @Param offset query int false "Offset"
// @Success 200 {array} MessageResponse
// @Failure 403 {object} ErrorResponse
// @Router /conversations/{id}/messages [get]
func (handler *messagingHandler) ListMessages(ctx *gin.Context) {
	limit := utils.ConvertToInt(ctx.Query("limit"))
	offset := utils.ConvertToInt(ctx.Query("offset"))

	list, err := handler.messagingService.ListMessages(ctx.Request.Context(), ctx.Param("id"), currentIdentity(ctx).UserID, limit, offset)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mapList(list, toMessageResponse))
}

// SendMessage posts a message to a conversation
// @Summary Send a message
// @Tags Messaging
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Param requestBody body SendMessageRequest true "Message"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /conversations/{id}/messages [post]
func (handler *messagingHandler) SendMessage(ctx *gin.Context) {
	var request SendMessageRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid message data", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "validation failed", err)
		return
	}

	message, err := handler.messagingService.SendMessage(ctx.Request.Context(), ctx.Param("id"), currentIdentity(ctx).UserID, request.ToInput())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toMessageResponse(message))
}

// MarkAsRead records that the signed in user read the conversation
// @Summary Mark a conversation as read
// @Tags Messaging
// @Param id path string true "Conversation ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Router /conversations/{id}/read [post]
func (handler *messagingHandler) MarkAsRead(ctx *gin.Context) {
	if err := handler.messagingService.MarkAsRead(ctx.Request.Context(), ctx.Param("id"), currentIdentity(ctx).UserID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
