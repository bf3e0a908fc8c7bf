package v1

import (
	"net/http"

	"github.com/Tsilavina4274/odyssea/internal/domain/events"
	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// EventHandler defines the interface for handling events and registrations
type EventHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Register(ctx *gin.Context)
	SendReminders(ctx *gin.Context)
}

type eventHandler struct {
	eventService events.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService events.EventService) EventHandler {
	return &eventHandler{eventService: eventService}
}

// List returns events ordered by start date
// @Summary List events
// @Tags Event
// @Produce json
// @Param university_id query string false "University ID"
// @Param event_type query string false "Event type"
// @Param upcoming query bool false "Only events not started yet"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {array} EventResponse
// @Failure 400 {object} ErrorResponse
// @Router /events [get]
func (handler *eventHandler) List(ctx *gin.Context) {
	query := &events.Query{
		UniversityID: ctx.Query("university_id"),
		EventType:    events.Type(ctx.Query("event_type")),
		Limit:        utils.ConvertToInt(ctx.Query("limit")),
		Offset:       utils.ConvertToInt(ctx.Query("offset")),
	}
	if upcoming := utils.ParseOptionalBool(ctx.Query("upcoming")); upcoming != nil {
		query.UpcomingOnly = *upcoming
	}
	query.PublicOnly = currentIdentity(ctx) == nil
	if err := query.Validate(); err != nil {
		respondBadRequest(ctx, "validation failed", err)
		return
	}

	list, err := handler.eventService.List(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mapList(list, toEventResponse))
}

// GetByID fetches an event
// @Summary Get an event
// @Tags Event
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} EventResponse
// @Failure 404 {object} ErrorResponse
// @Router /events/{id} [get]
func (handler *eventHandler) GetByID(ctx *gin.Context) {
	event, err := handler.eventService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if !event.IsPublic && currentIdentity(ctx) == nil {
		respondError(ctx, shared.NotFound("event", event.ID))
		return
	}
	ctx.JSON(http.StatusOK, toEventResponse(event))
}

// Create schedules an event organized by the signed in user
// @Summary Create an event
// @Tags Event
// @Accept json
// @Produce json
// @Param requestBody body EventRequest true "Event"
// @Success 201 {object} EventResponse
// @Failure 400 {object} ErrorResponse
// @Router /events [post]
func (handler *eventHandler) Create(ctx *gin.Context) {
	var request EventRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid event data", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "validation failed", err)
		return
	}

	event, err := handler.eventService.Create(ctx.Request.Context(), request.ToDomain(currentIdentity(ctx).UserID))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toEventResponse(event))
}

// Register signs the signed in user up for an event
// @Summary Register to an event
// @Tags Event
// @Produce json
// @Param id path string true "Event ID"
// @Success 201 {object} RegistrationResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /events/{id}/register [post]
func (handler *eventHandler) Register(ctx *gin.Context) {
	registration, err := handler.eventService.Register(ctx.Request.Context(), ctx.Param("id"), currentIdentity(ctx).UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toRegistrationResponse(registration))
}

// SendReminders notifies the registered users of an event
// @Summary Send event reminders
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param requestBody body SendRemindersRequest false "Hours before the start, 24 by default"
// @Success 200 {object} CountResponse
// @Failure 404 {object} ErrorResponse
// @Router /events/{id}/reminders [post]
func (handler *eventHandler) SendReminders(ctx *gin.Context) {
	var request SendRemindersRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			respondBadRequest(ctx, "invalid reminder data", err)
			return
		}
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "validation failed", err)
		return
	}

	sent, err := handler.eventService.SendReminders(ctx.Request.Context(), ctx.Param("id"), request.HoursBefore)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, CountResponse{Count: int64(sent)})
}
