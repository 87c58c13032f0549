package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"eventsapi/internal/delivery/http/helpers"
	"eventsapi/internal/delivery/http/resources"
	"eventsapi/internal/domain"
)

// EventRequest is the request body for POST /api/events and PUT /api/events/{id}.
// id, offline, free and eventStatus are server-controlled and rejected if sent.
type EventRequest struct {
	Name                    string    `json:"name" example:"Spring REST API"`
	Description             string    `json:"description" example:"REST API development with Spring"`
	BeginEnrollmentDateTime time.Time `json:"beginEnrollmentDateTime" example:"2025-11-01T09:00:00Z"`
	CloseEnrollmentDateTime time.Time `json:"closeEnrollmentDateTime" example:"2025-11-02T09:00:00Z"`
	BeginEventDateTime      time.Time `json:"beginEventDateTime" example:"2025-11-03T09:00:00Z"`
	EndEventDateTime        time.Time `json:"endEventDateTime" example:"2025-11-04T09:00:00Z"`
	Location                string    `json:"location" example:"Seoul"`
	BasePrice               int       `json:"basePrice" example:"100"`
	MaxPrice                int       `json:"maxPrice" example:"200"`
	LimitOfEnrollment       int       `json:"limitOfEnrollment" example:"100"`
}

// ToInput maps the request field by field onto the domain payload.
func (req EventRequest) ToInput() domain.EventInput {
	return domain.EventInput{
		Name:                    req.Name,
		Description:             req.Description,
		BeginEnrollmentDateTime: req.BeginEnrollmentDateTime,
		CloseEnrollmentDateTime: req.CloseEnrollmentDateTime,
		BeginEventDateTime:      req.BeginEventDateTime,
		EndEventDateTime:        req.EndEventDateTime,
		Location:                req.Location,
		BasePrice:               req.BasePrice,
		MaxPrice:                req.MaxPrice,
		LimitOfEnrollment:       req.LimitOfEnrollment,
	}
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService

	// TrustProxyHeaders makes links follow X-Forwarded-Proto/Host.
	TrustProxyHeaders bool
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List events
// @Description Returns a page of events with first/prev/self/next/last navigation links.
// @Tags events
// @Produce json
// @Param page query int false "0-based page number" default(0)
// @Param size query int false "Page size (max 100)" default(20)
// @Param sort query string false "Ordering, e.g. 'name desc,id' or 'name,desc'"
// @Success 200 {object} resources.PagedResource
// @Failure 400 {object} helpers.ErrorsResponse "errors[0].code: invalidSort"
// @Failure 500 {object} helpers.ErrorsResponse "errors[0].code: internalError"
// @Router /api/events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	req, sort, err := helpers.ParsePageRequest(r)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, helpers.ErrCodeInvalidSort, err.Error())
		return
	}
	page, err := c.Service.ListEvents(r.Context(), req)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	b := resources.NewBuilder(c.baseURL(r))
	helpers.WriteHAL(w, http.StatusOK, b.AssemblePage(page, sort, b.Represent))
}

// GetEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} resources.EventResource
// @Failure 404 "event not found (empty body)"
// @Failure 500 {object} helpers.ErrorsResponse "errors[0].code: internalError"
// @Router /api/events/{id} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(r)
	if !ok {
		helpers.WriteEmpty(w, http.StatusNotFound)
		return
	}
	event, err := c.Service.GetEvent(r.Context(), id)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteHAL(w, http.StatusOK, resources.NewBuilder(c.baseURL(r)).ForGet(event))
}

// CreateEvent godoc
// @Summary Create an event
// @Description Validates the payload, stores a new draft event and returns it with links to the collection and to its update route. The Location header holds the self URI.
// @Tags events
// @Accept json
// @Produce json
// @Param event body EventRequest true "Event data"
// @Success 201 {object} resources.EventResource
// @Header 201 {string} Location "URI of the created event"
// @Failure 400 {object} helpers.ErrorsResponse "validation errors"
// @Failure 500 {object} helpers.ErrorsResponse "errors[0].code: internalError"
// @Router /api/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.Decode(w, r, &req) {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), req.ToInput())
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	b := resources.NewBuilder(c.baseURL(r))
	w.Header().Set("Location", b.SelfURI(event))
	helpers.WriteHAL(w, http.StatusCreated, b.ForCreate(event))
}

// UpdateEvent godoc
// @Summary Replace an event
// @Description Replaces every mutable field of an existing event. Derived flags are recomputed; the ID is preserved.
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param event body EventRequest true "Event data"
// @Success 200 {object} resources.EventResource
// @Failure 400 {object} helpers.ErrorsResponse "validation errors"
// @Failure 404 "event not found (empty body)"
// @Failure 500 {object} helpers.ErrorsResponse "errors[0].code: internalError"
// @Router /api/events/{id} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(r)
	if !ok {
		helpers.WriteEmpty(w, http.StatusNotFound)
		return
	}
	var req EventRequest
	if !helpers.Decode(w, r, &req) {
		return
	}
	event, err := c.Service.UpdateEvent(r.Context(), id, req.ToInput())
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteHAL(w, http.StatusOK, resources.NewBuilder(c.baseURL(r)).ForUpdate(event))
}

func (c *EventController) baseURL(r *http.Request) string {
	return helpers.BaseURL(r, c.TrustProxyHeaders)
}

// eventID parses the {id} path value. Non-numeric identifiers cannot exist.
func eventID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func (c *EventController) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		helpers.WriteErrors(w, http.StatusBadRequest, verr.Errors)
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteEmpty(w, http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteError(w, http.StatusBadRequest, helpers.ErrCodeInvalidSort, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
	}
}
