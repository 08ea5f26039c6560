package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventra/event-console/internal/api/metrics"
	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
)

// EventWizardHandler drives the multi-step event creation form.
type EventWizardHandler struct {
	wizard ports.EventWizardService
}

func NewEventWizardHandler(wizard ports.EventWizardService) *EventWizardHandler {
	return &EventWizardHandler{wizard: wizard}
}

// Start handles POST /v1/wizard/events. It opens a fresh draft pre-seeded
// from the operator's session.
//
// @Summary      Start an event draft
// @Tags         wizard
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  domain.EventDraft
// @Failure      401  {object}  map[string]string
// @Router       /v1/wizard/events [post]
func (h *EventWizardHandler) Start(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	draft, err := h.wizard.Start(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, draft)
}

// Get handles GET /v1/wizard/events/:id.
//
// @Summary      Fetch an event draft
// @Tags         wizard
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Draft ID"
// @Success      200  {object}  domain.EventDraft
// @Failure      404  {object}  map[string]string
// @Router       /v1/wizard/events/{id} [get]
func (h *EventWizardHandler) Get(c echo.Context) error {
	draft, err := h.wizard.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, draft)
}

// Update handles PATCH /v1/wizard/events/:id. Only the fields present in
// the body are applied.
//
// @Summary      Patch event draft fields
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Draft ID"
// @Param        body  body      ports.EventDraftPatch  true  "Fields to update"
// @Success      200   {object}  domain.EventDraft
// @Failure      404   {object}  map[string]string
// @Router       /v1/wizard/events/{id} [patch]
func (h *EventWizardHandler) Update(c echo.Context) error {
	var patch ports.EventDraftPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	draft, err := h.wizard.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, draft)
}

// Next handles POST /v1/wizard/events/:id/next. The draft advances only
// when the current step validates; otherwise it is returned with its
// error map populated.
//
// @Summary      Advance the event draft one step
// @Tags         wizard
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Draft ID"
// @Success      200  {object}  domain.EventDraft
// @Failure      404  {object}  map[string]string
// @Router       /v1/wizard/events/{id}/next [post]
func (h *EventWizardHandler) Next(c echo.Context) error {
	draft, err := h.wizard.Next(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, draft)
}

// Back handles POST /v1/wizard/events/:id/back.
//
// @Summary      Move the event draft one step back
// @Tags         wizard
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Draft ID"
// @Success      200  {object}  domain.EventDraft
// @Failure      404  {object}  map[string]string
// @Router       /v1/wizard/events/{id}/back [post]
func (h *EventWizardHandler) Back(c echo.Context) error {
	draft, err := h.wizard.Back(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, draft)
}

type arrayValueRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// AddValue handles POST /v1/wizard/events/:id/values.
//
// @Summary      Append a value to an event draft array field
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Draft ID"
// @Param        body  body      arrayValueRequest  true  "Target field and value"
// @Success      200   {object}  domain.EventDraft
// @Failure      400   {object}  map[string]string
// @Router       /v1/wizard/events/{id}/values [post]
func (h *EventWizardHandler) AddValue(c echo.Context) error {
	var req arrayValueRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	draft, err := h.wizard.AddValue(c.Request().Context(), c.Param("id"), req.Field, req.Value)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, draft)
}

// RemoveValue handles DELETE /v1/wizard/events/:id/values.
//
// @Summary      Remove a value from an event draft array field
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Draft ID"
// @Param        body  body      arrayValueRequest  true  "Target field and value"
// @Success      200   {object}  domain.EventDraft
// @Failure      400   {object}  map[string]string
// @Router       /v1/wizard/events/{id}/values [delete]
func (h *EventWizardHandler) RemoveValue(c echo.Context) error {
	var req arrayValueRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	draft, err := h.wizard.RemoveValue(c.Request().Context(), c.Param("id"), req.Field, req.Value)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, draft)
}

type eventSubmitResponse struct {
	Draft *domain.EventDraft `json:"draft,omitempty"`
	Event *domain.Event      `json:"event,omitempty"`
}

// Submit handles POST /v1/wizard/events/:id/submit. On success the created
// event is returned and the draft is gone; on validation or persistence
// failure the draft comes back with its error map populated.
//
// @Summary      Submit the event draft
// @Tags         wizard
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Draft ID"
// @Success      201  {object}  eventSubmitResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      422  {object}  eventSubmitResponse
// @Router       /v1/wizard/events/{id}/submit [post]
func (h *EventWizardHandler) Submit(c echo.Context) error {
	draft, event, err := h.wizard.Submit(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	if event == nil {
		result := "rejected"
		if _, ok := draft.Errors[domain.SubmitErrorKey]; ok {
			result = "failed"
		}
		metrics.DraftSubmissionsTotal.WithLabelValues(string(domain.DraftKindEvent), result).Inc()
		return c.JSON(http.StatusUnprocessableEntity, eventSubmitResponse{Draft: draft})
	}

	metrics.DraftSubmissionsTotal.WithLabelValues(string(domain.DraftKindEvent), "created").Inc()
	return c.JSON(http.StatusCreated, eventSubmitResponse{Event: event})
}
