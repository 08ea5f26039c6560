package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
)

// EventHandler serves the event list and calendar screens.
type EventHandler struct {
	events ports.EventService
}

func NewEventHandler(events ports.EventService) *EventHandler {
	return &EventHandler{events: events}
}

type eventListQuery struct {
	Status string `query:"status"`
	City   string `query:"city"`
	Search string `query:"search"`
	pageQuery
}

// List handles GET /v1/events.
//
// @Summary      List events
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Exact status filter"
// @Param        city    query     string  false  "Exact city filter"
// @Param        search  query     string  false  "Substring match on title, venue, or city"
// @Param        page    query     int     false  "Page number (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Success      200     {object}  pageResponse[domain.Event]
// @Failure      401     {object}  map[string]string
// @Router       /v1/events [get]
func (h *EventHandler) List(c echo.Context) error {
	var q eventListQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid query"})
	}

	page, err := h.events.ListEvents(c.Request().Context(), ports.EventFilter{
		Status: q.Status,
		City:   q.City,
		Search: q.Search,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newPageResponse(page))
}

// StatusCounts handles GET /v1/events/status-counts.
//
// @Summary      Event counts per status
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int64
// @Router       /v1/events/status-counts [get]
func (h *EventHandler) StatusCounts(c echo.Context) error {
	counts, err := h.events.StatusCounts(c.Request().Context())
	if err != nil {
		return err
	}

	out := make(map[string]int64, len(domain.EventStatuses))
	for _, st := range domain.EventStatuses {
		out[string(st)] = counts[st]
	}
	return c.JSON(http.StatusOK, out)
}

type calendarQuery struct {
	Year  int `query:"year"`
	Month int `query:"month"`
}

type calendarResponse struct {
	Year  int                     `json:"year"`
	Month int                     `json:"month"`
	Days  map[int][]*domain.Event `json:"days"`
}

// Month handles GET /v1/calendar. Year and month default to the current one.
//
// @Summary      Events of a calendar month, keyed by day
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        year   query     int  false  "Calendar year"
// @Param        month  query     int  false  "Calendar month (1-12)"
// @Success      200    {object}  calendarResponse
// @Failure      400    {object}  map[string]string
// @Router       /v1/calendar [get]
func (h *EventHandler) Month(c echo.Context) error {
	var q calendarQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid query"})
	}

	now := time.Now().UTC()
	if q.Year == 0 {
		q.Year = now.Year()
	}
	if q.Month == 0 {
		q.Month = int(now.Month())
	}
	if q.Month < 1 || q.Month > 12 {
		return echo.NewHTTPError(http.StatusBadRequest, "month must be between 1 and 12")
	}

	days, err := h.events.Month(c.Request().Context(), q.Year, time.Month(q.Month))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, calendarResponse{Year: q.Year, Month: q.Month, Days: days})
}

type upcomingQuery struct {
	Limit int `query:"limit"`
}

// Upcoming handles GET /v1/calendar/upcoming.
//
// @Summary      Next scheduled events, soonest first
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum number of events (default 5)"
// @Success      200    {array}   domain.Event
// @Router       /v1/calendar/upcoming [get]
func (h *EventHandler) Upcoming(c echo.Context) error {
	var q upcomingQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid query"})
	}

	events, err := h.events.Upcoming(c.Request().Context(), time.Now().UTC(), q.Limit)
	if err != nil {
		return err
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return c.JSON(http.StatusOK, events)
}
