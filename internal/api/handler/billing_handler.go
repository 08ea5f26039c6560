package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
)

// BillingHandler serves the billing screen.
type BillingHandler struct {
	billing ports.BillingService
}

func NewBillingHandler(billing ports.BillingService) *BillingHandler {
	return &BillingHandler{billing: billing}
}

// Plans handles GET /v1/billing/plans.
//
// @Summary      List subscription plans
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Plan
// @Failure      403  {object}  map[string]string
// @Router       /v1/billing/plans [get]
func (h *BillingHandler) Plans(c echo.Context) error {
	plans, err := h.billing.ListPlans(c.Request().Context())
	if err != nil {
		return err
	}
	if plans == nil {
		plans = []*domain.Plan{}
	}
	return c.JSON(http.StatusOK, plans)
}

type invoiceListQuery struct {
	Status string `query:"status"`
	Search string `query:"search"`
	pageQuery
}

// Invoices handles GET /v1/billing/invoices.
//
// @Summary      List invoices
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Exact status filter"
// @Param        search  query     string  false  "Substring match on invoice number or society"
// @Param        page    query     int     false  "Page number (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Success      200     {object}  pageResponse[domain.Invoice]
// @Failure      403     {object}  map[string]string
// @Router       /v1/billing/invoices [get]
func (h *BillingHandler) Invoices(c echo.Context) error {
	var q invoiceListQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid query"})
	}

	page, err := h.billing.ListInvoices(c.Request().Context(), ports.InvoiceFilter{
		Status: q.Status,
		Search: q.Search,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newPageResponse(page))
}

type subscriptionListQuery struct {
	Status string `query:"status"`
	pageQuery
}

// Subscriptions handles GET /v1/billing/subscriptions.
//
// @Summary      List subscriptions
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Exact status filter"
// @Param        page    query     int     false  "Page number (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Success      200     {object}  pageResponse[domain.Subscription]
// @Failure      403     {object}  map[string]string
// @Router       /v1/billing/subscriptions [get]
func (h *BillingHandler) Subscriptions(c echo.Context) error {
	var q subscriptionListQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid query"})
	}

	page, err := h.billing.ListSubscriptions(c.Request().Context(), ports.SubscriptionFilter{
		Status: q.Status,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newPageResponse(page))
}

type billingSummaryResponse struct {
	TotalRevenue        float64 `json:"total_revenue"`
	PendingAmount       float64 `json:"pending_amount"`
	PendingInvoices     int64   `json:"pending_invoices"`
	OverdueAmount       float64 `json:"overdue_amount"`
	OverdueInvoices     int64   `json:"overdue_invoices"`
	ActiveSubscriptions int64   `json:"active_subscriptions"`
}

// Summary handles GET /v1/billing/summary.
//
// @Summary      Billing stat-card numbers
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  billingSummaryResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/billing/summary [get]
func (h *BillingHandler) Summary(c echo.Context) error {
	sum, err := h.billing.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, billingSummaryResponse{
		TotalRevenue:        sum.TotalRevenue,
		PendingAmount:       sum.PendingAmount,
		PendingInvoices:     sum.PendingInvoices,
		OverdueAmount:       sum.OverdueAmount,
		OverdueInvoices:     sum.OverdueInvoices,
		ActiveSubscriptions: sum.ActiveSubscriptions,
	})
}
