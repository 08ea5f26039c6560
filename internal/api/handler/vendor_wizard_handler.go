package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventra/event-console/internal/api/metrics"
	"github.com/eventra/event-console/internal/core/domain"
	"github.com/eventra/event-console/internal/core/ports"
)

// VendorWizardHandler drives the multi-step vendor onboarding form.
type VendorWizardHandler struct {
	wizard ports.VendorWizardService
}

func NewVendorWizardHandler(wizard ports.VendorWizardService) *VendorWizardHandler {
	return &VendorWizardHandler{wizard: wizard}
}

// Start handles POST /v1/wizard/vendors.
//
// @Summary      Start a vendor draft
// @Tags         wizard
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  domain.VendorDraft
// @Failure      401  {object}  map[string]string
// @Router       /v1/wizard/vendors [post]
func (h *VendorWizardHandler) Start(c echo.Context) error {
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

// Get handles GET /v1/wizard/vendors/:id.
//
// @Summary      Fetch a vendor draft
// @Tags         wizard
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Draft ID"
// @Success      200  {object}  domain.VendorDraft
// @Failure      404  {object}  map[string]string
// @Router       /v1/wizard/vendors/{id} [get]
func (h *VendorWizardHandler) Get(c echo.Context) error {
	draft, err := h.wizard.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, draft)
}

// Update handles PATCH /v1/wizard/vendors/:id.
//
// @Summary      Patch vendor draft fields
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Draft ID"
// @Param        body  body      ports.VendorDraftPatch  true  "Fields to update"
// @Success      200   {object}  domain.VendorDraft
// @Failure      404   {object}  map[string]string
// @Router       /v1/wizard/vendors/{id} [patch]
func (h *VendorWizardHandler) Update(c echo.Context) error {
	var patch ports.VendorDraftPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	draft, err := h.wizard.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, draft)
}

// Next handles POST /v1/wizard/vendors/:id/next.
//
// @Summary      Advance the vendor draft one step
// @Tags         wizard
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Draft ID"
// @Success      200  {object}  domain.VendorDraft
// @Failure      404  {object}  map[string]string
// @Router       /v1/wizard/vendors/{id}/next [post]
func (h *VendorWizardHandler) Next(c echo.Context) error {
	draft, err := h.wizard.Next(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, draft)
}

// Back handles POST /v1/wizard/vendors/:id/back.
//
// @Summary      Move the vendor draft one step back
// @Tags         wizard
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Draft ID"
// @Success      200  {object}  domain.VendorDraft
// @Failure      404  {object}  map[string]string
// @Router       /v1/wizard/vendors/{id}/back [post]
func (h *VendorWizardHandler) Back(c echo.Context) error {
	draft, err := h.wizard.Back(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, draft)
}

// AddValue handles POST /v1/wizard/vendors/:id/values.
//
// @Summary      Append a value to a vendor draft array field
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Draft ID"
// @Param        body  body      arrayValueRequest  true  "Target field and value"
// @Success      200   {object}  domain.VendorDraft
// @Failure      400   {object}  map[string]string
// @Router       /v1/wizard/vendors/{id}/values [post]
func (h *VendorWizardHandler) AddValue(c echo.Context) error {
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

// RemoveValue handles DELETE /v1/wizard/vendors/:id/values.
//
// @Summary      Remove a value from a vendor draft array field
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Draft ID"
// @Param        body  body      arrayValueRequest  true  "Target field and value"
// @Success      200   {object}  domain.VendorDraft
// @Failure      400   {object}  map[string]string
// @Router       /v1/wizard/vendors/{id}/values [delete]
func (h *VendorWizardHandler) RemoveValue(c echo.Context) error {
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

type vendorSubmitResponse struct {
	Draft  *domain.VendorDraft `json:"draft,omitempty"`
	Vendor *domain.Vendor      `json:"vendor,omitempty"`
}

// Submit handles POST /v1/wizard/vendors/:id/submit.
//
// @Summary      Submit the vendor draft
// @Tags         wizard
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Draft ID"
// @Success      201  {object}  vendorSubmitResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      422  {object}  vendorSubmitResponse
// @Router       /v1/wizard/vendors/{id}/submit [post]
func (h *VendorWizardHandler) Submit(c echo.Context) error {
	draft, vendor, err := h.wizard.Submit(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	if vendor == nil {
		result := "rejected"
		if _, ok := draft.Errors[domain.SubmitErrorKey]; ok {
			result = "failed"
		}
		metrics.DraftSubmissionsTotal.WithLabelValues(string(domain.DraftKindVendor), result).Inc()
		return c.JSON(http.StatusUnprocessableEntity, vendorSubmitResponse{Draft: draft})
	}

	metrics.DraftSubmissionsTotal.WithLabelValues(string(domain.DraftKindVendor), "created").Inc()
	return c.JSON(http.StatusCreated, vendorSubmitResponse{Vendor: vendor})
}
