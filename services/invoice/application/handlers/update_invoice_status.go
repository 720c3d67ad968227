package handlers

import (
	"net/http"

	"github.com/ghuser/thoron/pkg/errhttp"
	"github.com/ghuser/thoron/pkg/httpx"
	pkgvalidator "github.com/ghuser/thoron/pkg/validator"
	appsvcs "github.com/ghuser/thoron/services/invoice/application/services"
)

// UpdateInvoiceStatusRequest is the request body for PUT /invoices/{id}/status.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Approved Disputed Paid" example:"Approved"`
} // @name UpdateInvoiceStatusRequest

// UpdateInvoiceStatusHandler handles PUT /invoices/{id}/status requests.
type UpdateInvoiceStatusHandler struct {
	svc *appsvcs.Services
}

// NewUpdateInvoiceStatusHandler returns an UpdateInvoiceStatusHandler backed by the given services.
func NewUpdateInvoiceStatusHandler(svc *appsvcs.Services) *UpdateInvoiceStatusHandler {
	return &UpdateInvoiceStatusHandler{svc: svc}
}

// Execute changes an invoice's audit status.
//
//	@Summary	Update invoice status
//	@Tags		invoices
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Invoice ID"
//	@Param		request	body		UpdateInvoiceStatusRequest	true	"Status"
//	@Success	200		{object}	InvoiceResponse
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Failure	404		{object}	httpx.ErrorResponse
//	@Failure	422		{object}	httpx.ErrorResponse
//	@Router		/invoices/{id}/status [put]
func (h *UpdateInvoiceStatusHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(w, r, "id")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateInvoiceStatusRequest](w, r)
	if !ok {
		return
	}

	inv, err := h.svc.Invoice.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toInvoiceResponse(inv))
}
