package handlers

import (
	"net/http"

	"github.com/ghuser/thoron/pkg/errhttp"
	"github.com/ghuser/thoron/pkg/httpx"
	appsvcs "github.com/ghuser/thoron/services/invoice/application/services"
)

// ListInvoicesHandler handles GET /invoices requests.
type ListInvoicesHandler struct {
	svc *appsvcs.Services
}

// NewListInvoicesHandler returns a ListInvoicesHandler backed by the given services.
func NewListInvoicesHandler(svc *appsvcs.Services) *ListInvoicesHandler {
	return &ListInvoicesHandler{svc: svc}
}

// Execute lists invoices with carrier name, tracking number and lane.
//
//	@Summary	List invoices
//	@Tags		invoices
//	@Produce	json
//	@Success	200	{array}		InvoiceResponse
//	@Failure	500	{object}	httpx.ErrorResponse
//	@Router		/invoices [get]
func (h *ListInvoicesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.svc.Invoice.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]InvoiceResponse, 0, len(invoices))
	for _, i := range invoices {
		resp = append(resp, toInvoiceResponse(i))
	}
	httpx.JSON(w, http.StatusOK, resp)
}
