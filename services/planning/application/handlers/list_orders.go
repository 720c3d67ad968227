package handlers

import (
	"net/http"

	"github.com/ghuser/thoron/pkg/errhttp"
	"github.com/ghuser/thoron/pkg/httpx"
	appsvcs "github.com/ghuser/thoron/services/planning/application/services"
)

// ListOrdersHandler handles GET /orders requests.
type ListOrdersHandler struct {
	svc *appsvcs.Services
}

// NewListOrdersHandler returns a ListOrdersHandler backed by the given services.
func NewListOrdersHandler(svc *appsvcs.Services) *ListOrdersHandler {
	return &ListOrdersHandler{svc: svc}
}

// Execute lists orders oldest first.
//
//	@Summary		List orders
//	@Description	Lists orders oldest first, optionally filtered by planning status
//	@Tags			orders
//	@Produce		json
//	@Param			status	query		string	false	"Order status"	Enums(Unplanned, Planned)
//	@Success		200		{array}		OrderResponse
//	@Failure		422		{object}	httpx.ErrorResponse
//	@Router			/orders [get]
func (h *ListOrdersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.Planning.ListOrders(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o))
	}
	httpx.JSON(w, http.StatusOK, resp)
}
