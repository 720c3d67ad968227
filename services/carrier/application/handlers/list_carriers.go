package handlers

import (
	"net/http"

	"github.com/ghuser/thoron/pkg/errhttp"
	"github.com/ghuser/thoron/pkg/httpx"
	appsvcs "github.com/ghuser/thoron/services/carrier/application/services"
)

// ListCarriersHandler handles GET /carriers requests.
type ListCarriersHandler struct {
	svc *appsvcs.Services
}

// NewListCarriersHandler returns a ListCarriersHandler backed by the given services.
func NewListCarriersHandler(svc *appsvcs.Services) *ListCarriersHandler {
	return &ListCarriersHandler{svc: svc}
}

// Execute lists carriers, best rated first.
//
//	@Summary	List carriers
//	@Tags		carriers
//	@Produce	json
//	@Success	200	{array}		CarrierResponse
//	@Failure	500	{object}	httpx.ErrorResponse
//	@Router		/carriers [get]
func (h *ListCarriersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	carriers, err := h.svc.Carrier.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]CarrierResponse, 0, len(carriers))
	for _, c := range carriers {
		resp = append(resp, toCarrierResponse(c))
	}
	httpx.JSON(w, http.StatusOK, resp)
}
