package handlers

import (
	"net/http"

	"github.com/ghuser/thoron/pkg/errhttp"
	"github.com/ghuser/thoron/pkg/httpx"
	appsvcs "github.com/ghuser/thoron/services/carrier/application/services"
)

// GetCarrierHandler handles GET /carriers/{id} requests.
type GetCarrierHandler struct {
	svc *appsvcs.Services
}

// NewGetCarrierHandler returns a GetCarrierHandler backed by the given services.
func NewGetCarrierHandler(svc *appsvcs.Services) *GetCarrierHandler {
	return &GetCarrierHandler{svc: svc}
}

// Execute returns a single carrier.
//
//	@Summary	Get carrier
//	@Tags		carriers
//	@Produce	json
//	@Param		id	path		int	true	"Carrier ID"
//	@Success	200	{object}	CarrierResponse
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/carriers/{id} [get]
func (h *GetCarrierHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(w, r, "id")
	if !ok {
		return
	}

	c, err := h.svc.Carrier.Get(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toCarrierResponse(c))
}
