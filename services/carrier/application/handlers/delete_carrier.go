package handlers

import (
	"net/http"

	"github.com/ghuser/thoron/pkg/errhttp"
	"github.com/ghuser/thoron/pkg/httpx"
	appsvcs "github.com/ghuser/thoron/services/carrier/application/services"
)

// DeleteCarrierHandler handles DELETE /carriers/{id} requests.
type DeleteCarrierHandler struct {
	svc *appsvcs.Services
}

// NewDeleteCarrierHandler returns a DeleteCarrierHandler backed by the given services.
func NewDeleteCarrierHandler(svc *appsvcs.Services) *DeleteCarrierHandler {
	return &DeleteCarrierHandler{svc: svc}
}

// Execute removes a carrier that nothing references.
//
//	@Summary	Delete carrier
//	@Tags		carriers
//	@Param		id	path	int	true	"Carrier ID"
//	@Success	204
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Failure	409	{object}	httpx.ErrorResponse
//	@Router		/carriers/{id} [delete]
func (h *DeleteCarrierHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Carrier.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.NoContent(w)
}
