package handlers

import (
	"net/http"

	"github.com/ghuser/thoron/pkg/errhttp"
	"github.com/ghuser/thoron/pkg/httpx"
	appsvcs "github.com/ghuser/thoron/services/carrier/application/services"
)

// ResetCarriersHandler handles POST /carriers/reset requests. Mounted in
// development only.
type ResetCarriersHandler struct {
	svc *appsvcs.Services
}

// NewResetCarriersHandler returns a ResetCarriersHandler backed by the given services.
func NewResetCarriersHandler(svc *appsvcs.Services) *ResetCarriersHandler {
	return &ResetCarriersHandler{svc: svc}
}

// Execute restores the demo carriers along with the freight that references them.
//
//	@Summary	Reset carrier demo data
//	@Tags		carriers
//	@Produce	json
//	@Success	200	{object}	MessageResponse
//	@Failure	500	{object}	httpx.ErrorResponse
//	@Router		/carriers/reset [post]
func (h *ResetCarriersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Carrier.Reset(r.Context()); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, MessageResponse{Message: "Carriers seeded."})
}
