package handlers

import (
	"net/http"

	"github.com/ghuser/thoron/pkg/errhttp"
	"github.com/ghuser/thoron/pkg/httpx"
	appsvcs "github.com/ghuser/thoron/services/shipment/application/services"
)

// MessageResponse acknowledges an action that returns no resource.
type MessageResponse struct {
	Message string `json:"message" example:"Shipments and events seeded."`
} // @name MessageResponse

// ResetTrackingHandler handles POST /tracking/reset requests. Mounted in
// development only.
type ResetTrackingHandler struct {
	svc *appsvcs.Services
}

// NewResetTrackingHandler returns a ResetTrackingHandler backed by the given services.
func NewResetTrackingHandler(svc *appsvcs.Services) *ResetTrackingHandler {
	return &ResetTrackingHandler{svc: svc}
}

// Execute restores the demo shipments, milestones and orders.
//
//	@Summary	Reset tracking demo data
//	@Tags		tracking
//	@Produce	json
//	@Success	200	{object}	MessageResponse
//	@Failure	500	{object}	httpx.ErrorResponse
//	@Router		/tracking/reset [post]
func (h *ResetTrackingHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Tracking.Reset(r.Context()); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, MessageResponse{Message: "Shipments and events seeded."})
}
