package handlers

import (
	"net/http"

	"github.com/ghuser/thoron/pkg/errhttp"
	"github.com/ghuser/thoron/pkg/httpx"
	appsvcs "github.com/ghuser/thoron/services/shipment/application/services"
)

// TrackingBoardHandler handles GET /tracking requests.
type TrackingBoardHandler struct {
	svc *appsvcs.Services
}

// NewTrackingBoardHandler returns a TrackingBoardHandler backed by the given services.
func NewTrackingBoardHandler(svc *appsvcs.Services) *TrackingBoardHandler {
	return &TrackingBoardHandler{svc: svc}
}

// Execute lists shipments newest first with their carrier and latest milestone.
//
//	@Summary	Tracking board
//	@Tags		tracking
//	@Produce	json
//	@Success	200	{array}		TrackingSummaryResponse
//	@Failure	500	{object}	httpx.ErrorResponse
//	@Router		/tracking [get]
func (h *TrackingBoardHandler) Execute(w http.ResponseWriter, r *http.Request) {
	board, err := h.svc.Tracking.Board(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]TrackingSummaryResponse, 0, len(board))
	for _, row := range board {
		resp = append(resp, TrackingSummaryResponse{
			ShipmentResponse: toShipmentResponse(&row.Shipment),
			CarrierName:      row.CarrierName,
			LastEventType:    row.LastEventType,
			LastLocation:     row.LastLocation,
			LastEventTime:    row.LastEventTime,
		})
	}
	httpx.JSON(w, http.StatusOK, resp)
}
