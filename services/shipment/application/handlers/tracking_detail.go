package handlers

import (
	"net/http"

	"github.com/ghuser/thoron/pkg/errhttp"
	"github.com/ghuser/thoron/pkg/httpx"
	appsvcs "github.com/ghuser/thoron/services/shipment/application/services"
)

// TrackingDetailHandler handles GET /tracking/{id} requests.
type TrackingDetailHandler struct {
	svc *appsvcs.Services
}

// NewTrackingDetailHandler returns a TrackingDetailHandler backed by the given services.
func NewTrackingDetailHandler(svc *appsvcs.Services) *TrackingDetailHandler {
	return &TrackingDetailHandler{svc: svc}
}

// Execute returns one shipment with its milestone timeline, oldest first.
//
//	@Summary	Shipment timeline
//	@Tags		tracking
//	@Produce	json
//	@Param		id	path		int	true	"Shipment ID"
//	@Success	200	{object}	TrackingDetailResponse
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/tracking/{id} [get]
func (h *TrackingDetailHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(w, r, "id")
	if !ok {
		return
	}

	d, err := h.svc.Tracking.Detail(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	events := make([]ShipmentEventResponse, 0, len(d.Events))
	for i := range d.Events {
		events = append(events, toEventResponse(&d.Events[i]))
	}
	httpx.JSON(w, http.StatusOK, TrackingDetailResponse{
		ShipmentResponse: toShipmentResponse(&d.Shipment),
		CarrierName:      d.CarrierName,
		CarrierPhone:     d.CarrierPhone,
		Events:           events,
	})
}
