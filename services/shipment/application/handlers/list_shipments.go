package handlers

import (
	"net/http"

	"github.com/ghuser/thoron/pkg/errhttp"
	"github.com/ghuser/thoron/pkg/httpx"
	appsvcs "github.com/ghuser/thoron/services/shipment/application/services"
)

// ListShipmentsHandler handles GET /shipments requests.
type ListShipmentsHandler struct {
	svc *appsvcs.Services
}

// NewListShipmentsHandler returns a ListShipmentsHandler backed by the given services.
func NewListShipmentsHandler(svc *appsvcs.Services) *ListShipmentsHandler {
	return &ListShipmentsHandler{svc: svc}
}

// Execute lists every shipment.
//
//	@Summary	List shipments
//	@Tags		shipments
//	@Produce	json
//	@Success	200	{array}		ShipmentResponse
//	@Failure	500	{object}	httpx.ErrorResponse
//	@Router		/shipments [get]
func (h *ListShipmentsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	shipments, err := h.svc.Shipment.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]ShipmentResponse, 0, len(shipments))
	for _, s := range shipments {
		resp = append(resp, toShipmentResponse(s))
	}
	httpx.JSON(w, http.StatusOK, resp)
}
