package handlers

import (
	"net/http"
	"time"

	"github.com/ghuser/thoron/pkg/errhttp"
	"github.com/ghuser/thoron/pkg/httpx"
	pkgvalidator "github.com/ghuser/thoron/pkg/validator"
	appsvcs "github.com/ghuser/thoron/services/shipment/application/services"
)

// AddTrackingEventRequest is the request body for POST /tracking/{id}/events.
type AddTrackingEventRequest struct {
	EventType string     `json:"eventType" validate:"required,notblank,max=64" example:"Out for Delivery"`
	Location  string     `json:"location"  validate:"max=255"          example:"Dallas, TX"`
	Message   string     `json:"message"   validate:"max=1024"         example:"Out for final delivery"`
	EventTime *time.Time `json:"eventTime" example:"2026-02-26T07:45:00Z"`
} // @name AddTrackingEventRequest

// AddTrackingEventHandler handles POST /tracking/{id}/events requests.
type AddTrackingEventHandler struct {
	svc *appsvcs.Services
}

// NewAddTrackingEventHandler returns an AddTrackingEventHandler backed by the given services.
func NewAddTrackingEventHandler(svc *appsvcs.Services) *AddTrackingEventHandler {
	return &AddTrackingEventHandler{svc: svc}
}

// Execute appends a milestone to a shipment's timeline.
//
//	@Summary		Add tracking event
//	@Description	Appends a milestone; eventTime defaults to now
//	@Tags			tracking
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Shipment ID"
//	@Param			request	body		AddTrackingEventRequest	true	"Milestone"
//	@Success		201		{object}	ShipmentEventResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		404		{object}	httpx.ErrorResponse
//	@Failure		422		{object}	httpx.ErrorResponse
//	@Router			/tracking/{id}/events [post]
func (h *AddTrackingEventHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(w, r, "id")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[AddTrackingEventRequest](w, r)
	if !ok {
		return
	}

	cmd := appsvcs.AddEventCommand{
		ShipmentID: id,
		EventType:  req.EventType,
		Location:   req.Location,
		Message:    req.Message,
	}
	if req.EventTime != nil {
		cmd.EventTime = *req.EventTime
	}

	event, err := h.svc.Tracking.AddEvent(r.Context(), cmd)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toEventResponse(event))
}
