package handlers

import (
	"net/http"

	"github.com/ghuser/thoron/pkg/errhttp"
	"github.com/ghuser/thoron/pkg/httpx"
	pkgvalidator "github.com/ghuser/thoron/pkg/validator"
	appsvcs "github.com/ghuser/thoron/services/shipment/application/services"
)

// CreateShipmentRequest is the request body for POST /shipments.
type CreateShipmentRequest struct {
	Origin            string  `json:"origin"            validate:"required,notblank,max=255" example:"Chicago, IL"`
	Destination       string  `json:"destination"       validate:"required,notblank,max=255" example:"Dallas, TX"`
	Weight            float64 `json:"weight"            validate:"gte=0"            example:"1850"`
	Dimensions        string  `json:"dimensions"        validate:"max=255"          example:"48x40x48"`
	FreightClass      string  `json:"freightClass"      validate:"max=8"            example:"70"`
	Status            string  `json:"status"            validate:"omitempty,oneof=Pending Dispatched 'In Transit' Delivered Exception" example:"Pending"`
	CarrierID         *int64  `json:"carrierId"         validate:"omitempty,gt=0"   example:"1"`
	TrackingNumber    *string `json:"trackingNumber"    validate:"omitempty,max=64" example:"OLD-4491-2024"`
	EstimatedDelivery *string `json:"estimatedDelivery" validate:"omitempty,datetime=2006-01-02" example:"2026-02-26"`
} // @name CreateShipmentRequest

// CreateShipmentHandler handles POST /shipments requests.
type CreateShipmentHandler struct {
	svc *appsvcs.Services
}

// NewCreateShipmentHandler returns a CreateShipmentHandler backed by the given services.
func NewCreateShipmentHandler(svc *appsvcs.Services) *CreateShipmentHandler {
	return &CreateShipmentHandler{svc: svc}
}

// Execute creates a shipment directly, outside load planning.
//
//	@Summary		Create shipment
//	@Description	Creates a shipment; the NMFC freight class is derived from LxWxH dimensions when omitted
//	@Tags			shipments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateShipmentRequest	true	"Shipment"
//	@Success		201		{object}	ShipmentResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		422		{object}	httpx.ErrorResponse
//	@Router			/shipments [post]
func (h *CreateShipmentHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateShipmentRequest](w, r)
	if !ok {
		return
	}

	shipment, err := h.svc.Shipment.Create(r.Context(), appsvcs.CreateShipmentCommand{
		Origin:            req.Origin,
		Destination:       req.Destination,
		Weight:            req.Weight,
		Dimensions:        req.Dimensions,
		FreightClass:      req.FreightClass,
		Status:            req.Status,
		CarrierID:         req.CarrierID,
		TrackingNumber:    req.TrackingNumber,
		EstimatedDelivery: req.EstimatedDelivery,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toShipmentResponse(shipment))
}
