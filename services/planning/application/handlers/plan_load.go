package handlers

import (
	"net/http"

	"github.com/ghuser/thoron/pkg/errhttp"
	"github.com/ghuser/thoron/pkg/httpx"
	pkgvalidator "github.com/ghuser/thoron/pkg/validator"
	appsvcs "github.com/ghuser/thoron/services/planning/application/services"
)

// PlanLoadRequest is the request body for POST /orders/plan.
type PlanLoadRequest struct {
	OrderIDs    []int64 `json:"orderIds"    validate:"required,min=1,max=500,dive,gt=0" example:"1,2"`
	Origin      string  `json:"origin"      validate:"required,notblank,max=255" example:"Cleveland, OH"`
	Destination string  `json:"destination" validate:"required,notblank,max=255" example:"Houston, TX"`
	Weight      float64 `json:"weight"      validate:"gte=0"                   example:"10700"`
	Dimensions  string  `json:"dimensions"  validate:"max=255"                 example:"2 Orders Consolidated"`
} // @name PlanLoadRequest

// PlanLoadResponse is returned when the orders were consolidated.
type PlanLoadResponse struct {
	ShipmentID int64 `json:"shipmentId" example:"7"`
} // @name PlanLoadResponse

// PlanLoadHandler handles POST /orders/plan requests.
type PlanLoadHandler struct {
	svc *appsvcs.Services
}

// NewPlanLoadHandler returns a PlanLoadHandler backed by the given services.
func NewPlanLoadHandler(svc *appsvcs.Services) *PlanLoadHandler {
	return &PlanLoadHandler{svc: svc}
}

// Execute consolidates Unplanned orders into one new Pending shipment.
//
//	@Summary		Plan load
//	@Description	Consolidates Unplanned orders into one Pending shipment under the truckload weight limit
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PlanLoadRequest	true	"Orders to consolidate"
//	@Success		201		{object}	PlanLoadResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		404		{object}	httpx.ErrorResponse
//	@Failure		409		{object}	httpx.ErrorResponse
//	@Failure		422		{object}	httpx.ErrorResponse
//	@Failure		500		{object}	httpx.ErrorResponse
//	@Router			/orders/plan [post]
func (h *PlanLoadHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[PlanLoadRequest](w, r)
	if !ok {
		return
	}

	planned, err := h.svc.Planning.PlanLoad(r.Context(), appsvcs.PlanLoadCommand{
		OrderIDs:    req.OrderIDs,
		Origin:      req.Origin,
		Destination: req.Destination,
		Weight:      req.Weight,
		Dimensions:  req.Dimensions,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, PlanLoadResponse{ShipmentID: planned.ShipmentID})
}
