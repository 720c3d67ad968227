package handlers

import (
	"net/http"

	"github.com/ghuser/thoron/pkg/errhttp"
	"github.com/ghuser/thoron/pkg/httpx"
	pkgvalidator "github.com/ghuser/thoron/pkg/validator"
	appsvcs "github.com/ghuser/thoron/services/planning/application/services"
)

// CreateOrderRequest is the request body for POST /orders.
type CreateOrderRequest struct {
	CustomerName string  `json:"customerName" validate:"required,notblank,max=255" example:"Acme Manufacturing"`
	PONumber     string  `json:"poNumber"     validate:"required,notblank,max=64" example:"PO-88210"`
	Origin       string  `json:"origin"       validate:"required,notblank,max=255" example:"Cleveland, OH"`
	Destination  string  `json:"destination"  validate:"required,notblank,max=255" example:"Houston, TX"`
	Weight       float64 `json:"weight"       validate:"gt=0"             example:"4500"`
	Dimensions   string  `json:"dimensions"   validate:"max=255"          example:"48x40x60"`
} // @name CreateOrderRequest

// CreateOrderHandler handles POST /orders requests.
type CreateOrderHandler struct {
	svc *appsvcs.Services
}

// NewCreateOrderHandler returns a CreateOrderHandler backed by the given services.
func NewCreateOrderHandler(svc *appsvcs.Services) *CreateOrderHandler {
	return &CreateOrderHandler{svc: svc}
}

// Execute records a new Unplanned order.
//
//	@Summary		Create order
//	@Description	Records a customer order awaiting load planning
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateOrderRequest	true	"Order intake request"
//	@Success		201		{object}	OrderResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		422		{object}	httpx.ErrorResponse
//	@Router			/orders [post]
func (h *CreateOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateOrderRequest](w, r)
	if !ok {
		return
	}

	order, err := h.svc.Planning.CreateOrder(r.Context(), appsvcs.CreateOrderCommand{
		CustomerName: req.CustomerName,
		PONumber:     req.PONumber,
		Origin:       req.Origin,
		Destination:  req.Destination,
		Weight:       req.Weight,
		Dimensions:   req.Dimensions,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toOrderResponse(order))
}
