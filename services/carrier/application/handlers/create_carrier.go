package handlers

import (
	"net/http"

	"github.com/ghuser/thoron/pkg/errhttp"
	"github.com/ghuser/thoron/pkg/httpx"
	pkgvalidator "github.com/ghuser/thoron/pkg/validator"
	appsvcs "github.com/ghuser/thoron/services/carrier/application/services"
)

// CreateCarrierHandler handles POST /carriers requests.
type CreateCarrierHandler struct {
	svc *appsvcs.Services
}

// NewCreateCarrierHandler returns a CreateCarrierHandler backed by the given services.
func NewCreateCarrierHandler(svc *appsvcs.Services) *CreateCarrierHandler {
	return &CreateCarrierHandler{svc: svc}
}

// Execute onboards a carrier.
//
//	@Summary		Create carrier
//	@Description	Onboards a carrier; performance figures start at their defaults
//	@Tags			carriers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CarrierRequest	true	"Carrier"
//	@Success		201		{object}	CarrierResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		422		{object}	httpx.ErrorResponse
//	@Router			/carriers [post]
func (h *CreateCarrierHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CarrierRequest](w, r)
	if !ok {
		return
	}

	c, err := h.svc.Carrier.Create(r.Context(), req.profile())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toCarrierResponse(c))
}
