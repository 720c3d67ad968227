package handlers

import (
	"net/http"

	"github.com/ghuser/thoron/pkg/errhttp"
	"github.com/ghuser/thoron/pkg/httpx"
	pkgvalidator "github.com/ghuser/thoron/pkg/validator"
	appsvcs "github.com/ghuser/thoron/services/carrier/application/services"
)

// UpdateCarrierHandler handles PUT /carriers/{id} requests.
type UpdateCarrierHandler struct {
	svc *appsvcs.Services
}

// NewUpdateCarrierHandler returns an UpdateCarrierHandler backed by the given services.
func NewUpdateCarrierHandler(svc *appsvcs.Services) *UpdateCarrierHandler {
	return &UpdateCarrierHandler{svc: svc}
}

// Execute replaces a carrier's profile.
//
//	@Summary	Update carrier
//	@Tags		carriers
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Carrier ID"
//	@Param		request	body		CarrierRequest	true	"Carrier"
//	@Success	200		{object}	CarrierResponse
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Failure	404		{object}	httpx.ErrorResponse
//	@Failure	422		{object}	httpx.ErrorResponse
//	@Router		/carriers/{id} [put]
func (h *UpdateCarrierHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(w, r, "id")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[CarrierRequest](w, r)
	if !ok {
		return
	}

	c, err := h.svc.Carrier.Update(r.Context(), id, req.profile())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toCarrierResponse(c))
}
