package handlers

import (
	"net/http"

	"github.com/ghuser/thoron/pkg/errhttp"
	"github.com/ghuser/thoron/pkg/httpx"
	pkgvalidator "github.com/ghuser/thoron/pkg/validator"
	appsvcs "github.com/ghuser/thoron/services/user/application/services"
)

// ChangeRoleRequest is the request body for PUT /users/{id}/role.
type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=Admin Dispatcher Driver Customer" example:"Dispatcher"`
} // @name ChangeRoleRequest

// ChangeRoleHandler handles PUT /users/{id}/role requests.
type ChangeRoleHandler struct {
	svc *appsvcs.Services
}

// NewChangeRoleHandler returns a ChangeRoleHandler backed by the given services.
func NewChangeRoleHandler(svc *appsvcs.Services) *ChangeRoleHandler {
	return &ChangeRoleHandler{svc: svc}
}

// Execute assigns a new role to a user.
//
//	@Summary	Change user role
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"User ID"
//	@Param		request	body		ChangeRoleRequest	true	"Role"
//	@Success	200		{object}	UserResponse
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Failure	404		{object}	httpx.ErrorResponse
//	@Failure	422		{object}	httpx.ErrorResponse
//	@Router		/users/{id}/role [put]
func (h *ChangeRoleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(w, r, "id")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[ChangeRoleRequest](w, r)
	if !ok {
		return
	}

	u, err := h.svc.User.ChangeRole(r.Context(), id, req.Role)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toUserResponse(u))
}
