package handlers

import (
	"net/http"

	"github.com/ghuser/thoron/pkg/errhttp"
	"github.com/ghuser/thoron/pkg/httpx"
	appsvcs "github.com/ghuser/thoron/services/user/application/services"
)

// ListUsersHandler handles GET /users requests.
type ListUsersHandler struct {
	svc *appsvcs.Services
}

// NewListUsersHandler returns a ListUsersHandler backed by the given services.
func NewListUsersHandler(svc *appsvcs.Services) *ListUsersHandler {
	return &ListUsersHandler{svc: svc}
}

// Execute lists dashboard accounts.
//
//	@Summary	List users
//	@Tags		users
//	@Produce	json
//	@Success	200	{array}		UserResponse
//	@Failure	500	{object}	httpx.ErrorResponse
//	@Router		/users [get]
func (h *ListUsersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.User.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(u))
	}
	httpx.JSON(w, http.StatusOK, resp)
}
