package handlers

import (
	"net/http"

	"github.com/ghuser/thoron/pkg/errhttp"
	"github.com/ghuser/thoron/pkg/httpx"
	appsvcs "github.com/ghuser/thoron/services/document/application/services"
)

// DeleteDocumentHandler handles DELETE /documents/{id} requests.
type DeleteDocumentHandler struct {
	svc *appsvcs.Services
}

// NewDeleteDocumentHandler returns a DeleteDocumentHandler backed by the given services.
func NewDeleteDocumentHandler(svc *appsvcs.Services) *DeleteDocumentHandler {
	return &DeleteDocumentHandler{svc: svc}
}

// Execute removes a document.
//
//	@Summary	Delete document
//	@Tags		documents
//	@Param		id	path	int	true	"Document ID"
//	@Success	204
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/documents/{id} [delete]
func (h *DeleteDocumentHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Document.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.NoContent(w)
}
