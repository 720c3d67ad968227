package handlers

import (
	"net/http"

	"github.com/ghuser/thoron/pkg/errhttp"
	"github.com/ghuser/thoron/pkg/httpx"
	appsvcs "github.com/ghuser/thoron/services/document/application/services"
)

// ListDocumentsHandler handles GET /documents requests.
type ListDocumentsHandler struct {
	svc *appsvcs.Services
}

// NewListDocumentsHandler returns a ListDocumentsHandler backed by the given services.
func NewListDocumentsHandler(svc *appsvcs.Services) *ListDocumentsHandler {
	return &ListDocumentsHandler{svc: svc}
}

// Execute lists documents, newest first.
//
//	@Summary	List documents
//	@Tags		documents
//	@Produce	json
//	@Success	200	{array}		DocumentResponse
//	@Failure	500	{object}	httpx.ErrorResponse
//	@Router		/documents [get]
func (h *ListDocumentsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	docs, err := h.svc.Document.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		resp = append(resp, toDocumentResponse(&d.Document, d.TrackingNumber))
	}
	httpx.JSON(w, http.StatusOK, resp)
}
