package handlers

import (
	"net/http"

	"github.com/ghuser/thoron/pkg/errhttp"
	"github.com/ghuser/thoron/pkg/httpx"
	pkgvalidator "github.com/ghuser/thoron/pkg/validator"
	appsvcs "github.com/ghuser/thoron/services/document/application/services"
)

// UploadDocumentRequest is the request body for POST /documents.
type UploadDocumentRequest struct {
	ShipmentID *int64 `json:"shipmentId" validate:"omitempty,gt=0"    example:"1"`
	Type       string `json:"type"       validate:"omitempty,oneof=BOL POD Invoice 'Rate Confirmation' Customs Other" example:"POD"`
	Filename   string `json:"filename"   validate:"required,notblank,max=255" example:"pod_FDX-2211-signed.pdf"`
	Size       int64  `json:"size"       validate:"gte=0"             example:"241877"`
} // @name UploadDocumentRequest

// UploadDocumentHandler handles POST /documents requests.
type UploadDocumentHandler struct {
	svc *appsvcs.Services
}

// NewUploadDocumentHandler returns an UploadDocumentHandler backed by the given services.
func NewUploadDocumentHandler(svc *appsvcs.Services) *UploadDocumentHandler {
	return &UploadDocumentHandler{svc: svc}
}

// Execute records the metadata of an uploaded document.
//
//	@Summary		Upload document
//	@Description	Records document metadata; the type is inferred from the filename when omitted
//	@Tags			documents
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UploadDocumentRequest	true	"Document"
//	@Success		201		{object}	DocumentResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		422		{object}	httpx.ErrorResponse
//	@Router			/documents [post]
func (h *UploadDocumentHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[UploadDocumentRequest](w, r)
	if !ok {
		return
	}

	d, err := h.svc.Document.Upload(r.Context(), appsvcs.UploadCommand{
		ShipmentID: req.ShipmentID,
		Type:       req.Type,
		Filename:   req.Filename,
		Size:       req.Size,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toDocumentResponse(d, nil))
}
