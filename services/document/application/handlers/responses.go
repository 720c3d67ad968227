package handlers

import (
	"time"

	"github.com/ghuser/thoron/services/document/domain/models"
)

// DocumentResponse is the JSON shape of a document.
type DocumentResponse struct {
	ID             int64     `json:"id"             example:"1"`
	ShipmentID     *int64    `json:"shipmentId"     example:"1"`
	Type           string    `json:"type"           example:"BOL"`
	Filename       string    `json:"filename"       example:"bol_OLD-4491-2024.pdf"`
	Size           int64     `json:"size"           example:"182344"`
	Status         string    `json:"status"         example:"Verified"`
	UploadedAt     time.Time `json:"uploadedAt"`
	TrackingNumber *string   `json:"trackingNumber" example:"OLD-4491-2024"`
} // @name DocumentResponse

func toDocumentResponse(d *models.Document, tracking *string) DocumentResponse {
	return DocumentResponse{
		ID:             d.ID,
		ShipmentID:     d.ShipmentID,
		Type:           string(d.Type),
		Filename:       d.Filename,
		Size:           d.Size,
		Status:         string(d.Status),
		UploadedAt:     d.UploadedAt,
		TrackingNumber: tracking,
	}
}
