package handlers

import (
	"time"

	"github.com/ghuser/thoron/services/invoice/domain/models"
)

// InvoiceResponse is the JSON shape of an invoice with its carrier and lane.
type InvoiceResponse struct {
	ID             int64     `json:"id"             example:"2"`
	ShipmentID     int64     `json:"shipmentId"     example:"2"`
	CarrierID      int64     `json:"carrierId"      example:"2"`
	InvoiceNumber  string    `json:"invoiceNumber"  example:"INV-2024-0042"`
	QuotedAmount   float64   `json:"quotedAmount"   example:"2890"`
	ActualAmount   float64   `json:"actualAmount"   example:"3120.5"`
	Variance       float64   `json:"variance"       example:"230.5"`
	Status         string    `json:"status"         example:"Disputed"`
	DueDate        string    `json:"dueDate"        example:"2026-03-12"`
	CreatedAt      time.Time `json:"createdAt"`
	TrackingNumber *string   `json:"trackingNumber" example:"XPO-8823-2024"`
	Origin         string    `json:"origin"         example:"Atlanta, GA"`
	Destination    string    `json:"destination"    example:"Los Angeles, CA"`
	CarrierName    string    `json:"carrierName"    example:"XPO Logistics"`
} // @name InvoiceResponse

func toInvoiceResponse(i *models.InvoiceListing) InvoiceResponse {
	return InvoiceResponse{
		ID:             i.ID,
		ShipmentID:     i.ShipmentID,
		CarrierID:      i.CarrierID,
		InvoiceNumber:  i.InvoiceNumber,
		QuotedAmount:   i.QuotedAmount,
		ActualAmount:   i.ActualAmount,
		Variance:       i.Variance(),
		Status:         string(i.Status),
		DueDate:        i.DueDate,
		CreatedAt:      i.CreatedAt,
		TrackingNumber: i.TrackingNumber,
		Origin:         i.Origin,
		Destination:    i.Destination,
		CarrierName:    i.CarrierName,
	}
}
