package handlers

import (
	"time"

	"github.com/ghuser/thoron/services/planning/domain/models"
)

// OrderResponse is the dashboard representation of an order.
type OrderResponse struct {
	ID           int64     `json:"id"           example:"1"`
	CustomerName string    `json:"customerName" example:"Acme Manufacturing"`
	PONumber     string    `json:"poNumber"     example:"PO-88210"`
	Origin       string    `json:"origin"       example:"Cleveland, OH"`
	Destination  string    `json:"destination"  example:"Houston, TX"`
	Weight       float64   `json:"weight"       example:"4500"`
	Dimensions   string    `json:"dimensions"   example:"48x40x60"`
	Status       string    `json:"status"       example:"Unplanned"`
	ShipmentID   *int64    `json:"shipmentId"`
	CreatedAt    time.Time `json:"createdAt"    example:"2024-01-15T10:30:00Z"`
} // @name OrderResponse

func toOrderResponse(o *models.Order) OrderResponse {
	return OrderResponse{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		PONumber:     o.PONumber,
		Origin:       o.Origin,
		Destination:  o.Destination,
		Weight:       o.Weight,
		Dimensions:   o.Dimensions,
		Status:       string(o.Status),
		ShipmentID:   o.ShipmentID,
		CreatedAt:    o.CreatedAt,
	}
}
