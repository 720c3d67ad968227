package handlers

import (
	"time"

	"github.com/ghuser/thoron/services/shipment/domain/models"
)

// ShipmentResponse is the dashboard representation of a shipment.
type ShipmentResponse struct {
	ID                int64     `json:"id"                example:"1"`
	Origin            string    `json:"origin"            example:"Chicago, IL"`
	Destination       string    `json:"destination"       example:"Dallas, TX"`
	Weight            float64   `json:"weight"            example:"1850"`
	Dimensions        string    `json:"dimensions"        example:"48x40x48"`
	FreightClass      string    `json:"freightClass"      example:"70"`
	Status            string    `json:"status"            example:"In Transit"`
	CarrierID         *int64    `json:"carrierId"         example:"1"`
	TrackingNumber    *string   `json:"trackingNumber"    example:"OLD-4491-2024"`
	EstimatedDelivery *string   `json:"estimatedDelivery" example:"2026-02-26"`
	CreatedAt         time.Time `json:"createdAt"         example:"2026-02-23T16:00:00Z"`
} // @name ShipmentResponse

// TrackingSummaryResponse is one row of the tracking board.
type TrackingSummaryResponse struct {
	ShipmentResponse
	CarrierName   *string    `json:"carrierName"   example:"Old Dominion Freight"`
	LastEventType *string    `json:"lastEventType" example:"In Transit"`
	LastLocation  *string    `json:"lastLocation"  example:"St. Louis, MO"`
	LastEventTime *time.Time `json:"lastEventTime" example:"2026-02-25T06:15:00Z"`
} // @name TrackingSummaryResponse

// ShipmentEventResponse is one tracking milestone.
type ShipmentEventResponse struct {
	ID         int64     `json:"id"         example:"3"`
	ShipmentID int64     `json:"shipmentId" example:"1"`
	EventType  string    `json:"eventType"  example:"In Transit"`
	Location   string    `json:"location"   example:"St. Louis, MO"`
	Message    string    `json:"message"    example:"En route to destination"`
	EventTime  time.Time `json:"eventTime"  example:"2026-02-25T06:15:00Z"`
} // @name ShipmentEventResponse

// TrackingDetailResponse is a shipment with its full milestone timeline.
type TrackingDetailResponse struct {
	ShipmentResponse
	CarrierName  *string                 `json:"carrierName"  example:"Old Dominion Freight"`
	CarrierPhone *string                 `json:"carrierPhone" example:"1-800-432-6335"`
	Events       []ShipmentEventResponse `json:"events"`
} // @name TrackingDetailResponse

func toShipmentResponse(s *models.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:                s.ID,
		Origin:            s.Origin,
		Destination:       s.Destination,
		Weight:            s.Weight,
		Dimensions:        s.Dimensions,
		FreightClass:      s.FreightClass,
		Status:            string(s.Status),
		CarrierID:         s.CarrierID,
		TrackingNumber:    s.TrackingNumber,
		EstimatedDelivery: s.EstimatedDelivery,
		CreatedAt:         s.CreatedAt,
	}
}

func toEventResponse(e *models.ShipmentEvent) ShipmentEventResponse {
	return ShipmentEventResponse{
		ID:         e.ID,
		ShipmentID: e.ShipmentID,
		EventType:  e.EventType,
		Location:   e.Location,
		Message:    e.Message,
		EventTime:  e.EventTime,
	}
}
