package handlers

import (
	"time"

	"github.com/ghuser/thoron/services/carrier/domain/models"
)

// CarrierResponse is the JSON shape of a carrier.
type CarrierResponse struct {
	ID             int64     `json:"id"             example:"1"`
	Name           string    `json:"name"           example:"FedEx Freight"`
	MCNumber       string    `json:"mcNumber"       example:"MC-123456"`
	DOTNumber      string    `json:"dotNumber"      example:"DOT-7891011"`
	ContactName    string    `json:"contactName"    example:"Sarah Mitchell"`
	ContactEmail   string    `json:"contactEmail"   example:"sarah.m@fedexfreight.com"`
	ContactPhone   string    `json:"contactPhone"   example:"(800) 463-3339"`
	InsuranceLimit float64   `json:"insuranceLimit" example:"1000000"`
	ServiceLevel   string    `json:"serviceLevel"   example:"Premium"`
	Modes          string    `json:"modes"          example:"LTL,FTL"`
	OnTimeRate     float64   `json:"onTimeRate"     example:"0.96"`
	ClaimRate      float64   `json:"claimRate"      example:"0.005"`
	Rating         float64   `json:"rating"         example:"4.8"`
	Status         string    `json:"status"         example:"Active"`
	CreatedAt      time.Time `json:"createdAt"`
} // @name CarrierResponse

// CarrierRequest is the request body for POST /carriers and PUT /carriers/{id}.
type CarrierRequest struct {
	Name           string  `json:"name"           validate:"required,notblank,max=255" example:"Estes Express Lines"`
	MCNumber       string  `json:"mcNumber"       validate:"max=32"               example:"MC-345678"`
	DOTNumber      string  `json:"dotNumber"      validate:"max=32"               example:"DOT-9012345"`
	ContactName    string  `json:"contactName"    validate:"max=255"              example:"Lisa Chen"`
	ContactEmail   string  `json:"contactEmail"   validate:"omitempty,email"      example:"lisa.c@estes-express.com"`
	ContactPhone   string  `json:"contactPhone"   validate:"max=32"               example:"(866) 378-3748"`
	InsuranceLimit float64 `json:"insuranceLimit" validate:"gte=0"                example:"500000"`
	ServiceLevel   string  `json:"serviceLevel"   validate:"max=64"               example:"Standard"`
	Modes          string  `json:"modes"          validate:"max=255"              example:"LTL"`
	Status         string  `json:"status"         validate:"omitempty,oneof=Active Pending Inactive" example:"Active"`
} // @name CarrierRequest

func (r *CarrierRequest) profile() models.CarrierProfile {
	return models.CarrierProfile{
		Name:           r.Name,
		MCNumber:       r.MCNumber,
		DOTNumber:      r.DOTNumber,
		ContactName:    r.ContactName,
		ContactEmail:   r.ContactEmail,
		ContactPhone:   r.ContactPhone,
		InsuranceLimit: r.InsuranceLimit,
		ServiceLevel:   r.ServiceLevel,
		Modes:          r.Modes,
		Status:         r.Status,
	}
}

// MessageResponse acknowledges an action that returns no resource.
type MessageResponse struct {
	Message string `json:"message" example:"Carriers seeded."`
} // @name CarrierMessageResponse

func toCarrierResponse(c *models.Carrier) CarrierResponse {
	return CarrierResponse{
		ID:             c.ID,
		Name:           c.Name,
		MCNumber:       c.MCNumber,
		DOTNumber:      c.DOTNumber,
		ContactName:    c.ContactName,
		ContactEmail:   c.ContactEmail,
		ContactPhone:   c.ContactPhone,
		InsuranceLimit: c.InsuranceLimit,
		ServiceLevel:   c.ServiceLevel,
		Modes:          c.Modes,
		OnTimeRate:     c.OnTimeRate,
		ClaimRate:      c.ClaimRate,
		Rating:         c.Rating,
		Status:         string(c.Status),
		CreatedAt:      c.CreatedAt,
	}
}
