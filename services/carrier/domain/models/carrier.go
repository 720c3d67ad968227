package models

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// CarrierStatus is the onboarding state of a carrier.
type CarrierStatus string

const (
	CarrierStatusActive   CarrierStatus = "Active"
	CarrierStatusPending  CarrierStatus = "Pending"
	CarrierStatusInactive CarrierStatus = "Inactive"
)

// Defaults applied to carriers created without explicit values.
const (
	DefaultInsuranceLimit = 100000
	DefaultServiceLevel   = "Standard"
	DefaultOnTimeRate     = 0.95
	DefaultClaimRate      = 0.01
	DefaultRating         = 4.0
)

// ParseCarrierStatus validates s as a CarrierStatus. An empty string is Active.
func ParseCarrierStatus(s string) (CarrierStatus, error) {
	switch st := CarrierStatus(strings.TrimSpace(s)); st {
	case "":
		return CarrierStatusActive, nil
	case CarrierStatusActive, CarrierStatusPending, CarrierStatusInactive:
		return st, nil
	default:
		return "", fmt.Errorf("unknown carrier status %q", s)
	}
}

// Carrier is a motor carrier the brokerage tenders freight to. OnTimeRate,
// ClaimRate and Rating are performance figures maintained outside the API.
type Carrier struct {
	ID             int64
	Name           string
	MCNumber       string
	DOTNumber      string
	ContactName    string
	ContactEmail   string
	ContactPhone   string
	InsuranceLimit float64
	ServiceLevel   string
	Modes          string // comma-separated, e.g. "LTL,FTL"
	OnTimeRate     float64
	ClaimRate      float64
	Rating         float64
	Status         CarrierStatus
	CreatedAt      time.Time
}

// CarrierProfile holds the editable fields of a carrier.
type CarrierProfile struct {
	Name           string
	MCNumber       string
	DOTNumber      string
	ContactName    string
	ContactEmail   string
	ContactPhone   string
	InsuranceLimit float64 // 0 means DefaultInsuranceLimit
	ServiceLevel   string
	Modes          string
	Status         string
}

// NewCarrier constructs a carrier from p with default performance figures.
func NewCarrier(p CarrierProfile) (*Carrier, error) {
	c := &Carrier{
		OnTimeRate: DefaultOnTimeRate,
		ClaimRate:  DefaultClaimRate,
		Rating:     DefaultRating,
		CreatedAt:  time.Now().UTC(),
	}
	if err := c.Apply(p); err != nil {
		return nil, err
	}
	return c, nil
}

// Apply validates p and overwrites the editable fields of c.
func (c *Carrier) Apply(p CarrierProfile) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if math.IsNaN(p.InsuranceLimit) || math.IsInf(p.InsuranceLimit, 0) || p.InsuranceLimit < 0 {
		return fmt.Errorf("insurance limit must be a non-negative amount")
	}
	status, err := ParseCarrierStatus(p.Status)
	if err != nil {
		return err
	}

	insurance := p.InsuranceLimit
	if insurance == 0 {
		insurance = DefaultInsuranceLimit
	}
	level := strings.TrimSpace(p.ServiceLevel)
	if level == "" {
		level = DefaultServiceLevel
	}

	c.Name = name
	c.MCNumber = strings.TrimSpace(p.MCNumber)
	c.DOTNumber = strings.TrimSpace(p.DOTNumber)
	c.ContactName = strings.TrimSpace(p.ContactName)
	c.ContactEmail = strings.TrimSpace(p.ContactEmail)
	c.ContactPhone = strings.TrimSpace(p.ContactPhone)
	c.InsuranceLimit = insurance
	c.ServiceLevel = level
	c.Modes = normalizeModes(p.Modes)
	c.Status = status
	return nil
}

// normalizeModes trims each comma-separated mode and drops empty entries.
func normalizeModes(s string) string {
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ",")
}

// Quote is an indicative rate offered by a carrier service.
type Quote struct {
	Carrier     string
	Service     string
	Rate        float64 // USD
	TransitDays int
	Score       int // 0-100, higher is better
}
