package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	carrierdomain "github.com/ghuser/thoron/services/carrier/domain"
	"github.com/ghuser/thoron/services/carrier/domain/models"
	domainsvcs "github.com/ghuser/thoron/services/carrier/domain/services"
)

// QuoteRequest describes the freight being priced. Every field is optional.
type QuoteRequest struct {
	Origin       string
	Destination  string
	Weight       float64
	FreightClass string
}

// QuoteService returns indicative carrier rates.
type QuoteService struct{}

// Quotes returns the indicative quote sheet, best score first. The request is
// checked for sanity but does not change the offers.
func (QuoteService) Quotes(_ context.Context, req QuoteRequest) ([]models.Quote, error) {
	if math.IsNaN(req.Weight) || math.IsInf(req.Weight, 0) || req.Weight < 0 {
		return nil, fmt.Errorf("%w: weight must be a non-negative number", carrierdomain.ErrInvalidQuoteRequest)
	}
	o, d := strings.TrimSpace(req.Origin), strings.TrimSpace(req.Destination)
	if o != "" && strings.EqualFold(o, d) {
		return nil, fmt.Errorf("%w: origin and destination are the same", carrierdomain.ErrInvalidQuoteRequest)
	}
	return domainsvcs.IndicativeQuotes(), nil
}
