package services

import (
	"sort"

	"github.com/ghuser/thoron/services/carrier/domain/models"
)

// IndicativeQuotes returns the fixed quote sheet offered to the dashboard,
// best score first. Every request receives the same offers.
func IndicativeQuotes() []models.Quote {
	quotes := []models.Quote{
		{Carrier: "FedEx Freight", Service: "Priority", Rate: 450.00, TransitDays: 2, Score: 95},
		{Carrier: "XPO Logistics", Service: "Standard", Rate: 320.00, TransitDays: 4, Score: 88},
		{Carrier: "Old Dominion", Service: "Guaranteed", Rate: 510.00, TransitDays: 2, Score: 98},
	}
	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].Score > quotes[j].Score
	})
	return quotes
}
