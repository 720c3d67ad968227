package models

import (
	"math"
	"testing"
)

func TestNewCarrier_Defaults(t *testing.T) {
	c, err := NewCarrier(CarrierProfile{Name: "  Estes Express Lines ", Modes: " LTL, ,FTL "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "Estes Express Lines" {
		t.Errorf("name not trimmed: %q", c.Name)
	}
	if c.InsuranceLimit != DefaultInsuranceLimit || c.ServiceLevel != DefaultServiceLevel {
		t.Errorf("defaults not applied: %+v", c)
	}
	if c.OnTimeRate != DefaultOnTimeRate || c.ClaimRate != DefaultClaimRate || c.Rating != DefaultRating {
		t.Errorf("performance defaults not applied: %+v", c)
	}
	if c.Status != CarrierStatusActive {
		t.Errorf("status: got %q", c.Status)
	}
	if c.Modes != "LTL,FTL" {
		t.Errorf("modes: got %q", c.Modes)
	}
}

func TestNewCarrier_Invalid(t *testing.T) {
	tests := []struct {
		name string
		p    CarrierProfile
	}{
		{"blank name", CarrierProfile{Name: "  "}},
		{"negative insurance", CarrierProfile{Name: "X", InsuranceLimit: -1}},
		{"NaN insurance", CarrierProfile{Name: "X", InsuranceLimit: math.NaN()}},
		{"unknown status", CarrierProfile{Name: "X", Status: "Suspended"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCarrier(tt.p); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestApply_KeepsPerformanceFigures(t *testing.T) {
	c := &Carrier{ID: 3, Name: "Old Dominion Freight", Rating: 4.9, OnTimeRate: 0.99, ClaimRate: 0.003}

	if err := c.Apply(CarrierProfile{Name: "Old Dominion", Status: "Inactive", InsuranceLimit: 750000}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "Old Dominion" || c.Status != CarrierStatusInactive || c.InsuranceLimit != 750000 {
		t.Errorf("profile not applied: %+v", c)
	}
	if c.Rating != 4.9 || c.OnTimeRate != 0.99 || c.ClaimRate != 0.003 || c.ID != 3 {
		t.Errorf("performance figures changed: %+v", c)
	}
}
