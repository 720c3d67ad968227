package services

import (
	"math"
	"testing"
)

func TestDensityClass(t *testing.T) {
	// 1 cubic foot handling unit, so weight == density in pcf.
	const edge = 12.0

	tests := []struct {
		name   string
		weight float64
		want   string
	}{
		{"under 1 pcf", 0.5, "500"},
		{"exactly 1 pcf", 1, "400"},
		{"2 pcf", 2, "300"},
		{"3.9 pcf", 3.9, "250"},
		{"4 pcf", 4, "200"},
		{"5 pcf", 5, "175"},
		{"6 pcf", 6, "150"},
		{"7 pcf", 7, "125"},
		{"8 pcf", 8, "110"},
		{"9 pcf", 9, "100"},
		{"10.5 pcf", 10.5, "92.5"},
		{"12 pcf", 12, "85"},
		{"13.5 pcf", 13.5, "77.5"},
		{"15 pcf", 15, "70"},
		{"22.5 pcf", 22.5, "65"},
		{"30 pcf", 30, "60"},
		{"35 pcf", 35, "55"},
		{"49.9 pcf", 49.9, "55"},
		{"50 pcf", 50, "50"},
		{"dense", 400, "50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DensityClass(tt.weight, edge, edge, edge); got != tt.want {
				t.Errorf("DensityClass(%v) = %q, want %q", tt.weight, got, tt.want)
			}
		})
	}
}

func TestDensityClass_InvalidInput(t *testing.T) {
	tests := []struct {
		name            string
		weight, l, w, h float64
	}{
		{"zero weight", 0, 48, 40, 48},
		{"negative weight", -10, 48, 40, 48},
		{"zero length", 100, 0, 40, 48},
		{"negative height", 100, 48, 40, -1},
		{"NaN width", 100, 48, math.NaN(), 48},
		{"infinite weight", math.Inf(1), 48, 40, 48},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DensityClass(tt.weight, tt.l, tt.w, tt.h); got != "50" {
				t.Errorf("expected default class 50, got %q", got)
			}
		})
	}
}

func TestParseDimensions(t *testing.T) {
	tests := []struct {
		in      string
		l, w, h float64
		ok      bool
	}{
		{"48x40x48", 48, 40, 48, true},
		{"96 X 48 X 60", 96, 48, 60, true},
		{"40*32*28", 40, 32, 28, true},
		{"48.5x40x12.25", 48.5, 40, 12.25, true},
		{"48x40", 0, 0, 0, false},
		{"2 Orders Consolidated", 0, 0, 0, false},
		{"48x0x48", 0, 0, 0, false},
		{"", 0, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			l, w, h, ok := ParseDimensions(tt.in)
			if ok != tt.ok || l != tt.l || w != tt.w || h != tt.h {
				t.Errorf("ParseDimensions(%q) = (%v, %v, %v, %v), want (%v, %v, %v, %v)",
					tt.in, l, w, h, ok, tt.l, tt.w, tt.h, tt.ok)
			}
		})
	}
}

func TestClassifyFreight(t *testing.T) {
	// 1850 lbs on a 48x40x48 pallet is 53.3 cu ft, about 34.7 pcf.
	class, ok := ClassifyFreight(1850, "48x40x48")
	if !ok || class != "60" {
		t.Fatalf("ClassifyFreight = (%q, %v), want (60, true)", class, ok)
	}

	if _, ok := ClassifyFreight(1850, "pallet"); ok {
		t.Fatal("expected ok=false for unparseable dimensions")
	}
}

func TestIsFreightClass(t *testing.T) {
	if len(FreightClasses) != 18 {
		t.Fatalf("expected 18 classes, got %d", len(FreightClasses))
	}
	if !IsFreightClass("77.5") || IsFreightClass("75") {
		t.Fatal("IsFreightClass mismatch")
	}
}
