package services

import (
	"math"
	"strconv"
	"strings"
)

// FreightClasses lists the 18 standard NMFC classes, densest first.
var FreightClasses = []string{
	"50", "55", "60", "65", "70", "77.5", "85", "92.5", "100",
	"110", "125", "150", "175", "200", "250", "300", "400", "500",
}

const cubicInchesPerFoot = 1728

// densityBreaks maps the lower bound of each density band (pcf) to its class,
// highest band first.
var densityBreaks = []struct {
	minPCF float64
	class  string
}{
	{50, "50"},
	{35, "55"},
	{30, "60"},
	{22.5, "65"},
	{15, "70"},
	{13.5, "77.5"},
	{12, "85"},
	{10.5, "92.5"},
	{9, "100"},
	{8, "110"},
	{7, "125"},
	{6, "150"},
	{5, "175"},
	{4, "200"},
	{3, "250"},
	{2, "300"},
	{1, "400"},
}

// DensityClass returns the NMFC class for a handling unit of weight lbs and
// length, width, height inches. Invalid input yields class "50".
func DensityClass(weight, length, width, height float64) string {
	for _, v := range []float64{weight, length, width, height} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return "50"
		}
	}

	density := weight / (length * width * height / cubicInchesPerFoot)
	for _, b := range densityBreaks {
		if density >= b.minPCF {
			return b.class
		}
	}
	return "500"
}

// ParseDimensions reads an "LxWxH" string in inches. Separators may be x, X or *,
// with optional spaces.
func ParseDimensions(s string) (length, width, height float64, ok bool) {
	parts := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == 'x' || r == '*'
	})
	if len(parts) != 3 {
		return 0, 0, 0, false
	}

	var dims [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || v <= 0 {
			return 0, 0, 0, false
		}
		dims[i] = v
	}
	return dims[0], dims[1], dims[2], true
}

// ClassifyFreight derives the freight class from weight and a dimensions
// string. ok is false when dimensions cannot be parsed.
func ClassifyFreight(weight float64, dimensions string) (class string, ok bool) {
	l, w, h, ok := ParseDimensions(dimensions)
	if !ok {
		return "", false
	}
	return DensityClass(weight, l, w, h), true
}

// IsFreightClass reports whether class is one of the standard NMFC classes.
func IsFreightClass(class string) bool {
	for _, c := range FreightClasses {
		if c == class {
			return true
		}
	}
	return false
}
