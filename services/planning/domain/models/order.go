package models

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// OrderStatus is the planning state of a customer order.
type OrderStatus string

const (
	OrderStatusUnplanned OrderStatus = "Unplanned"
	OrderStatusPlanned   OrderStatus = "Planned"
)

// ParseOrderStatus validates s as an OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderStatusUnplanned, OrderStatusPlanned:
		return OrderStatus(s), nil
	default:
		return "", fmt.Errorf("unknown order status %q", s)
	}
}

// Order is a customer's freight request awaiting consolidation into a shipment.
// It moves one way, Unplanned to Planned, and only through consolidation.
type Order struct {
	ID           int64
	CustomerName string
	PONumber     string
	Origin       string
	Destination  string
	Weight       float64 // lbs
	Dimensions   string
	Status       OrderStatus
	ShipmentID   *int64 // set once planned
	CreatedAt    time.Time
}

// NewOrder constructs an Unplanned order. The ID is assigned by the store.
func NewOrder(customerName, poNumber, origin, destination string, weight float64, dimensions string) (*Order, error) {
	customerName = strings.TrimSpace(customerName)
	poNumber = strings.TrimSpace(poNumber)
	origin = strings.TrimSpace(origin)
	destination = strings.TrimSpace(destination)

	switch {
	case customerName == "":
		return nil, fmt.Errorf("customer name is required")
	case poNumber == "":
		return nil, fmt.Errorf("po number is required")
	case origin == "" || destination == "":
		return nil, fmt.Errorf("origin and destination are required")
	case math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0:
		return nil, fmt.Errorf("weight must be a positive number of lbs")
	}

	return &Order{
		CustomerName: customerName,
		PONumber:     poNumber,
		Origin:       origin,
		Destination:  destination,
		Weight:       weight,
		Dimensions:   strings.TrimSpace(dimensions),
		Status:       OrderStatusUnplanned,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// IsPlanned reports whether the order has already been consolidated.
func (o *Order) IsPlanned() bool {
	return o.Status == OrderStatusPlanned
}
