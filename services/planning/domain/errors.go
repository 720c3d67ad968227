package domain

import "errors"

// Sentinel errors for the planning domain. Use errors.Is() to check these.
var (
	// ErrEmptyOrderSet indicates a load plan named no orders.
	ErrEmptyOrderSet = errors.New("order set must not be empty")

	// ErrInvalidLoadPlan indicates a load plan field violates domain constraints.
	ErrInvalidLoadPlan = errors.New("invalid load plan")

	// ErrOverweightLoad indicates the load exceeds the legal truckload weight limit.
	ErrOverweightLoad = errors.New("load exceeds maximum truckload weight")

	// ErrOrderNotFound indicates one or more referenced orders do not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderNotUnplanned indicates one or more referenced orders were already planned.
	ErrOrderNotUnplanned = errors.New("order is not unplanned")

	// ErrPlanningConflict indicates a concurrent consolidation won the race; the
	// caller may retry with a fresh order list.
	ErrPlanningConflict = errors.New("concurrent planning conflict")

	// ErrInvalidOrder indicates an order violates domain constraints.
	ErrInvalidOrder = errors.New("invalid order")
)
