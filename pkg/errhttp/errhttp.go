// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/ghuser/thoron/pkg/httpx"
	carrierdomain "github.com/ghuser/thoron/services/carrier/domain"
	documentdomain "github.com/ghuser/thoron/services/document/domain"
	invoicedomain "github.com/ghuser/thoron/services/invoice/domain"
	planningdomain "github.com/ghuser/thoron/services/planning/domain"
	shipmentdomain "github.com/ghuser/thoron/services/shipment/domain"
	userdomain "github.com/ghuser/thoron/services/user/domain"
)

var hideInternal atomic.Bool

// HideInternalErrors makes WriteError replace 5xx messages with the status
// text. Enabled at startup when ENVIRONMENT=production.
func HideInternalErrors(hide bool) {
	hideInternal.Store(hide)
}

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, hideInternal.Load()))
}

func mapErrorToStatus(err error) int {
	switch {
	// planning
	case errors.Is(err, planningdomain.ErrEmptyOrderSet):
		return http.StatusBadRequest // 400
	case errors.Is(err, planningdomain.ErrInvalidLoadPlan),
		errors.Is(err, planningdomain.ErrOverweightLoad),
		errors.Is(err, planningdomain.ErrInvalidOrder):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, planningdomain.ErrOrderNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, planningdomain.ErrOrderNotUnplanned),
		errors.Is(err, planningdomain.ErrPlanningConflict):
		return http.StatusConflict // 409

	// shipments and tracking
	case errors.Is(err, shipmentdomain.ErrShipmentNotFound):
		return http.StatusNotFound
	case errors.Is(err, shipmentdomain.ErrInvalidShipment),
		errors.Is(err, shipmentdomain.ErrInvalidEvent),
		errors.Is(err, shipmentdomain.ErrUnknownCarrier):
		return http.StatusUnprocessableEntity

	// carriers
	case errors.Is(err, carrierdomain.ErrCarrierNotFound):
		return http.StatusNotFound
	case errors.Is(err, carrierdomain.ErrCarrierInUse):
		return http.StatusConflict
	case errors.Is(err, carrierdomain.ErrInvalidCarrier),
		errors.Is(err, carrierdomain.ErrInvalidQuoteRequest):
		return http.StatusUnprocessableEntity

	// documents
	case errors.Is(err, documentdomain.ErrDocumentNotFound):
		return http.StatusNotFound
	case errors.Is(err, documentdomain.ErrInvalidDocument),
		errors.Is(err, documentdomain.ErrUnknownShipment):
		return http.StatusUnprocessableEntity

	// invoices
	case errors.Is(err, invoicedomain.ErrInvoiceNotFound):
		return http.StatusNotFound
	case errors.Is(err, invoicedomain.ErrInvalidInvoiceStatus):
		return http.StatusUnprocessableEntity

	// users
	case errors.Is(err, userdomain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, userdomain.ErrInvalidRole):
		return http.StatusUnprocessableEntity

	default:
		return http.StatusInternalServerError // 500
	}
}
