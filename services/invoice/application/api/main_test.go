package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/thoron/pkg/seed"
	"github.com/ghuser/thoron/pkg/testutil"
	"github.com/ghuser/thoron/services/invoice/application/api"
	"github.com/ghuser/thoron/services/invoice/application/handlers"
)

func newRouter(t *testing.T) chi.Router {
	t.Helper()
	a := testutil.NewTestApp(t)
	require.NoError(t, seed.New(a.Db, a.Logger).Run(context.Background()))
	r := chi.NewRouter()
	api.InvoiceRoutes(r, a)
	return r
}

func do(t *testing.T, r chi.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, &buf))
	return w
}

func listInvoices(t *testing.T, r chi.Router) []handlers.InvoiceResponse {
	t.Helper()
	w := do(t, r, http.MethodGet, "/invoices", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var invoices []handlers.InvoiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &invoices))
	return invoices
}

func byNumber(invoices []handlers.InvoiceResponse, number string) *handlers.InvoiceResponse {
	for i := range invoices {
		if invoices[i].InvoiceNumber == number {
			return &invoices[i]
		}
	}
	return nil
}

func TestListInvoices_Seeded(t *testing.T) {
	r := newRouter(t)

	invoices := listInvoices(t, r)
	require.Len(t, invoices, 5)

	disputed := byNumber(invoices, "INV-2024-0042")
	require.NotNil(t, disputed)
	assert.Equal(t, "Disputed", disputed.Status)
	assert.Equal(t, "XPO Logistics", disputed.CarrierName)
	assert.Equal(t, "Atlanta, GA", disputed.Origin)
	assert.Equal(t, "Los Angeles, CA", disputed.Destination)
	require.NotNil(t, disputed.TrackingNumber)
	assert.Equal(t, "XPO-8823-2024", *disputed.TrackingNumber)
	assert.Equal(t, 230.5, disputed.Variance)
}

func TestUpdateInvoiceStatus(t *testing.T) {
	r := newRouter(t)
	inv := byNumber(listInvoices(t, r), "INV-2024-0044")
	require.NotNil(t, inv)
	path := "/invoices/" + strconv.FormatInt(inv.ID, 10) + "/status"

	w := do(t, r, http.MethodPut, path, map[string]string{"status": "Approved"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated handlers.InvoiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Approved", updated.Status)
	assert.Equal(t, "Estes Express Lines", updated.CarrierName)

	assert.Equal(t, "Approved", byNumber(listInvoices(t, r), "INV-2024-0044").Status)
}

func TestUpdateInvoiceStatus_Errors(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		name       string
		path       string
		body       any
		wantStatus int
	}{
		{"unknown status", "/invoices/1/status", map[string]string{"status": "Void"}, http.StatusUnprocessableEntity},
		{"missing status", "/invoices/1/status", map[string]string{}, http.StatusUnprocessableEntity},
		{"unknown invoice", "/invoices/999/status", map[string]string{"status": "Paid"}, http.StatusNotFound},
		{"bad id", "/invoices/x/status", map[string]string{"status": "Paid"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodPut, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}
