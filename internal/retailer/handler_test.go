package retailer

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariefcatur/go-supplychain/internal/httpx"
	"github.com/ariefcatur/go-supplychain/internal/status"
)

func jsonDecode(r *http.Request, v any) error { return json.NewDecoder(r.Body).Decode(v) }

func newTestRouter(store Store) http.Handler {
	r := httpx.NewRouter()
	h := &Handler{Service: newTestService(store, "http://localhost:0")}
	h.Register(r)
	return r
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestPlaceOrderEndpoint(t *testing.T) {
	h := newTestRouter(newMemStore())

	w := doJSON(t, h, http.MethodPost, "/orders", map[string]any{
		"retailerEmail": "a@x.com", "productName": "Chair", "productMaterial": "Wood", "quantity": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message string `json:"message"`
		Order   Order  `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Order placed successfully", resp.Message)
	assert.Equal(t, status.Pending, resp.Order.Status)
	assert.False(t, resp.Order.ID.IsZero())
}

func TestPlaceOrderEndpointRejectsMissingFields(t *testing.T) {
	h := newTestRouter(newMemStore())
	w := doJSON(t, h, http.MethodPost, "/orders", map[string]any{"retailerEmail": "a@x.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatusEndpoint(t *testing.T) {
	store := newMemStore()
	o := &Order{RetailerEmail: "a@x.com", ProductName: "Chair", ProductMaterial: "Wood", Quantity: 5, Status: status.Pending}
	require.NoError(t, store.Insert(context.Background(), o))
	h := newTestRouter(store)

	w := doJSON(t, h, http.MethodPatch, "/orders/status", map[string]any{
		"orderId": o.ID.Hex(), "status": "Accepted",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, h, http.MethodPatch, "/orders/status", map[string]any{
		"orderId": "missing", "status": "Accepted",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListOrdersEndpoint(t *testing.T) {
	store := newMemStore()
	require.NoError(t, store.Insert(context.Background(), &Order{RetailerEmail: "a@x.com", ProductName: "Chair", ProductMaterial: "Wood", Quantity: 1, Status: status.Pending}))
	require.NoError(t, store.Insert(context.Background(), &Order{RetailerEmail: "b@x.com", ProductName: "Desk", ProductMaterial: "Metal", Quantity: 2, Status: status.Pending}))
	h := newTestRouter(store)

	w := doJSON(t, h, http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Orders []Order `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Orders, 2)

	w = doJSON(t, h, http.MethodGet, "/orders/a@x.com", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Orders, 1)
	assert.Equal(t, "a@x.com", resp.Orders[0].RetailerEmail)
}
