package auth

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
)

func newTestRouter() (http.Handler, *MemCodeStore) {
	svc, codes := newTestService()
	r := httpx.NewRouter()
	h := &Handler{Service: svc}
	h.Register(r)
	return r, codes
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

func TestRegisterAndLoginEndpoints(t *testing.T) {
	h, _ := newTestRouter()

	w := doJSON(t, h, http.MethodPost, "/register", map[string]any{
		"email": "r@x.com", "password": "secret123", "roles": []string{RoleRetailer},
		"storeName": "Corner Shop",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "secret123", "password must never appear in a response")

	w = doJSON(t, h, http.MethodPost, "/login", map[string]any{
		"email": "r@x.com", "password": "secret123", "role": RoleRetailer,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string `json:"message"`
		TwoFA   bool   `json:"twoFA"`
		Role    string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful", resp.Message)
	assert.False(t, resp.TwoFA)
	assert.Equal(t, RoleRetailer, resp.Role)
}

func TestLoginEndpointStatusCodes(t *testing.T) {
	h, _ := newTestRouter()

	w := doJSON(t, h, http.MethodPost, "/register", map[string]any{
		"email": "r@x.com", "password": "secret123", "roles": []string{RoleRetailer},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, h, http.MethodPost, "/login", map[string]any{
		"email": "missing@x.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, h, http.MethodPost, "/login", map[string]any{
		"email": "r@x.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, h, http.MethodPost, "/login", map[string]any{
		"email": "r@x.com", "password": "secret123", "role": RoleSupplier,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRegisterEndpointRejectsDuplicate(t *testing.T) {
	h, _ := newTestRouter()

	w := doJSON(t, h, http.MethodPost, "/register", map[string]any{
		"email": "a@x.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, h, http.MethodPost, "/register", map[string]any{
		"email": "a@x.com", "password": "other456",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTwoFALoginFlow(t *testing.T) {
	h, codes := newTestRouter()

	w := doJSON(t, h, http.MethodPost, "/register", map[string]any{
		"email": "s@x.com", "password": "secret123", "roles": []string{RoleSupplier},
		"twoFAEnabled": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, h, http.MethodPost, "/login", map[string]any{
		"email": "s@x.com", "password": "secret123", "role": RoleSupplier,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var loginResp struct {
		TwoFA bool `json:"twoFA"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResp))
	require.True(t, loginResp.TwoFA)

	code, ok, err := codes.Get(context.Background(), "s@x.com")
	require.NoError(t, err)
	require.True(t, ok)

	w = doJSON(t, h, http.MethodPost, "/otp/verify", map[string]any{
		"email": "s@x.com", "code": "000000",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, h, http.MethodPost, "/otp/verify", map[string]any{
		"email": "s@x.com", "code": code,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var verifyResp struct {
		Role string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &verifyResp))
	assert.Equal(t, RoleSupplier, verifyResp.Role)

	w = doJSON(t, h, http.MethodPost, "/otp/verify", map[string]any{
		"email": "s@x.com", "code": code,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "a verified code cannot be replayed")
}

func TestSendCodeEndpoint(t *testing.T) {
	h, codes := newTestRouter()

	w := doJSON(t, h, http.MethodPost, "/otp/send", map[string]any{"email": "nobody@x.com"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, h, http.MethodPost, "/register", map[string]any{
		"email": "a@x.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, h, http.MethodPost, "/otp/send", map[string]any{"email": "a@x.com"})
	require.Equal(t, http.StatusOK, w.Code)

	_, ok, err := codes.Get(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.True(t, ok)
}
