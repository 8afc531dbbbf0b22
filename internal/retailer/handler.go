package retailer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ariefcatur/go-supplychain/internal/httpx"
	"github.com/ariefcatur/go-supplychain/internal/status"
)

type Handler struct{ Service *Service }

func (h *Handler) Register(r *chi.Mux) {
	r.Post("/orders", h.placeOrder)
	r.Get("/orders", h.listOrders)
	r.Get("/orders/{email}", h.listOrdersByEmail)
	r.Patch("/orders/status", h.updateStatus)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var in PlaceOrderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	if in.RetailerEmail == "" || in.ProductName == "" || in.ProductMaterial == "" || in.Quantity <= 0 {
		httpx.WriteMessage(w, http.StatusBadRequest, "missing required fields")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	o, err := h.Service.PlaceOrder(ctx, in)
	if err != nil {
		httpx.WriteMessage(w, http.StatusInternalServerError, "error placing order")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "Order placed successfully",
		"order":   o,
	})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Service.Orders(r.Context())
	if err != nil {
		httpx.WriteMessage(w, http.StatusInternalServerError, "error fetching orders")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (h *Handler) listOrdersByEmail(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Service.OrdersByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		httpx.WriteMessage(w, http.StatusInternalServerError, "error fetching orders")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID string `json:"orderId"`
		Status  string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.OrderID == "" || req.Status == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "missing required fields")
		return
	}

	o, err := h.Service.UpdateStatus(r.Context(), req.OrderID, status.Status(req.Status))
	switch {
	case errors.Is(err, ErrOrderNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, ErrUnknownStatus), errors.Is(err, ErrInvalidTransition):
		httpx.WriteMessage(w, http.StatusBadRequest, err.Error())
	case err != nil:
		httpx.WriteMessage(w, http.StatusInternalServerError, "error updating order status")
	default:
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "Order status updated successfully",
			"order":   o,
		})
	}
}
