package manufacturer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ariefcatur/go-supplychain/internal/httpx"
)

type Handler struct{ Service *Service }

func (h *Handler) Register(r *chi.Mux) {
	r.Post("/orders", h.receiveOrder)
	r.Get("/orders/new", h.listNew)
	r.Get("/orders/in-production", h.listInProduction)
	r.Get("/orders/completed", h.listCompleted)
	r.Post("/products", h.createProduct)
	r.Post("/orders/complete-production", h.completeProduction)
}

func (h *Handler) receiveOrder(w http.ResponseWriter, r *http.Request) {
	var in ReceiveOrderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	if in.SupplierOrderID == "" || in.RetailerEmail == "" || in.ProductName == "" || in.Quantity <= 0 {
		httpx.WriteMessage(w, http.StatusBadRequest, "missing required fields")
		return
	}
	o, err := h.Service.Receive(r.Context(), in)
	if err != nil {
		httpx.WriteMessage(w, http.StatusInternalServerError, "error receiving order")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "Order received from supplier",
		"order":   o,
	})
}

func (h *Handler) listNew(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.Service.NewOrders)
}

func (h *Handler) listInProduction(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.Service.OrdersInProduction)
}

func (h *Handler) listCompleted(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.Service.CompletedOrders)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, fetch func(ctx context.Context) ([]Order, error)) {
	orders, err := fetch(r.Context())
	if err != nil {
		httpx.WriteMessage(w, http.StatusInternalServerError, "error fetching orders")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var in CreateProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	if in.OrderID == "" || in.ProductID == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "missing required fields")
		return
	}

	o, err := h.Service.CreateProduct(r.Context(), in)
	switch {
	case errors.Is(err, ErrOrderNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, ErrInvalidTransition):
		httpx.WriteMessage(w, http.StatusBadRequest, err.Error())
	case err != nil:
		httpx.WriteMessage(w, http.StatusInternalServerError, "error creating product")
	default:
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "Product created successfully",
			"order":   o,
		})
	}
}

func (h *Handler) completeProduction(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID string `json:"orderId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.OrderID == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "missing required fields")
		return
	}

	o, err := h.Service.CompleteProduction(r.Context(), req.OrderID)
	switch {
	case errors.Is(err, ErrOrderNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, ErrInvalidTransition):
		httpx.WriteMessage(w, http.StatusBadRequest, err.Error())
	case err != nil:
		httpx.WriteMessage(w, http.StatusInternalServerError, "error completing production")
	default:
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "Production completed successfully",
			"order":   o,
		})
	}
}
