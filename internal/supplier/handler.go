package supplier

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ariefcatur/go-supplychain/internal/httpx"
)

type Handler struct{ Service *Service }

func (h *Handler) Register(r *chi.Mux) {
	r.Post("/orders", h.receiveOrder)
	r.Get("/orders", h.listOrders)
	r.Get("/orders/in-production", h.listInProduction)
	r.Patch("/orders/status", h.updateStatus)
	r.Patch("/orders/forward", h.forward)
	r.Get("/materials", h.listMaterials)
	r.Patch("/materials/stock", h.updateStock)
}

func (h *Handler) receiveOrder(w http.ResponseWriter, r *http.Request) {
	var in ReceiveOrderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	if in.OrderID == "" || in.RetailerEmail == "" || in.ProductName == "" || in.ProductMaterial == "" || in.Quantity <= 0 {
		httpx.WriteMessage(w, http.StatusBadRequest, "missing required fields")
		return
	}
	o, err := h.Service.Receive(r.Context(), in)
	if err != nil {
		httpx.WriteMessage(w, http.StatusInternalServerError, "error receiving order")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "Order received from retailer",
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

func (h *Handler) listInProduction(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Service.OrdersInProduction(r.Context())
	if err != nil {
		httpx.WriteMessage(w, http.StatusInternalServerError, "error fetching orders")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var in UpdateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	if in.OrderID == "" || in.Status == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "missing required fields")
		return
	}

	o, err := h.Service.UpdateOrderStatus(r.Context(), in)
	var stockErr *InsufficientStockError
	switch {
	case errors.Is(err, ErrOrderNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, ErrMaterialNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Material not found")
	case errors.As(err, &stockErr):
		httpx.WriteMessage(w, http.StatusBadRequest, stockErr.Error())
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

func (h *Handler) forward(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID        string `json:"orderId"`
		ManufacturerID string `json:"manufacturerId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.OrderID == "" || req.ManufacturerID == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "missing required fields")
		return
	}

	o, err := h.Service.ForwardToManufacturer(r.Context(), req.OrderID, req.ManufacturerID)
	switch {
	case errors.Is(err, ErrOrderNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, ErrInvalidTransition):
		httpx.WriteMessage(w, http.StatusBadRequest, err.Error())
	case err != nil:
		httpx.WriteMessage(w, http.StatusInternalServerError, "error forwarding order")
	default:
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "Order forwarded to manufacturer",
			"order":   o,
		})
	}
}

func (h *Handler) listMaterials(w http.ResponseWriter, r *http.Request) {
	materials, err := h.Service.Materials(r.Context())
	if err != nil {
		httpx.WriteMessage(w, http.StatusInternalServerError, "error fetching material inventory")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"materials": materials})
}

func (h *Handler) updateStock(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Stock *int   `json:"stock"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Name == "" || req.Stock == nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "missing required fields")
		return
	}
	if *req.Stock < 0 {
		httpx.WriteMessage(w, http.StatusBadRequest, "stock cannot be negative")
		return
	}

	m, err := h.Service.SetStock(r.Context(), req.Name, *req.Stock)
	switch {
	case errors.Is(err, ErrMaterialNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Material not found")
	case err != nil:
		httpx.WriteMessage(w, http.StatusInternalServerError, "error updating material stock")
	default:
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"message":  "Material stock updated successfully",
			"material": m,
		})
	}
}
