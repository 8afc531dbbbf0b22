package distributor

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
	r.Post("/shipments", h.receiveShipment)
	r.Get("/shipments/pending", h.listPending)
	r.Get("/shipments/shipped", h.listShipped)
	r.Get("/shipments/in-transit", h.listShipped) // alias
	r.Get("/shipments/delivered", h.listDelivered)
	r.Post("/shipments/process", h.processShipment)
	r.Post("/shipments/deliver", h.markDelivered)
}

func (h *Handler) receiveShipment(w http.ResponseWriter, r *http.Request) {
	var in ReceiveShipmentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	if in.ManufacturerOrderID == "" || in.RetailerEmail == "" || in.ProductName == "" || in.Quantity <= 0 {
		httpx.WriteMessage(w, http.StatusBadRequest, "missing required fields")
		return
	}
	sh, err := h.Service.Receive(r.Context(), in)
	if err != nil {
		httpx.WriteMessage(w, http.StatusInternalServerError, "error receiving shipment")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"message":  "Shipment received from manufacturer",
		"shipment": sh,
	})
}

func (h *Handler) listPending(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.Service.Pending)
}

func (h *Handler) listShipped(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.Service.Shipped)
}

func (h *Handler) listDelivered(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.Service.Delivered)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, fetch func(ctx context.Context) ([]Shipment, error)) {
	shipments, err := fetch(r.Context())
	if err != nil {
		httpx.WriteMessage(w, http.StatusInternalServerError, "error fetching shipments")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"shipments": shipments})
}

func (h *Handler) processShipment(w http.ResponseWriter, r *http.Request) {
	var in ProcessShipmentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	if in.ShipmentID == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "missing required fields")
		return
	}

	sh, err := h.Service.Process(r.Context(), in)
	switch {
	case errors.Is(err, ErrShipmentNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Shipment not found")
	case errors.Is(err, ErrInvalidTransition):
		httpx.WriteMessage(w, http.StatusBadRequest, err.Error())
	case err != nil:
		httpx.WriteMessage(w, http.StatusInternalServerError, "error processing shipment")
	default:
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"message":  "Shipment processed successfully",
			"shipment": sh,
		})
	}
}

func (h *Handler) markDelivered(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ShipmentID string `json:"shipmentId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.ShipmentID == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "missing required fields")
		return
	}

	sh, err := h.Service.MarkDelivered(r.Context(), req.ShipmentID)
	switch {
	case errors.Is(err, ErrShipmentNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Shipment not found")
	case errors.Is(err, ErrInvalidTransition):
		httpx.WriteMessage(w, http.StatusBadRequest, err.Error())
	case err != nil:
		httpx.WriteMessage(w, http.StatusInternalServerError, "error marking shipment as delivered")
	default:
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"message":  "Shipment marked as delivered",
			"shipment": sh,
		})
	}
}
