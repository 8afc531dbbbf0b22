package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/ariefcatur/go-supplychain/internal/events"
	"github.com/ariefcatur/go-supplychain/internal/httpx"
	"github.com/ariefcatur/go-supplychain/internal/redisx"
)

// ActivityStore serves the recent-events feed. The audit consumer provides
// the Mongo-backed implementation.
type ActivityStore interface {
	Recent(ctx context.Context, limit int) ([]events.Envelope, error)
}

type Handler struct {
	Client   *Client
	Redis    *redis.Client // nil disables caching
	Activity ActivityStore // nil disables the activity feed
}

func (h *Handler) Register(r *chi.Mux) {
	r.Get("/stats/system", h.systemStats)
	r.Get("/stats/orders", h.orderStats)
	r.Get("/stats/inventory", h.inventoryStats)
	r.Get("/stats/users", h.userStats)
	r.Get("/stats/activity", h.activity)
}

func (h *Handler) systemStats(w http.ResponseWriter, r *http.Request) {
	h.cached(w, r, "system", func(ctx context.Context) (any, error) {
		orders, materials, err := h.Client.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"orderStats":    CountOrders(orders),
			"materialStats": ClassifyMaterials(materials),
			"orderHistory":  OrderHistory(orders),
		}, nil
	})
}

func (h *Handler) orderStats(w http.ResponseWriter, r *http.Request) {
	h.cached(w, r, "orders", func(ctx context.Context) (any, error) {
		orders, err := h.Client.Orders(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"processingTimes":      DefaultProcessingStages(),
			"materialDistribution": MaterialDistribution(orders),
			"completionRate":       Completion(orders),
		}, nil
	})
}

func (h *Handler) inventoryStats(w http.ResponseWriter, r *http.Request) {
	h.cached(w, r, "inventory", func(ctx context.Context) (any, error) {
		materials, err := h.Client.Materials(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"materials":     materials,
			"materialUsage": SimulateUsage(materials),
		}, nil
	})
}

func (h *Handler) userStats(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, DefaultUserStats())
}

func (h *Handler) activity(w http.ResponseWriter, r *http.Request) {
	if h.Activity == nil {
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"events": []events.Envelope{}})
		return
	}
	evs, err := h.Activity.Recent(r.Context(), 50)
	if err != nil {
		httpx.WriteMessage(w, http.StatusInternalServerError, "error fetching activity")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"events": evs})
}

// cached serves the snapshot from Redis when a fresh one exists, otherwise
// computes it and parks it for the next caller. Redis failures fall through
// to a live computation.
func (h *Handler) cached(w http.ResponseWriter, r *http.Request, name string, compute func(ctx context.Context) (any, error)) {
	ctx := r.Context()
	key := fmt.Sprintf(redisx.KeyStats, name)

	if h.Redis != nil {
		if raw, err := h.Redis.Get(ctx, key).Bytes(); err == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(raw)
			return
		}
	}

	v, err := compute(ctx)
	if err != nil {
		log.Printf("stats %s: %v", name, err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "error fetching statistics")
		return
	}

	if h.Redis != nil {
		if raw, err := json.Marshal(v); err == nil {
			_ = h.Redis.Set(ctx, key, raw, redisx.TTLStats).Err()
		}
	}
	httpx.WriteJSON(w, http.StatusOK, v)
}
