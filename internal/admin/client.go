package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// Order is the slice of a retailer order the dashboards need.
type Order struct {
	Status          string    `json:"status"`
	ProductMaterial string    `json:"productMaterial"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Material mirrors the supplier's inventory rows.
type Material struct {
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

// Client reads from the retailer and supplier services over HTTP.
type Client struct {
	HTTP        *http.Client
	RetailerURL string
	SupplierURL string
}

func NewClient(retailerURL, supplierURL string) *Client {
	return &Client{
		HTTP:        &http.Client{Timeout: 5 * time.Second},
		RetailerURL: retailerURL,
		SupplierURL: supplierURL,
	}
}

func (c *Client) Orders(ctx context.Context) ([]Order, error) {
	var out struct {
		Orders []Order `json:"orders"`
	}
	if err := c.getJSON(ctx, c.RetailerURL+"/orders", &out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

func (c *Client) Materials(ctx context.Context) ([]Material, error) {
	var out struct {
		Materials []Material `json:"materials"`
	}
	if err := c.getJSON(ctx, c.SupplierURL+"/materials", &out); err != nil {
		return nil, err
	}
	return out.Materials, nil
}

// Snapshot fetches orders and materials concurrently.
func (c *Client) Snapshot(ctx context.Context) ([]Order, []Material, error) {
	var (
		orders    []Order
		materials []Material
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = c.Orders(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		materials, err = c.Materials(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return orders, materials, nil
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
