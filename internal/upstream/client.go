package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the remote Orderly analytics API. The zero-value transport
// carries no timeout: a hung upstream hangs the corresponding call, and the
// service layer's fallbacks only engage on actual failures.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client for the analytics API at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// Predict submits an order profile to POST /predict.
func (c *Client) Predict(ctx context.Context, req PredictRequest) (*Prediction, error) {
	var out Prediction
	if err := c.postJSON(ctx, "/predict", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Analyze fetches the aggregate dashboard document from GET /analyze.
func (c *Client) Analyze(ctx context.Context) (*Analytics, error) {
	var out Analytics
	if err := c.getJSON(ctx, "/analyze", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FeatureImportance fetches the model's feature weights. The remote endpoint
// returns a bare JSON array sorted by importance.
func (c *Client) FeatureImportance(ctx context.Context) ([]FeatureWeight, error) {
	var out []FeatureWeight
	if err := c.getJSON(ctx, "/feature-importance", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Recommendations submits a customer payload to POST /recommendations.
func (c *Client) Recommendations(ctx context.Context, customer Customer) (*Recommendations, error) {
	var out Recommendations
	if err := c.postJSON(ctx, "/recommendations", customer, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type menuResponse struct {
	Menu []Dish `json:"menu"`
}

// Menu fetches a restaurant's menu from GET /menu/{vendorID}/{city}. On any
// failure it substitutes the fixed fallback menu for the vendor, so a menu
// view always has something to show.
func (c *Client) Menu(ctx context.Context, vendorID int, city string) ([]Dish, error) {
	if city == "" {
		city = DefaultMenuCity
	}

	var out menuResponse
	path := fmt.Sprintf("/menu/%d/%s", vendorID, url.PathEscape(city))
	if err := c.getJSON(ctx, path, &out); err != nil {
		log.Printf("[upstream] menu request for vendor %d failed, serving fallback: %v", vendorID, err)
		return FallbackMenu(vendorID), nil
	}
	return out.Menu, nil
}

// PlaceOrder acknowledges an order locally. The remote API has no order
// endpoint yet; this stands in for the external order collaborator and always
// succeeds with a timestamp-derived id.
func (c *Client) PlaceOrder(ctx context.Context, order Order) (*OrderReceipt, error) {
	return &OrderReceipt{
		Success: true,
		OrderID: fmt.Sprintf("ORD%d", time.Now().UnixMilli()),
		Message: "Order placed successfully!",
	}, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.doJSON(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doJSON(req, out)
}

func (c *Client) doJSON(req *http.Request, out interface{}) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	// Non-2xx is treated the same as a transport failure.
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
