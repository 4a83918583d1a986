package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client calls a remote delivery-check endpoint, for deployments where
// eligibility is answered by a separate instance. The address widget
// awaits the result and only replaces stored state on success; on error
// the previous address stays untouched.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Check(ctx context.Context, req CheckRequest) (CheckResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return CheckResult{}, fmt.Errorf("encoding delivery check request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/delivery/check", bytes.NewReader(body))
	if err != nil {
		return CheckResult{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return CheckResult{}, fmt.Errorf("delivery check request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return CheckResult{}, fmt.Errorf("delivery check failed: %s", apiErr.Error)
		}
		return CheckResult{}, fmt.Errorf("delivery check failed with status %d", resp.StatusCode)
	}

	var result CheckResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return CheckResult{}, fmt.Errorf("decoding delivery check response: %w", err)
	}
	return result, nil
}
