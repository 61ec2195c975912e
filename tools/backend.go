package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client invokes tools over the tool server's HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the tool server at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type runToolRequest struct {
	Tool   string         `json:"tool"`
	Params map[string]any `json:"params"`
}

type runToolResponse struct {
	Tool     string          `json:"tool"`
	Response json.RawMessage `json:"response"`
}

// Invoke posts a tool call to the server's /run_tool endpoint and
// returns the tool's result as a JSON string.
func (c *Client) Invoke(ctx context.Context, name string, params map[string]any) (string, error) {
	if params == nil {
		params = map[string]any{}
	}

	body, err := json.Marshal(runToolRequest{Tool: name, Params: params})
	if err != nil {
		return "", fmt.Errorf("failed to encode tool request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/run_tool", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("tool server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("tool server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var out runToolResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to parse tool server response: %w", err)
	}

	// Tools normally answer with a JSON object. A bare string result is
	// unwrapped so the model doesn't see the surrounding quotes.
	var s string
	if json.Unmarshal(out.Response, &s) == nil {
		return s, nil
	}
	return string(out.Response), nil
}

// Ping checks the tool server is reachable by fetching its schema.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/schema", nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tool server returned %d", resp.StatusCode)
	}
	return nil
}
