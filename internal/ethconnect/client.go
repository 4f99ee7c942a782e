// Package ethconnect is a REST client for an ethconnect-style blockchain
// gateway: it submits contract transactions, runs queries and manages the
// event streams and subscriptions events are delivered through.
package ethconnect

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Mohsinsiddi/w3tokens/internal/config"
	"github.com/Mohsinsiddi/w3tokens/internal/contract"
	klog "github.com/Mohsinsiddi/w3tokens/internal/log"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrNotFound is wrapped by GatewayError for 404 responses.
var ErrNotFound = errors.New("not found")

// GatewayError is a non-2xx response from the gateway.
type GatewayError struct {
	Status  int
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway returned %d: %s", e.Status, e.Message)
}

// Unwrap lets errors.Is(err, ErrNotFound) match 404s.
func (e *GatewayError) Unwrap() error {
	if e.Status == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}

// Client talks to the gateway's REST API.
type Client struct {
	baseURL  string
	username string
	password string
	client   *http.Client
	logger   zerolog.Logger
}

// NewClient creates a gateway client from config.
func NewClient(cfg config.Gateway) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(cfg.URL, "/"),
		username: cfg.Username,
		password: cfg.Password,
		client:   &http.Client{Timeout: config.GatewayRequestTimeout},
		logger:   klog.WithComponent("ethconnect"),
	}
}

// SendTransaction submits a contract call for asynchronous mining. id is
// echoed back on the receipt; a new one is generated when empty.
func (c *Client) SendTransaction(ctx context.Context, from, to string, method contract.ABIEntry, params []any, id string) (*AsyncResponse, error) {
	if id == "" {
		id = uuid.NewString()
	}
	body := transactionRequest{
		Headers: requestHeaders{Type: MsgSendTransaction, ID: id},
		From:    from,
		To:      to,
		Method:  method,
		Params:  params,
	}
	var out AsyncResponse
	if err := c.do(ctx, http.MethodPost, "/", body, &out); err != nil {
		return nil, fmt.Errorf("sending %s to %s: %w", method.Name, to, err)
	}
	c.logger.Debug().Str("id", out.ID).Str("method", method.Name).Str("to", to).Msg("transaction submitted")
	return &out, nil
}

// Query runs a read-only contract call and returns the raw output.
func (c *Client) Query(ctx context.Context, to string, method contract.ABIEntry, params []any) (*QueryResponse, error) {
	body := transactionRequest{
		Headers: requestHeaders{Type: MsgQuery},
		To:      to,
		Method:  method,
		Params:  params,
	}
	var out QueryResponse
	if err := c.do(ctx, http.MethodPost, "/", body, &out); err != nil {
		return nil, fmt.Errorf("querying %s on %s: %w", method.Name, to, err)
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.username != "" || c.password != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &GatewayError{Status: resp.StatusCode, Message: errorMessage(data)}
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}

// errorMessage pulls the "error" field out of a gateway error body, falling
// back to the raw text.
func errorMessage(data []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(data, &e) == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(data))
}
