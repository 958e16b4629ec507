package ledger

import (
	"context"
	"fmt"
	"net/http"

	"resty.dev/v3"

	"github.com/neofinance/expense-tracker/internal/transaction"
)

// apiError is the error body shape returned by the server.
type apiError struct {
	Message string `json:"error"`
}

// Client is a thin REST client for the transaction service.
type Client struct {
	http *resty.Client
}

// NewClient creates a Client talking to the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		http: resty.New().SetBaseURL(baseURL),
	}
}

// Close releases the underlying HTTP client resources.
func (c *Client) Close() error {
	return c.http.Close()
}

// List fetches every transaction currently stored on the server.
func (c *Client) List(ctx context.Context) ([]transaction.Record, error) {
	var records []transaction.Record
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&records).
		SetError(&apiError{}).
		Get("/transactions")
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, remoteErr("list transactions", resp)
	}
	return records, nil
}

// Create submits a new transaction and returns the server's canonical record,
// including the server-assigned identifier.
func (c *Client) Create(ctx context.Context, in transaction.CreateInput) (*transaction.Record, error) {
	var record transaction.Record
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(in).
		SetResult(&record).
		SetError(&apiError{}).
		Post("/transactions")
	if err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	if resp.StatusCode() != http.StatusCreated {
		return nil, remoteErr("create transaction", resp)
	}
	return &record, nil
}

// Delete removes the transaction with the given identifier on the server.
func (c *Client) Delete(ctx context.Context, id string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetError(&apiError{}).
		Delete("/transactions/" + id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if resp.StatusCode() != http.StatusNoContent {
		return remoteErr("delete transaction", resp)
	}
	return nil
}

// remoteErr turns a non-success response into an error carrying the server's
// reason.
func remoteErr(op string, resp *resty.Response) error {
	if apiErr, ok := resp.Error().(*apiError); ok && apiErr.Message != "" {
		return fmt.Errorf("%s: server returned %d: %s", op, resp.StatusCode(), apiErr.Message)
	}
	return fmt.Errorf("%s: server returned %d", op, resp.StatusCode())
}
