package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/retailstack/backend/internal/core/serviceerrors"
)

type errorResponse struct {
	Error string `json:"error"`
}

// Client is the shared transport for service-to-service calls. Every
// request carries the caller's context and the configured timeout, so a
// slow peer can never stall an order placement indefinitely.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport failures leave the remote outcome unknown.
		return serviceerrors.NewUnavailableError(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return parseStatus(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return err
		}
	}

	return nil
}

func parseStatus(resp *http.Response) error {
	message := fmt.Sprintf("unexpected status %d", resp.StatusCode)

	var body errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		message = body.Error
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return serviceerrors.NewNotFoundError(message)
	case http.StatusConflict:
		return serviceerrors.NewConflictError(message)
	case http.StatusUnprocessableEntity:
		return serviceerrors.NewInsufficientStockError(message)
	case http.StatusBadRequest:
		return serviceerrors.NewInvalidRequestError(message)
	default:
		return serviceerrors.NewUnavailableError(message)
	}
}
