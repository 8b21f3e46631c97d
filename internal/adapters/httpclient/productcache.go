package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/retailstack/backend/internal/core/domain"
	"github.com/retailstack/backend/internal/core/port"
)

type setStockPayload struct {
	Quantity int `json:"quantity"`
}

type reduceStockPayload struct {
	Amount int `json:"amount"`
}

// ProductCacheClient pushes quantity updates to the product catalog's
// cached copy. It implements the advisory contract at the type level:
// both pushes return an outcome, never an error, so callers cannot
// accidentally fail a ledger write on a cache miss.
type ProductCacheClient struct {
	client *Client
}

func NewProductCacheClient(baseURL string, timeout time.Duration) port.CacheSyncPort {
	return &ProductCacheClient{client: NewClient(baseURL, timeout)}
}

func (c *ProductCacheClient) PushSet(ctx context.Context, productID domain.ProductID, quantity int) domain.SyncOutcome {
	path := fmt.Sprintf("/api/v1/products/%d/stock", productID)
	if err := c.client.doJSON(ctx, http.MethodPut, path, setStockPayload{Quantity: quantity}, nil); err != nil {
		return domain.SyncFailed(err)
	}
	return domain.SyncSucceeded()
}

func (c *ProductCacheClient) PushReduce(ctx context.Context, productID domain.ProductID, amount int) domain.SyncOutcome {
	path := fmt.Sprintf("/api/v1/products/%d/stock/reduce", productID)
	if err := c.client.doJSON(ctx, http.MethodPut, path, reduceStockPayload{Amount: amount}, nil); err != nil {
		return domain.SyncFailed(err)
	}
	return domain.SyncSucceeded()
}
