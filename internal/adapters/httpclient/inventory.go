package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/retailstack/backend/internal/core/domain"
	"github.com/retailstack/backend/internal/core/dto"
	"github.com/retailstack/backend/internal/core/port"
)

// InventoryClient talks to the inventory service's stock endpoints.
// Errors are mapped back to the same kinds the inventory service raised
// them with, so a 422 here is an insufficient-stock refusal there.
type InventoryClient struct {
	client *Client
}

func NewInventoryClient(baseURL string, timeout time.Duration) port.InventoryGatewayPort {
	return &InventoryClient{client: NewClient(baseURL, timeout)}
}

func (c *InventoryClient) ReduceStock(ctx context.Context, productID domain.ProductID, amount int) error {
	path := fmt.Sprintf("/api/v1/stock/%d/reduce", productID)
	return c.client.doJSON(ctx, http.MethodPost, path, dto.AdjustStockRequest{Amount: amount}, nil)
}

func (c *InventoryClient) RestoreStock(ctx context.Context, productID domain.ProductID, amount int) error {
	path := fmt.Sprintf("/api/v1/stock/%d/restore", productID)
	return c.client.doJSON(ctx, http.MethodPost, path, dto.AdjustStockRequest{Amount: amount}, nil)
}
