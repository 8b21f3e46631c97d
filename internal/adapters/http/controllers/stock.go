package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/retailstack/backend/internal/adapters/http/handlers"
	"github.com/retailstack/backend/internal/core/domain"
	"github.com/retailstack/backend/internal/core/dto"
	"github.com/retailstack/backend/internal/core/service"
	"github.com/retailstack/backend/internal/core/serviceerrors"
)

type StockController struct {
	stockService *service.StockService
}

type StockResponse struct {
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewStockResponse(record *domain.StockRecord) StockResponse {
	return StockResponse{
		ProductID: int64(record.ProductID),
		Quantity:  record.Quantity,
		UpdatedAt: record.UpdatedAt,
	}
}

func NewStockController(stockService *service.StockService) *StockController {
	return &StockController{stockService: stockService}
}

func parseProductID(c *gin.Context) (domain.ProductID, bool) {
	productID, err := strconv.ParseInt(c.Param("productID"), 10, 64)
	if err != nil || productID <= 0 {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid product ID"))
		return 0, false
	}
	return domain.ProductID(productID), true
}

// GetStock godoc
// @Summary     Get stock quantity
// @Description Returns the current quantity for a product; unknown products read as zero
// @Tags        stock
// @Produce     json
// @Param       productID path     int true "Product ID"
// @Success     200       {object} StockResponse
// @Failure     400       {object} handlers.ErrorResponse
// @Failure     500       {object} handlers.ErrorResponse
// @Router      /api/v1/stock/{productID} [get]
func (stockController *StockController) GetStock(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}
	record, err := stockController.stockService.GetStock(c.Request.Context(), productID)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewStockResponse(record))
}

// SetStock godoc
// @Summary     Set stock quantity
// @Description Overwrites the quantity for a product, creating the record if needed
// @Tags        stock
// @Accept      json
// @Produce     json
// @Param       productID path     int                 true "Product ID"
// @Param       request   body     dto.SetStockRequest true "New quantity"
// @Success     200       {object} StockResponse
// @Failure     400       {object} handlers.ErrorResponse
// @Failure     429       {object} handlers.ErrorResponse
// @Failure     500       {object} handlers.ErrorResponse
// @Router      /api/v1/stock/{productID} [put]
func (stockController *StockController) SetStock(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}
	var request dto.SetStockRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	record, err := stockController.stockService.SetStock(c.Request.Context(), productID, *request.Quantity)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewStockResponse(record))
}

// ReduceStock godoc
// @Summary     Reduce stock
// @Description Atomically deducts the amount; refuses rather than going negative
// @Tags        stock
// @Accept      json
// @Produce     json
// @Param       productID path     int                    true "Product ID"
// @Param       request   body     dto.AdjustStockRequest true "Amount to deduct"
// @Success     200       {object} StockResponse
// @Failure     400       {object} handlers.ErrorResponse
// @Failure     404       {object} handlers.ErrorResponse
// @Failure     422       {object} handlers.ErrorResponse
// @Failure     429       {object} handlers.ErrorResponse
// @Failure     500       {object} handlers.ErrorResponse
// @Router      /api/v1/stock/{productID}/reduce [post]
func (stockController *StockController) ReduceStock(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}
	var request dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	record, err := stockController.stockService.ReduceStock(c.Request.Context(), productID, request.Amount)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewStockResponse(record))
}

// RestoreStock godoc
// @Summary     Restore stock
// @Description Adds the amount back, e.g. to undo a reservation from a rejected order
// @Tags        stock
// @Accept      json
// @Produce     json
// @Param       productID path     int                    true "Product ID"
// @Param       request   body     dto.AdjustStockRequest true "Amount to restore"
// @Success     200       {object} StockResponse
// @Failure     400       {object} handlers.ErrorResponse
// @Failure     429       {object} handlers.ErrorResponse
// @Failure     500       {object} handlers.ErrorResponse
// @Router      /api/v1/stock/{productID}/restore [post]
func (stockController *StockController) RestoreStock(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}
	var request dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	record, err := stockController.stockService.RestoreStock(c.Request.Context(), productID, request.Amount)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewStockResponse(record))
}
