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

type NotificationController struct {
	notificationService *service.NotificationService
}

type NotificationResponse struct {
	ID         string    `json:"id"`
	CustomerID int64     `json:"customer_id"`
	OrderID    string    `json:"order_id,omitempty"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewNotificationResponse(notification *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:         string(notification.ID),
		CustomerID: int64(notification.CustomerID),
		OrderID:    string(notification.OrderID),
		Message:    notification.Message,
		CreatedAt:  notification.CreatedAt,
	}
}

func NewNotificationController(notificationService *service.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// SendNotification godoc
// @Summary     Send a notification
// @Description Records and delivers a notification to a customer
// @Tags        notifications
// @Accept      json
// @Produce     json
// @Param       request body     dto.SendNotificationRequest true "Notification data"
// @Success     201     {object} NotificationResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     429     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/notifications [post]
func (notificationController *NotificationController) SendNotification(c *gin.Context) {
	var request dto.SendNotificationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	notification, err := notificationController.notificationService.Send(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewNotificationResponse(notification))
}

// GetNotificationsByCustomer godoc
// @Summary     List a customer's notifications
// @Description Returns the customer's notifications, newest first
// @Tags        notifications
// @Produce     json
// @Param       customerID path     int true  "Customer ID"
// @Param       limit      query    int false "Page size"
// @Param       offset     query    int false "Page offset"
// @Success     200        {array}  NotificationResponse
// @Failure     400        {object} handlers.ErrorResponse
// @Failure     500        {object} handlers.ErrorResponse
// @Router      /api/v1/customers/{customerID}/notifications [get]
func (notificationController *NotificationController) GetNotificationsByCustomer(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Param("customerID"), 10, 64)
	if err != nil || customerID <= 0 {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid customer ID"))
		return
	}
	limit, offset := parsePagination(c)

	notifications, err := notificationController.notificationService.GetByCustomer(c.Request.Context(), domain.CustomerID(customerID), limit, offset)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	responses := make([]NotificationResponse, len(notifications))
	for i, notification := range notifications {
		responses[i] = NewNotificationResponse(notification)
	}
	c.JSON(http.StatusOK, responses)
}
