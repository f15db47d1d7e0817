package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	request "fitmarket/internal/adapter/http/dto/request"
	response "fitmarket/internal/adapter/http/dto/response"
	"fitmarket/internal/domain/entities"
	"fitmarket/internal/usecase"
	"fitmarket/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for the service order lifecycle.

type OrderHandler struct {
	usecase  usecase.IOrderUseCase
	payments usecase.IOrderPaymentUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase, payments usecase.IOrderPaymentUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc, payments: payments}
}

// CreateOrder registers a new service order in the pending state.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ListOrders returns orders newest first, narrowed by query filters.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	filter := entities.OrderFilter{
		Status:        entities.OrderStatus(c.Query("status")),
		PaymentStatus: entities.PaymentStatus(c.Query("payment_status")),
		ServiceType:   entities.ServiceType(c.Query("service_type")),
		PartnerID:     c.Query("partner_id"),
		UserID:        c.Query("user_id"),
	}

	orders, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) ConfirmOrder(c *gin.Context) {
	h.patchOrderStatus(c, h.usecase.ConfirmOrder)
}

func (h *OrderHandler) StartOrder(c *gin.Context) {
	h.patchOrderStatus(c, h.usecase.StartOrder)
}

func (h *OrderHandler) CompleteOrder(c *gin.Context) {
	h.patchOrderStatus(c, h.usecase.CompleteOrder)
}

// CancelOrder cancels the order; an optional reason is appended to the
// order notes.
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	var payload request.CancelOrderRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
			return
		}
	}

	order, err := h.usecase.CancelOrder(c.Request.Context(), c.Param("id"), payload.Reason)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// UpdatePaymentStatus mutates the payment axis without touching the
// fulfillment status.
func (h *OrderHandler) UpdatePaymentStatus(c *gin.Context) {
	var payload request.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.UpdatePaymentStatus(c.Request.Context(), c.Param("id"), entities.PaymentStatus(payload.PaymentStatus))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ChargeOrder runs the order's amount through the payment gateway and,
// on approval, marks the order paid.
func (h *OrderHandler) ChargeOrder(c *gin.Context) {
	var payload json.RawMessage
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
			return
		}
	}

	result, err := h.payments.ChargeOrder(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderPayment(result))
}

func (h *OrderHandler) OrderStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context(), c.Query("partner_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *OrderHandler) LinkWorkout(c *gin.Context) {
	var payload request.LinkWorkoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	if err := h.usecase.LinkWorkout(c.Request.Context(), c.Param("id"), payload.WorkoutID); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func (h *OrderHandler) LinkAssessment(c *gin.Context) {
	var payload request.LinkAssessmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	if err := h.usecase.LinkAssessment(c.Request.Context(), c.Param("id"), payload.AssessmentID); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func (h *OrderHandler) patchOrderStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.ServiceOrder, error),
) {
	order, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidOrderInput),
		errors.Is(err, usecase.ErrInvalidServiceType),
		errors.Is(err, usecase.ErrInvalidPaymentStatus),
		errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Order status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderAlreadyPaid):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_PAID", "Order is already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderCancelledPayment):
		return pkg.NewDomainErrorSimple("ORDER_CANCELLED", "Cannot charge a cancelled order", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Payment was not approved", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
