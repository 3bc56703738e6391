package order

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"driveslot/internal/api"
	"driveslot/internal/auth"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Checkout godoc
// @Summary      Checkout cart
// @Description  Creates a payment-pending order from the reserved slots in the user's cart.
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Success      201  {object}  CheckoutResponse
// @Failure      400  {object}  api.ErrorResponse
// @Failure      401  {object}  api.ErrorResponse
// @Failure      409  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /orders/checkout [post]
func (h *Handler) Checkout(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	resp, err := h.service.Checkout(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyCart):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Cart has no payable items"})
		case errors.Is(err, ErrSlotNotReserved):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "A slot in the cart is no longer reserved"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create order"})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetOrder godoc
// @Summary      Get order
// @Description  Returns one of the authenticated user's orders.
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  Order
// @Failure      401  {object}  api.ErrorResponse
// @Failure      403  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /orders/{id} [get]
func (h *Handler) GetOrder(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid order ID"})
		return
	}

	o, err := h.service.Get(c.Request.Context(), userID, orderID)
	if err != nil {
		h.renderOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, o)
}

// ConfirmPayment godoc
// @Summary      Confirm payment
// @Description  Marks the order paid and books its slots. Safe to retry with the same payment id.
// @Tags         payments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      ConfirmRequest  true  "Payment confirmation"
// @Success      200      {object}  Order
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /payments/confirm [post]
func (h *Handler) ConfirmPayment(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	o, err := h.service.Confirm(c.Request.Context(), userID, req)
	if err != nil {
		h.renderOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, o)
}

// FailPayment godoc
// @Summary      Report failed payment
// @Description  Marks the order failed and releases its slots back to available.
// @Tags         payments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      FailRequest  true  "Payment failure"
// @Success      200      {object}  Order
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /payments/fail [post]
func (h *Handler) FailPayment(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req FailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	o, err := h.service.Fail(c.Request.Context(), userID, req)
	if err != nil {
		h.renderOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, o)
}

func (h *Handler) renderOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrOrderNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Order not found"})
	case errors.Is(err, ErrNotOwner):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Order belongs to another user"})
	case errors.Is(err, ErrNotPayable):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Order is not awaiting payment"})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to process order"})
	}
}
