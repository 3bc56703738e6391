package cart

import (
	"errors"
	"net/http"
	"strconv"

	"driveslot/internal/api"
	"driveslot/internal/auth"
	"driveslot/internal/instructor"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetCart godoc
// @Summary      Get cart
// @Description  Returns the server-side cart of the authenticated user.
// @Tags         cart
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Cart
// @Failure      500  {object}  api.ErrorResponse
// @Router       /cart [get]
func (h *Handler) GetCart(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	cart, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch cart"})
		return
	}

	c.JSON(http.StatusOK, cart)
}

// AddItem godoc
// @Summary      Add cart item
// @Description  Adds an item to the cart. Driving-lesson items carry slot keys.
// @Tags         cart
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      AddItemRequest  true  "Item data"
// @Success      201      {object}  Item
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /cart/items [post]
func (h *Handler) AddItem(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if !instructor.ValidClassType(req.ClassType) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid class type"})
		return
	}
	if len(req.SlotKeys) > 0 && req.InstructorID == nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "instructor_id is required when slot_keys are given"})
		return
	}

	item, err := h.service.AddItem(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to add cart item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// RemoveItem godoc
// @Summary      Remove cart item
// @Description  Removes an item; a pending slot the item referenced becomes
// @Description  effectively available again for this user (soft release).
// @Tags         cart
// @Security     BearerAuth
// @Produce      json
// @Param        itemID  path      int  true  "Cart item ID"
// @Success      200     {object}  api.MessageResponse
// @Failure      400     {object}  api.ErrorResponse
// @Failure      404     {object}  api.ErrorResponse
// @Failure      500     {object}  api.ErrorResponse
// @Router       /cart/items/{itemID} [delete]
func (h *Handler) RemoveItem(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	itemID, err := strconv.Atoi(c.Param("itemID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid item ID"})
		return
	}

	if err := h.service.RemoveItem(c.Request.Context(), userID, itemID); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Cart item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to remove cart item"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Item removed"})
}

// ClearCart godoc
// @Summary      Clear cart
// @Tags         cart
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  api.MessageResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /cart [delete]
func (h *Handler) ClearCart(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	if err := h.service.Clear(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Cart cleared"})
}
