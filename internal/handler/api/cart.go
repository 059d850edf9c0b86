package api

import (
	"errors"
	"net/http"

	reqdto "hotelcart/internal/handler/dto/request"
	resdto "hotelcart/internal/handler/dto/response"
	"hotelcart/internal/handler/middleware"
	"hotelcart/internal/usecase/commands"
	"hotelcart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cartCommands commands.CartCommands
	cartQueries  queries.CartQueries
}

func NewCartHandler(cartCommands commands.CartCommands, cartQueries queries.CartQueries) *CartHandler {
	return &CartHandler{
		cartCommands: cartCommands,
		cartQueries:  cartQueries,
	}
}

// @Summary Add room to booking cart
// @Description Add a room for a stay range, or update the dates if the room is already in the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddRoomRequest true "Room and stay range"
// @Success 200 {object} resdto.RoomCartSummaryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/rooms [post]
func (h *CartHandler) AddRoom(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req reqdto.AddRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	summary, err := h.cartCommands.AddRoom(c.Request.Context(), sessionID, req.RoomID, checkIn, checkOut)
	if err != nil {
		h.respondRoomCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomCartSummary(summary))
}

// @Summary Reschedule one room
// @Description Move a room line in the cart to a new stay range
// @Tags cart
// @Accept json
// @Produce json
// @Param roomId path string true "Room ID"
// @Param request body reqdto.RescheduleRequest true "New stay range"
// @Success 200 {object} resdto.RoomCartSummaryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/rooms/{roomId} [patch]
func (h *CartHandler) RescheduleRoom(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req reqdto.RescheduleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	summary, err := h.cartCommands.RescheduleRoom(c.Request.Context(), sessionID, c.Param("roomId"), checkIn, checkOut)
	if err != nil {
		h.respondRoomCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomCartSummary(summary))
}

// @Summary Reschedule every room
// @Description Apply one stay range to every room line in the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.RescheduleRequest true "New stay range"
// @Success 200 {object} resdto.RoomCartSummaryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/rooms/dates [patch]
func (h *CartHandler) RescheduleAllRooms(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req reqdto.RescheduleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	summary, err := h.cartCommands.RescheduleAllRooms(c.Request.Context(), sessionID, checkIn, checkOut)
	if err != nil {
		h.respondRoomCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomCartSummary(summary))
}

// @Summary Remove room from booking cart
// @Tags cart
// @Produce json
// @Param roomId path string true "Room ID"
// @Success 200 {object} resdto.RoomCartSummaryResponse
// @Failure 404 {object} map[string]string
// @Router /cart/rooms/{roomId} [delete]
func (h *CartHandler) RemoveRoom(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	summary, err := h.cartCommands.RemoveRoom(c.Request.Context(), sessionID, c.Param("roomId"))
	if err != nil {
		h.respondRoomCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomCartSummary(summary))
}

// @Summary Booking cart summary
// @Description Rooms, add-ons and totals for the current session
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.RoomCartSummaryResponse
// @Router /cart/rooms [get]
func (h *CartHandler) RoomCartSummary(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	summary, err := h.cartQueries.RoomCartSummary(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomCartSummary(summary))
}

// @Summary Add item to order cart
// @Description Add a menu item; adding the same item again accumulates quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddItemRequest true "Item and quantity"
// @Success 200 {object} resdto.OrderCartSummaryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req reqdto.AddItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	summary, err := h.cartCommands.AddItem(c.Request.Context(), sessionID, req.ItemID, req.Quantity)
	if err != nil {
		h.respondOrderCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderCartSummary(summary))
}

// @Summary Update item quantity
// @Description Set an absolute quantity; zero or less removes the line
// @Tags cart
// @Accept json
// @Produce json
// @Param itemId path string true "Item ID"
// @Param request body reqdto.UpdateQuantityRequest true "New quantity"
// @Success 200 {object} resdto.OrderCartSummaryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items/{itemId} [patch]
func (h *CartHandler) UpdateItemQuantity(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateQuantityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	summary, err := h.cartCommands.SetItemQuantity(c.Request.Context(), sessionID, c.Param("itemId"), *req.Quantity)
	if err != nil {
		h.respondOrderCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderCartSummary(summary))
}

// @Summary Remove item from order cart
// @Tags cart
// @Produce json
// @Param itemId path string true "Item ID"
// @Success 200 {object} resdto.OrderCartSummaryResponse
// @Failure 404 {object} map[string]string
// @Router /cart/items/{itemId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	summary, err := h.cartCommands.RemoveItem(c.Request.Context(), sessionID, c.Param("itemId"))
	if err != nil {
		h.respondOrderCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderCartSummary(summary))
}

// @Summary Order cart summary
// @Description Items, subtotal, VAT and grand total for the current session
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.OrderCartSummaryResponse
// @Router /cart/items [get]
func (h *CartHandler) OrderCartSummary(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	summary, err := h.cartQueries.OrderCartSummary(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderCartSummary(summary))
}

// @Summary Add booking add-on
// @Description Upsert an add-on; re-adding replaces the existing line
// @Tags cart
// @Produce json
// @Param addonId path string true "Add-on ID"
// @Success 200 {object} resdto.RoomCartSummaryResponse
// @Failure 404 {object} map[string]string
// @Router /cart/addons/{addonId} [put]
func (h *CartHandler) PutAddon(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	summary, err := h.cartCommands.PutAddon(c.Request.Context(), sessionID, c.Param("addonId"))
	if err != nil {
		h.respondRoomCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomCartSummary(summary))
}

// @Summary Remove booking add-on
// @Tags cart
// @Produce json
// @Param addonId path string true "Add-on ID"
// @Success 200 {object} resdto.RoomCartSummaryResponse
// @Failure 404 {object} map[string]string
// @Router /cart/addons/{addonId} [delete]
func (h *CartHandler) RemoveAddon(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	summary, err := h.cartCommands.RemoveAddon(c.Request.Context(), sessionID, c.Param("addonId"))
	if err != nil {
		h.respondRoomCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomCartSummary(summary))
}

// @Summary Clear the whole cart
// @Tags cart
// @Success 204
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	if err := h.cartCommands.ClearCart(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		// Session middleware is mounted ahead of every cart route.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return uuid.Nil, false
	}
	return sessionID, true
}

func (h *CartHandler) respondRoomCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
	case errors.Is(err, commands.ErrAddonNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Add-on not found"})
	case errors.Is(err, commands.ErrLineNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not in the cart"})
	case errors.Is(err, commands.ErrInvalidStayRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Check-out must be after check-in"})
	case errors.Is(err, commands.ErrEmptyRoomCart):
		c.JSON(http.StatusNotFound, gin.H{"error": "Room cart is empty"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func (h *CartHandler) respondOrderCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrMenuItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
	case errors.Is(err, commands.ErrLineNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not in the cart"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
