package api

import (
	"errors"
	"net/http"

	reqdto "hotelcart/internal/handler/dto/request"
	resdto "hotelcart/internal/handler/dto/response"
	"hotelcart/internal/handler/middleware"
	"hotelcart/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
}

func NewCheckoutHandler(checkoutCommands commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutCommands: checkoutCommands,
	}
}

// @Summary Check out the booking cart
// @Description Persist the room cart as a booking and clear it
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutBookingRequest true "Guest details"
// @Success 201 {object} resdto.CheckoutBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /checkout/booking [post]
func (h *CheckoutHandler) CheckoutBooking(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CheckoutBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.checkoutCommands.CheckoutBooking(c.Request.Context(), sessionID, commands.GuestDetails{
		Name:  req.GuestName,
		Email: req.GuestEmail,
	})
	if err != nil {
		h.respondCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCheckoutBookingResult(result))
}

// @Summary Check out the order cart
// @Description Persist the order cart as an order and clear it
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutOrderRequest true "Guest details"
// @Success 201 {object} resdto.CheckoutOrderResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /checkout/order [post]
func (h *CheckoutHandler) CheckoutOrder(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CheckoutOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.checkoutCommands.CheckoutOrder(c.Request.Context(), sessionID, commands.GuestDetails{
		Name:       req.GuestName,
		RoomNumber: req.RoomNumber,
	})
	if err != nil {
		h.respondCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCheckoutOrderResult(result))
}

func (h *CheckoutHandler) respondCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrNothingToCheckout):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Cart is empty"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
