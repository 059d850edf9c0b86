//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"hotelcart/internal/handler/api"
	resdto "hotelcart/internal/handler/dto/response"
	"hotelcart/internal/handler/middleware"
	"hotelcart/internal/usecase/commands"
	"hotelcart/tests/common/httptest"
	commandsmock "hotelcart/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	handler      *api.CheckoutHandler
	sessionID    uuid.UUID
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCommands)
	s.sessionID = uuid.New()

	sessionStub := func(c *gin.Context) {
		middleware.SetSessionID(c, s.sessionID)
		c.Next()
	}

	checkout := s.router.Group("/api/checkout", sessionStub)
	checkout.POST("/booking", s.handler.CheckoutBooking)
	checkout.POST("/order", s.handler.CheckoutOrder)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func (s *CheckoutHandlerTestSuite) TestCheckoutBooking() {
	url := "/api/checkout/booking"
	validBody := map[string]any{
		"guestName":  "Amina Odhiambo",
		"guestEmail": "amina@example.com",
	}

	s.Run("success: returns 201 with booking result", func() {
		bookingID := uuid.New()
		s.mockCommands.EXPECT().
			CheckoutBooking(gomock.Any(), s.sessionID, commands.GuestDetails{
				Name:  "Amina Odhiambo",
				Email: "amina@example.com",
			}).
			Return(&commands.CheckoutBookingResult{BookingID: bookingID, TotalCents: 4500_00}, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody)

		var body resdto.CheckoutBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(bookingID, body.BookingID)
		s.Equal(int64(4500_00), body.TotalCents)
	})

	s.Run("error: 400 on missing guest details", func() {
		for _, body := range []map[string]any{
			{"guestEmail": "amina@example.com"},
			{"guestName": "Amina Odhiambo"},
			{"guestName": "Amina Odhiambo", "guestEmail": "not-an-email"},
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: 422 on empty room cart", func() {
		s.mockCommands.EXPECT().
			CheckoutBooking(gomock.Any(), s.sessionID, gomock.Any()).
			Return(nil, commands.ErrNothingToCheckout).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Cart is empty")
	})

	s.Run("error: 500 on database failure", func() {
		s.mockCommands.EXPECT().
			CheckoutBooking(gomock.Any(), s.sessionID, gomock.Any()).
			Return(nil, errors.New("tx failed")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}

func (s *CheckoutHandlerTestSuite) TestCheckoutOrder() {
	url := "/api/checkout/order"
	roomNumber := "204"
	validBody := map[string]any{
		"guestName":  "Amina Odhiambo",
		"roomNumber": roomNumber,
	}

	s.Run("success: returns 201 with order result", func() {
		orderID := uuid.New()
		s.mockCommands.EXPECT().
			CheckoutOrder(gomock.Any(), s.sessionID, commands.GuestDetails{
				Name:       "Amina Odhiambo",
				RoomNumber: &roomNumber,
			}).
			Return(&commands.CheckoutOrderResult{
				OrderID:       orderID,
				SubtotalCents: 900_00,
				TaxCents:      144_00,
				TotalCents:    1044_00,
			}, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody)

		var body resdto.CheckoutOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(orderID, body.OrderID)
		s.Equal(int64(144_00), body.TaxCents)
	})

	s.Run("success: room number is optional", func() {
		s.mockCommands.EXPECT().
			CheckoutOrder(gomock.Any(), s.sessionID, commands.GuestDetails{Name: "Walk In"}).
			Return(&commands.CheckoutOrderResult{OrderID: uuid.New()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"guestName": "Walk In"})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 422 on empty order cart", func() {
		s.mockCommands.EXPECT().
			CheckoutOrder(gomock.Any(), s.sessionID, gomock.Any()).
			Return(nil, commands.ErrNothingToCheckout).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Cart is empty")
	})
}
