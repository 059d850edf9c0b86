//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"hotelcart/internal/domain/cart"
	"hotelcart/internal/handler/api"
	resdto "hotelcart/internal/handler/dto/response"
	"hotelcart/internal/handler/middleware"
	"hotelcart/internal/usecase/commands"
	"hotelcart/tests/common/httptest"
	commandsmock "hotelcart/tests/mock/commands"
	queriesmock "hotelcart/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockCartQueries
	handler      *api.CartHandler
	sessionID    uuid.UUID
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands, s.mockQueries)
	s.sessionID = uuid.New()

	// Seed a fixed session instead of running the cookie exchange
	sessionStub := func(c *gin.Context) {
		middleware.SetSessionID(c, s.sessionID)
		c.Next()
	}

	cartGroup := s.router.Group("/api/cart", sessionStub)
	cartGroup.POST("/rooms", s.handler.AddRoom)
	cartGroup.GET("/rooms", s.handler.RoomCartSummary)
	cartGroup.PATCH("/rooms/dates", s.handler.RescheduleAllRooms)
	cartGroup.PATCH("/rooms/:roomId", s.handler.RescheduleRoom)
	cartGroup.DELETE("/rooms/:roomId", s.handler.RemoveRoom)
	cartGroup.POST("/items", s.handler.AddItem)
	cartGroup.GET("/items", s.handler.OrderCartSummary)
	cartGroup.PATCH("/items/:itemId", s.handler.UpdateItemQuantity)
	cartGroup.DELETE("/items/:itemId", s.handler.RemoveItem)
	cartGroup.PUT("/addons/:addonId", s.handler.PutAddon)
	cartGroup.DELETE("/addons/:addonId", s.handler.RemoveAddon)
	cartGroup.DELETE("", s.handler.ClearCart)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func roomSummaryFixture() *cart.RoomCartSummary {
	checkIn := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	return &cart.RoomCartSummary{
		Rooms: []cart.RoomLine{
			{
				RoomID:           "deluxe-01",
				RoomName:         "Deluxe Suite",
				CheckIn:          checkIn,
				CheckOut:         checkIn.AddDate(0, 0, 2),
				Nights:           2,
				NightlyRateCents: 1500_00,
				TotalCents:       3000_00,
			},
		},
		Addons:          []cart.AddonLine{},
		RoomsTotalCents: 3000_00,
		GrandTotalCents: 3000_00,
		RoomsCount:      1,
	}
}

func orderSummaryFixture() *cart.OrderCartSummary {
	return &cart.OrderCartSummary{
		Items: []cart.OrderLine{
			{
				ItemID:         "burger",
				ItemName:       "Beef Burger",
				UnitPriceCents: 450_00,
				Quantity:       2,
				TotalCents:     900_00,
			},
		},
		SubtotalCents:   900_00,
		TaxCents:        144_00,
		GrandTotalCents: 1044_00,
		ItemsCount:      2,
	}
}

// ================================================================================
// Rooms
// ================================================================================

func (s *CartHandlerTestSuite) TestAddRoom() {
	url := "/api/cart/rooms"
	validBody := map[string]any{
		"roomId":   "deluxe-01",
		"checkIn":  "2026-03-10",
		"checkOut": "2026-03-12",
	}

	s.Run("success: returns 200 with room cart summary", func() {
		s.mockCommands.EXPECT().
			AddRoom(gomock.Any(), s.sessionID, "deluxe-01", gomock.Any(), gomock.Any()).
			Return(roomSummaryFixture(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody)

		var body resdto.RoomCartSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(3000_00), body.GrandTotalCents)
		s.Len(body.Rooms, 1)
		s.Equal(2, body.Rooms[0].Nights)
	})

	s.Run("error: 400 on missing fields", func() {
		for _, body := range []map[string]any{
			{"checkIn": "2026-03-10", "checkOut": "2026-03-12"},
			{"roomId": "deluxe-01", "checkOut": "2026-03-12"},
			{"roomId": "deluxe-01", "checkIn": "2026-03-10"},
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: 400 on malformed date", func() {
		body := map[string]any{
			"roomId":   "deluxe-01",
			"checkIn":  "10/03/2026",
			"checkOut": "2026-03-12",
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"unknown room", commands.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
			{"inverted stay range", commands.ErrInvalidStayRange, http.StatusBadRequest, "Check-out must be after check-in"},
			{"store failure", errors.New("redis gone"), http.StatusInternalServerError, "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					AddRoom(gomock.Any(), s.sessionID, "deluxe-01", gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *CartHandlerTestSuite) TestRescheduleRoom() {
	url := "/api/cart/rooms/deluxe-01"
	body := map[string]any{"checkIn": "2026-03-15", "checkOut": "2026-03-18"}

	s.Run("success: returns 200", func() {
		s.mockCommands.EXPECT().
			RescheduleRoom(gomock.Any(), s.sessionID, "deluxe-01", gomock.Any(), gomock.Any()).
			Return(roomSummaryFixture(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 when room is not in the cart", func() {
		s.mockCommands.EXPECT().
			RescheduleRoom(gomock.Any(), s.sessionID, "deluxe-01", gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrLineNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not in the cart")
	})
}

func (s *CartHandlerTestSuite) TestRescheduleAllRooms() {
	url := "/api/cart/rooms/dates"
	body := map[string]any{"checkIn": "2026-03-15", "checkOut": "2026-03-18"}

	s.Run("success: returns 200", func() {
		s.mockCommands.EXPECT().
			RescheduleAllRooms(gomock.Any(), s.sessionID, gomock.Any(), gomock.Any()).
			Return(roomSummaryFixture(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 when the room cart is empty", func() {
		s.mockCommands.EXPECT().
			RescheduleAllRooms(gomock.Any(), s.sessionID, gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrEmptyRoomCart).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "empty")
	})
}

func (s *CartHandlerTestSuite) TestRemoveRoom() {
	s.Run("success: returns 200 with remaining summary", func() {
		s.mockCommands.EXPECT().
			RemoveRoom(gomock.Any(), s.sessionID, "deluxe-01").
			Return(roomSummaryFixture(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/cart/rooms/deluxe-01", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 for a room that is not there", func() {
		s.mockCommands.EXPECT().
			RemoveRoom(gomock.Any(), s.sessionID, "ghost").
			Return(nil, commands.ErrLineNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/cart/rooms/ghost", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *CartHandlerTestSuite) TestRoomCartSummary() {
	s.Run("success: returns 200 with summary", func() {
		s.mockQueries.EXPECT().
			RoomCartSummary(gomock.Any(), s.sessionID).
			Return(roomSummaryFixture(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart/rooms", nil)

		var body resdto.RoomCartSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(1, body.RoomsCount)
	})

	s.Run("error: 500 when the store fails", func() {
		s.mockQueries.EXPECT().
			RoomCartSummary(gomock.Any(), s.sessionID).
			Return(nil, errors.New("redis gone")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart/rooms", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}

// ================================================================================
// Items
// ================================================================================

func (s *CartHandlerTestSuite) TestAddItem() {
	url := "/api/cart/items"

	s.Run("success: returns 200 with order cart summary", func() {
		s.mockCommands.EXPECT().
			AddItem(gomock.Any(), s.sessionID, "burger", 2).
			Return(orderSummaryFixture(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"itemId":   "burger",
			"quantity": 2,
		})

		var body resdto.OrderCartSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(144_00), body.TaxCents)
		s.Equal(int64(1044_00), body.GrandTotalCents)
	})

	s.Run("error: 400 on non-positive quantity", func() {
		for _, qty := range []int{0, -3} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
				"itemId":   "burger",
				"quantity": qty,
			})
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: 404 for unknown menu item", func() {
		s.mockCommands.EXPECT().
			AddItem(gomock.Any(), s.sessionID, "ghost", 1).
			Return(nil, commands.ErrMenuItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"itemId":   "ghost",
			"quantity": 1,
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Menu item not found")
	})
}

func (s *CartHandlerTestSuite) TestUpdateItemQuantity() {
	url := "/api/cart/items/burger"

	s.Run("success: returns 200", func() {
		s.mockCommands.EXPECT().
			SetItemQuantity(gomock.Any(), s.sessionID, "burger", 5).
			Return(orderSummaryFixture(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"quantity": 5})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: zero quantity passes through as a removal", func() {
		s.mockCommands.EXPECT().
			SetItemQuantity(gomock.Any(), s.sessionID, "burger", 0).
			Return(orderSummaryFixture(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"quantity": 0})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 when quantity is absent", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 for an item that is not there", func() {
		s.mockCommands.EXPECT().
			SetItemQuantity(gomock.Any(), s.sessionID, "burger", 5).
			Return(nil, commands.ErrLineNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"quantity": 5})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *CartHandlerTestSuite) TestRemoveItem() {
	s.Run("success: returns 200", func() {
		s.mockCommands.EXPECT().
			RemoveItem(gomock.Any(), s.sessionID, "burger").
			Return(orderSummaryFixture(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/cart/items/burger", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *CartHandlerTestSuite) TestOrderCartSummary() {
	s.Run("success: returns 200 with summary", func() {
		s.mockQueries.EXPECT().
			OrderCartSummary(gomock.Any(), s.sessionID).
			Return(orderSummaryFixture(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart/items", nil)

		var body resdto.OrderCartSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(900_00), body.SubtotalCents)
	})
}

// ================================================================================
// Addons
// ================================================================================

func (s *CartHandlerTestSuite) TestPutAddon() {
	s.Run("success: returns 200", func() {
		s.mockCommands.EXPECT().
			PutAddon(gomock.Any(), s.sessionID, "airport-shuttle").
			Return(roomSummaryFixture(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/cart/addons/airport-shuttle", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 for unknown add-on", func() {
		s.mockCommands.EXPECT().
			PutAddon(gomock.Any(), s.sessionID, "ghost").
			Return(nil, commands.ErrAddonNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/cart/addons/ghost", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Add-on not found")
	})
}

func (s *CartHandlerTestSuite) TestRemoveAddon() {
	s.Run("success: returns 200", func() {
		s.mockCommands.EXPECT().
			RemoveAddon(gomock.Any(), s.sessionID, "airport-shuttle").
			Return(roomSummaryFixture(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/cart/addons/airport-shuttle", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

// ================================================================================
// Clear
// ================================================================================

func (s *CartHandlerTestSuite) TestClearCart() {
	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().
			ClearCart(gomock.Any(), s.sessionID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/cart", nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 500 when the store fails", func() {
		s.mockCommands.EXPECT().
			ClearCart(gomock.Any(), s.sessionID).
			Return(errors.New("redis gone")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/cart", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}
