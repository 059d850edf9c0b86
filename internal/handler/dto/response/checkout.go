package response

import (
	"hotelcart/internal/usecase/commands"

	"github.com/google/uuid"
)

type CheckoutBookingResponse struct {
	BookingID  uuid.UUID `json:"bookingId"`
	TotalCents int64     `json:"totalCents"`
}

type CheckoutOrderResponse struct {
	OrderID       uuid.UUID `json:"orderId"`
	SubtotalCents int64     `json:"subtotalCents"`
	TaxCents      int64     `json:"taxCents"`
	TotalCents    int64     `json:"totalCents"`
}

func FromCheckoutBookingResult(r *commands.CheckoutBookingResult) *CheckoutBookingResponse {
	return &CheckoutBookingResponse{
		BookingID:  r.BookingID,
		TotalCents: r.TotalCents,
	}
}

func FromCheckoutOrderResult(r *commands.CheckoutOrderResult) *CheckoutOrderResponse {
	return &CheckoutOrderResponse{
		OrderID:       r.OrderID,
		SubtotalCents: r.SubtotalCents,
		TaxCents:      r.TaxCents,
		TotalCents:    r.TotalCents,
	}
}
