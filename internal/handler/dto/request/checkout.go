package request

type CheckoutBookingRequest struct {
	GuestName  string `json:"guestName" binding:"required,max=120"`
	GuestEmail string `json:"guestEmail" binding:"required,email"`
}

type CheckoutOrderRequest struct {
	GuestName  string  `json:"guestName" binding:"required,max=120"`
	RoomNumber *string `json:"roomNumber,omitempty" binding:"omitempty,max=16"`
}
