package request

import "time"

const dateLayout = "2006-01-02"

// AddRoomRequest puts a room into the booking cart for a stay range.
type AddRoomRequest struct {
	RoomID   string `json:"roomId" binding:"required"`
	CheckIn  string `json:"checkIn" binding:"required,datetime=2006-01-02"`
	CheckOut string `json:"checkOut" binding:"required,datetime=2006-01-02"`
}

func (r AddRoomRequest) Dates() (checkIn, checkOut time.Time, err error) {
	return parseDates(r.CheckIn, r.CheckOut)
}

// RescheduleRequest moves one room line, or every line when applied to the
// whole cart, to a new stay range.
type RescheduleRequest struct {
	CheckIn  string `json:"checkIn" binding:"required,datetime=2006-01-02"`
	CheckOut string `json:"checkOut" binding:"required,datetime=2006-01-02"`
}

func (r RescheduleRequest) Dates() (checkIn, checkOut time.Time, err error) {
	return parseDates(r.CheckIn, r.CheckOut)
}

// AddItemRequest puts a menu item into the order cart; the price comes from
// the catalog, never from the client.
type AddItemRequest struct {
	ItemID   string `json:"itemId" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

// UpdateQuantityRequest sets an absolute quantity; zero removes the line,
// so the field is a pointer to tell zero apart from absent.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func parseDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return in, out, nil
}
