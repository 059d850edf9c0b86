// Package cart holds a guest's in-progress selections: room bookings, food
// and beverage order items, and booking add-ons. A Cart belongs to exactly
// one session and is serialized whole into the session store between
// requests; nothing here performs I/O.
package cart

import (
	"errors"
	"time"
)

var (
	ErrRoomNotInCart  = errors.New("room is not in the cart")
	ErrItemNotInCart  = errors.New("item is not in the cart")
	ErrAddonNotInCart = errors.New("add-on is not in the cart")
	ErrEmptyRoomCart  = errors.New("room cart is empty")
)

// RoomLine is one room selection. Rate is copied from the catalog when the
// room is added; Nights and TotalCents are derived from the stay range.
type RoomLine struct {
	RoomID           string    `json:"room_id"`
	RoomName         string    `json:"room_name"`
	CheckIn          time.Time `json:"check_in"`
	CheckOut         time.Time `json:"check_out"`
	Nights           int       `json:"nights"`
	NightlyRateCents int64     `json:"nightly_rate_cents"`
	TotalCents       int64     `json:"total_cents"`
}

// OrderLine is one purchasable item with an accumulated quantity.
type OrderLine struct {
	ItemID         string `json:"item_id"`
	ItemName       string `json:"item_name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
	TotalCents     int64  `json:"total_cents"`
}

// AddonLine is one per-booking extra. Re-adding the same add-on replaces the
// line outright.
type AddonLine struct {
	AddonID    string `json:"addon_id"`
	AddonName  string `json:"addon_name"`
	PriceCents int64  `json:"price_cents"`
}

// Cart is the root aggregate: the three collections a session owns. The zero
// value is a valid empty cart, which gives every operation the idempotent
// ensure-initialized behavior for sessions that have no cart yet.
type Cart struct {
	Rooms  []RoomLine  `json:"rooms"`
	Items  []OrderLine `json:"items"`
	Addons []AddonLine `json:"addons"`
}

func New() *Cart {
	return &Cart{}
}

// ---------------------------------------------------------------------------
// Room cart
// ---------------------------------------------------------------------------

// UpsertRoom adds a room selection or, if the room is already in the cart,
// overwrites its stay dates in place. Re-adding with identical dates leaves
// the line untouched. One line per room ID.
func (c *Cart) UpsertRoom(roomID, roomName string, nightlyRateCents int64, stay StayRange) {
	for i := range c.Rooms {
		if c.Rooms[i].RoomID != roomID {
			continue
		}
		existing := StayRange{CheckIn: c.Rooms[i].CheckIn, CheckOut: c.Rooms[i].CheckOut}
		if !existing.Equal(stay) {
			applyStay(&c.Rooms[i], stay)
		}
		return
	}

	line := RoomLine{
		RoomID:           roomID,
		RoomName:         roomName,
		NightlyRateCents: nightlyRateCents,
	}
	applyStay(&line, stay)
	c.Rooms = append(c.Rooms, line)
}

// RescheduleRoom moves one room line to a new stay range, recomputing nights
// and total from the rate already on the line.
func (c *Cart) RescheduleRoom(roomID string, stay StayRange) error {
	for i := range c.Rooms {
		if c.Rooms[i].RoomID == roomID {
			applyStay(&c.Rooms[i], stay)
			return nil
		}
	}
	return ErrRoomNotInCart
}

// RescheduleAllRooms applies one stay range to every room line in one pass.
func (c *Cart) RescheduleAllRooms(stay StayRange) error {
	if len(c.Rooms) == 0 {
		return ErrEmptyRoomCart
	}
	for i := range c.Rooms {
		applyStay(&c.Rooms[i], stay)
	}
	return nil
}

func (c *Cart) RemoveRoom(roomID string) bool {
	for i := range c.Rooms {
		if c.Rooms[i].RoomID == roomID {
			c.Rooms = append(c.Rooms[:i], c.Rooms[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) RoomsTotalCents() int64 {
	var total int64
	for _, line := range c.Rooms {
		total += line.TotalCents
	}
	return total
}

func applyStay(line *RoomLine, stay StayRange) {
	line.CheckIn = stay.CheckIn
	line.CheckOut = stay.CheckOut
	line.Nights = stay.Nights()
	line.TotalCents = line.NightlyRateCents * int64(line.Nights)
}

// ---------------------------------------------------------------------------
// Order cart
// ---------------------------------------------------------------------------

// AddItem inserts an order line, or accumulates quantity when the item is
// already in the cart. On a duplicate add the line keeps its original unit
// price; only the quantity grows.
func (c *Cart) AddItem(itemID, itemName string, unitPriceCents int64, quantity int) {
	for i := range c.Items {
		if c.Items[i].ItemID != itemID {
			continue
		}
		c.Items[i].Quantity += quantity
		c.Items[i].TotalCents = c.Items[i].UnitPriceCents * int64(c.Items[i].Quantity)
		return
	}

	c.Items = append(c.Items, OrderLine{
		ItemID:         itemID,
		ItemName:       itemName,
		UnitPriceCents: unitPriceCents,
		Quantity:       quantity,
		TotalCents:     unitPriceCents * int64(quantity),
	})
}

// SetItemQuantity sets an absolute quantity. Zero or negative removes the
// line, which is the defined "remove" signal rather than an error.
func (c *Cart) SetItemQuantity(itemID string, quantity int) error {
	for i := range c.Items {
		if c.Items[i].ItemID != itemID {
			continue
		}
		if quantity <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return nil
		}
		c.Items[i].Quantity = quantity
		c.Items[i].TotalCents = c.Items[i].UnitPriceCents * int64(quantity)
		return nil
	}
	return ErrItemNotInCart
}

func (c *Cart) RemoveItem(itemID string) bool {
	for i := range c.Items {
		if c.Items[i].ItemID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) ItemsSubtotalCents() int64 {
	var total int64
	for _, line := range c.Items {
		total += line.TotalCents
	}
	return total
}

// ---------------------------------------------------------------------------
// Add-on cart
// ---------------------------------------------------------------------------

// PutAddon upserts an add-on line. Unlike order items this is a full
// replace: re-adding "spa" at a new price yields one line at the new price.
func (c *Cart) PutAddon(addonID, addonName string, priceCents int64) {
	for i := range c.Addons {
		if c.Addons[i].AddonID == addonID {
			c.Addons[i] = AddonLine{AddonID: addonID, AddonName: addonName, PriceCents: priceCents}
			return
		}
	}
	c.Addons = append(c.Addons, AddonLine{AddonID: addonID, AddonName: addonName, PriceCents: priceCents})
}

func (c *Cart) RemoveAddon(addonID string) bool {
	for i := range c.Addons {
		if c.Addons[i].AddonID == addonID {
			c.Addons = append(c.Addons[:i], c.Addons[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) AddonsTotalCents() int64 {
	var total int64
	for _, line := range c.Addons {
		total += line.PriceCents
	}
	return total
}

// ---------------------------------------------------------------------------
// Whole-cart operations
// ---------------------------------------------------------------------------

func (c *Cart) ClearRooms() {
	c.Rooms = nil
	c.Addons = nil
}

func (c *Cart) ClearItems() {
	c.Items = nil
}

func (c *Cart) Clear() {
	c.Rooms = nil
	c.Items = nil
	c.Addons = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Rooms) == 0 && len(c.Items) == 0 && len(c.Addons) == 0
}
