package cart

// RoomCartSummary aggregates the booking side of the cart: room lines plus
// booking add-ons.
type RoomCartSummary struct {
	Rooms           []RoomLine  `json:"rooms"`
	Addons          []AddonLine `json:"addons"`
	RoomsTotalCents int64       `json:"rooms_total_cents"`
	AddonsCents     int64       `json:"addons_total_cents"`
	GrandTotalCents int64       `json:"grand_total_cents"`
	RoomsCount      int         `json:"rooms_count"`
	AddonsCount     int         `json:"addons_count"`
}

// OrderCartSummary aggregates the food/beverage side with VAT applied on top
// of the subtotal.
type OrderCartSummary struct {
	Items           []OrderLine `json:"items"`
	SubtotalCents   int64       `json:"subtotal_cents"`
	TaxCents        int64       `json:"tax_cents"`
	GrandTotalCents int64       `json:"grand_total_cents"`
	ItemsCount      int         `json:"items_count"`
}

func (c *Cart) RoomSummary() RoomCartSummary {
	roomsTotal := c.RoomsTotalCents()
	addonsTotal := c.AddonsTotalCents()
	return RoomCartSummary{
		Rooms:           c.Rooms,
		Addons:          c.Addons,
		RoomsTotalCents: roomsTotal,
		AddonsCents:     addonsTotal,
		GrandTotalCents: roomsTotal + addonsTotal,
		RoomsCount:      len(c.Rooms),
		AddonsCount:     len(c.Addons),
	}
}

func (c *Cart) OrderSummary(vatRate float64) OrderCartSummary {
	subtotal := c.ItemsSubtotalCents()
	tax := TaxCents(subtotal, vatRate)
	return OrderCartSummary{
		Items:           c.Items,
		SubtotalCents:   subtotal,
		TaxCents:        tax,
		GrandTotalCents: subtotal + tax,
		ItemsCount:      len(c.Items),
	}
}
