package response

import (
	"time"

	"hotelcart/internal/domain/cart"
)

type RoomLineResponse struct {
	RoomID           string    `json:"roomId"`
	RoomName         string    `json:"roomName"`
	CheckIn          time.Time `json:"checkIn"`
	CheckOut         time.Time `json:"checkOut"`
	Nights           int       `json:"nights"`
	NightlyRateCents int64     `json:"nightlyRateCents"`
	TotalCents       int64     `json:"totalCents"`
}

type OrderLineResponse struct {
	ItemID         string `json:"itemId"`
	ItemName       string `json:"itemName"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
	TotalCents     int64  `json:"totalCents"`
}

type AddonLineResponse struct {
	AddonID    string `json:"addonId"`
	AddonName  string `json:"addonName"`
	PriceCents int64  `json:"priceCents"`
}

type RoomCartSummaryResponse struct {
	Rooms           []RoomLineResponse  `json:"rooms"`
	Addons          []AddonLineResponse `json:"addons"`
	RoomsTotalCents int64               `json:"roomsTotalCents"`
	AddonsCents     int64               `json:"addonsTotalCents"`
	GrandTotalCents int64               `json:"grandTotalCents"`
	RoomsCount      int                 `json:"roomsCount"`
	AddonsCount     int                 `json:"addonsCount"`
}

type OrderCartSummaryResponse struct {
	Items           []OrderLineResponse `json:"items"`
	SubtotalCents   int64               `json:"subtotalCents"`
	TaxCents        int64               `json:"taxCents"`
	GrandTotalCents int64               `json:"grandTotalCents"`
	ItemsCount      int                 `json:"itemsCount"`
}

func FromRoomCartSummary(s *cart.RoomCartSummary) *RoomCartSummaryResponse {
	rooms := make([]RoomLineResponse, len(s.Rooms))
	for i, line := range s.Rooms {
		rooms[i] = RoomLineResponse{
			RoomID:           line.RoomID,
			RoomName:         line.RoomName,
			CheckIn:          line.CheckIn,
			CheckOut:         line.CheckOut,
			Nights:           line.Nights,
			NightlyRateCents: line.NightlyRateCents,
			TotalCents:       line.TotalCents,
		}
	}
	addons := make([]AddonLineResponse, len(s.Addons))
	for i, line := range s.Addons {
		addons[i] = AddonLineResponse{
			AddonID:    line.AddonID,
			AddonName:  line.AddonName,
			PriceCents: line.PriceCents,
		}
	}
	return &RoomCartSummaryResponse{
		Rooms:           rooms,
		Addons:          addons,
		RoomsTotalCents: s.RoomsTotalCents,
		AddonsCents:     s.AddonsCents,
		GrandTotalCents: s.GrandTotalCents,
		RoomsCount:      s.RoomsCount,
		AddonsCount:     s.AddonsCount,
	}
}

func FromOrderCartSummary(s *cart.OrderCartSummary) *OrderCartSummaryResponse {
	items := make([]OrderLineResponse, len(s.Items))
	for i, line := range s.Items {
		items[i] = OrderLineResponse{
			ItemID:         line.ItemID,
			ItemName:       line.ItemName,
			UnitPriceCents: line.UnitPriceCents,
			Quantity:       line.Quantity,
			TotalCents:     line.TotalCents,
		}
	}
	return &OrderCartSummaryResponse{
		Items:           items,
		SubtotalCents:   s.SubtotalCents,
		TaxCents:        s.TaxCents,
		GrandTotalCents: s.GrandTotalCents,
		ItemsCount:      s.ItemsCount,
	}
}
