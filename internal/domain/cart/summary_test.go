//go:build unit

package cart_test

import (
	"testing"

	"hotelcart/internal/domain/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vatRate = 0.16

func TestOrderSummary(t *testing.T) {
	t.Run("tax and grand total derive from subtotal", func(t *testing.T) {
		c := cart.New()
		c.AddItem("burger", "Burger", 400_00, 2)
		c.AddItem("juice", "Fresh Juice", 200_00, 1)

		summary := c.OrderSummary(vatRate)

		assert.Equal(t, int64(1000_00), summary.SubtotalCents)
		assert.Equal(t, int64(160_00), summary.TaxCents)
		assert.Equal(t, int64(1160_00), summary.GrandTotalCents)
		assert.Equal(t, 2, summary.ItemsCount)
	})

	t.Run("end to end from an empty cart", func(t *testing.T) {
		c := cart.New()
		c.AddItem("burger", "Burger", 450_00, 2)

		summary := c.OrderSummary(vatRate)

		require.Len(t, summary.Items, 1)
		assert.Equal(t, 2, summary.Items[0].Quantity)
		assert.Equal(t, int64(900_00), summary.Items[0].TotalCents)
		assert.Equal(t, int64(900_00), summary.SubtotalCents)
		assert.Equal(t, int64(144_00), summary.TaxCents)
		assert.Equal(t, int64(1044_00), summary.GrandTotalCents)
		assert.Equal(t, 1, summary.ItemsCount)
	})

	t.Run("empty cart yields zero totals", func(t *testing.T) {
		summary := cart.New().OrderSummary(vatRate)

		assert.Empty(t, summary.Items)
		assert.Equal(t, int64(0), summary.SubtotalCents)
		assert.Equal(t, int64(0), summary.TaxCents)
		assert.Equal(t, int64(0), summary.GrandTotalCents)
	})

	t.Run("odd subtotals round tax to the nearest cent", func(t *testing.T) {
		c := cart.New()
		c.AddItem("mint", "Mints", 3, 1) // 3 cents, 16% = 0.48 cents

		summary := c.OrderSummary(vatRate)
		assert.Equal(t, int64(0), summary.TaxCents)

		c.AddItem("mint", "Mints", 3, 3) // 12 cents, 16% = 1.92 cents
		summary = c.OrderSummary(vatRate)
		assert.Equal(t, int64(2), summary.TaxCents)
	})
}

func TestRoomSummary(t *testing.T) {
	t.Run("rooms and add-ons combine into the grand total", func(t *testing.T) {
		c := cart.New()
		stay := mustStay(t, date(2026, 3, 10), date(2026, 3, 12))
		c.UpsertRoom("deluxe-101", "Deluxe Room", 8500_00, stay)
		c.PutAddon("spa", "Spa Package", 500_00)

		summary := c.RoomSummary()

		assert.Equal(t, int64(17000_00), summary.RoomsTotalCents)
		assert.Equal(t, int64(500_00), summary.AddonsCents)
		assert.Equal(t, int64(17500_00), summary.GrandTotalCents)
		assert.Equal(t, 1, summary.RoomsCount)
		assert.Equal(t, 1, summary.AddonsCount)
	})

	t.Run("empty cart yields zero totals", func(t *testing.T) {
		summary := cart.New().RoomSummary()

		assert.Equal(t, int64(0), summary.GrandTotalCents)
		assert.Equal(t, 0, summary.RoomsCount)
		assert.Equal(t, 0, summary.AddonsCount)
	})
}
