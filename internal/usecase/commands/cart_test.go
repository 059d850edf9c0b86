//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"hotelcart/internal/infra"
	"hotelcart/internal/infra/sessionstore"
	"hotelcart/internal/pkg/config"
	"hotelcart/internal/pkg/sessionlock"
	"hotelcart/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalog serves a fixed catalog without a database.
type fakeCatalog struct {
	rooms  map[string]commands.RoomSnapshot
	items  map[string]commands.MenuItemSnapshot
	addons map[string]commands.AddonSnapshot
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		rooms: map[string]commands.RoomSnapshot{
			"deluxe-01":   {ID: "deluxe-01", Name: "Deluxe Suite", NightlyRateCents: 1500_00},
			"standard-01": {ID: "standard-01", Name: "Standard Room", NightlyRateCents: 800_00},
		},
		items: map[string]commands.MenuItemSnapshot{
			"burger": {ID: "burger", Name: "Beef Burger", UnitPriceCents: 450_00},
			"juice":  {ID: "juice", Name: "Passion Juice", UnitPriceCents: 150_00},
		},
		addons: map[string]commands.AddonSnapshot{
			"airport-shuttle": {ID: "airport-shuttle", Name: "Airport Shuttle", PriceCents: 500_00},
		},
	}
}

func (f *fakeCatalog) FindRoomByID(_ context.Context, id string) (*commands.RoomSnapshot, error) {
	if r, ok := f.rooms[id]; ok {
		return &r, nil
	}
	return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
}

func (f *fakeCatalog) FindMenuItemByID(_ context.Context, id string) (*commands.MenuItemSnapshot, error) {
	if i, ok := f.items[id]; ok {
		return &i, nil
	}
	return nil, infra.WrapRepoErr("menu item not found", nil, infra.KindNotFound)
}

func (f *fakeCatalog) FindAddonByID(_ context.Context, id string) (*commands.AddonSnapshot, error) {
	if a, ok := f.addons[id]; ok {
		return &a, nil
	}
	return nil, infra.WrapRepoErr("add-on not found", nil, infra.KindNotFound)
}

func setupCartCommands(t *testing.T) (commands.CartCommands, *sessionstore.MemoryStore) {
	t.Helper()
	store := sessionstore.NewMemoryStore()
	uc := commands.NewCartCommands(store, newFakeCatalog(), sessionlock.New(), config.NewTestConfig())
	return uc, store
}

func stay(t *testing.T) (time.Time, time.Time) {
	t.Helper()
	checkIn := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	return checkIn, checkIn.AddDate(0, 0, 2)
}

func TestCartCommands_AddRoom(t *testing.T) {
	ctx := context.Background()
	uc, _ := setupCartCommands(t)
	sessionID := uuid.New()
	checkIn, checkOut := stay(t)

	t.Run("prices the stay from the catalog", func(t *testing.T) {
		summary, err := uc.AddRoom(ctx, sessionID, "deluxe-01", checkIn, checkOut)
		require.NoError(t, err)
		require.Len(t, summary.Rooms, 1)
		assert.Equal(t, 2, summary.Rooms[0].Nights)
		assert.Equal(t, int64(3000_00), summary.GrandTotalCents)
	})

	t.Run("re-adding the same room with same dates stays a single line", func(t *testing.T) {
		summary, err := uc.AddRoom(ctx, sessionID, "deluxe-01", checkIn, checkOut)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.RoomsCount)
		assert.Equal(t, int64(3000_00), summary.GrandTotalCents)
	})

	t.Run("re-adding with new dates reprices in place", func(t *testing.T) {
		summary, err := uc.AddRoom(ctx, sessionID, "deluxe-01", checkIn, checkIn.AddDate(0, 0, 5))
		require.NoError(t, err)
		require.Equal(t, 1, summary.RoomsCount)
		assert.Equal(t, 5, summary.Rooms[0].Nights)
		assert.Equal(t, int64(7500_00), summary.GrandTotalCents)
	})

	t.Run("rejects an inverted stay range", func(t *testing.T) {
		_, err := uc.AddRoom(ctx, sessionID, "deluxe-01", checkOut, checkIn)
		assert.ErrorIs(t, err, commands.ErrInvalidStayRange)
	})

	t.Run("rejects an unknown room", func(t *testing.T) {
		_, err := uc.AddRoom(ctx, sessionID, "penthouse-99", checkIn, checkOut)
		assert.ErrorIs(t, err, commands.ErrRoomNotFound)
	})
}

func TestCartCommands_RescheduleAllRooms(t *testing.T) {
	ctx := context.Background()
	uc, _ := setupCartCommands(t)
	sessionID := uuid.New()
	checkIn, checkOut := stay(t)

	t.Run("empty cart cannot be rescheduled", func(t *testing.T) {
		_, err := uc.RescheduleAllRooms(ctx, sessionID, checkIn, checkOut)
		assert.ErrorIs(t, err, commands.ErrEmptyRoomCart)
	})

	t.Run("applies one range to every line", func(t *testing.T) {
		_, err := uc.AddRoom(ctx, sessionID, "deluxe-01", checkIn, checkOut)
		require.NoError(t, err)
		_, err = uc.AddRoom(ctx, sessionID, "standard-01", checkIn, checkOut)
		require.NoError(t, err)

		summary, err := uc.RescheduleAllRooms(ctx, sessionID, checkIn, checkIn.AddDate(0, 0, 3))
		require.NoError(t, err)
		for _, line := range summary.Rooms {
			assert.Equal(t, 3, line.Nights)
		}
		assert.Equal(t, int64(3*(1500_00+800_00)), summary.RoomsTotalCents)
	})
}

func TestCartCommands_Items(t *testing.T) {
	ctx := context.Background()
	uc, _ := setupCartCommands(t)
	sessionID := uuid.New()

	t.Run("adding the same item accumulates quantity through the store", func(t *testing.T) {
		_, err := uc.AddItem(ctx, sessionID, "burger", 2)
		require.NoError(t, err)
		summary, err := uc.AddItem(ctx, sessionID, "burger", 3)
		require.NoError(t, err)

		require.Len(t, summary.Items, 1)
		assert.Equal(t, 5, summary.Items[0].Quantity)
		assert.Equal(t, int64(2250_00), summary.SubtotalCents)
	})

	t.Run("VAT is derived from the subtotal", func(t *testing.T) {
		summary, err := uc.AddItem(ctx, sessionID, "juice", 1)
		require.NoError(t, err)

		assert.Equal(t, int64(2400_00), summary.SubtotalCents)
		assert.Equal(t, int64(384_00), summary.TaxCents)
		assert.Equal(t, int64(2784_00), summary.GrandTotalCents)
	})

	t.Run("zero quantity removes the line", func(t *testing.T) {
		summary, err := uc.SetItemQuantity(ctx, sessionID, "juice", 0)
		require.NoError(t, err)
		require.Len(t, summary.Items, 1)
		assert.Equal(t, "burger", summary.Items[0].ItemID)
	})

	t.Run("updating a missing line fails", func(t *testing.T) {
		_, err := uc.SetItemQuantity(ctx, sessionID, "juice", 4)
		assert.ErrorIs(t, err, commands.ErrLineNotFound)
	})

	t.Run("unknown menu item is rejected before touching the cart", func(t *testing.T) {
		_, err := uc.AddItem(ctx, sessionID, "caviar", 1)
		assert.ErrorIs(t, err, commands.ErrMenuItemNotFound)
	})
}

func TestCartCommands_Addons(t *testing.T) {
	ctx := context.Background()
	uc, _ := setupCartCommands(t)
	sessionID := uuid.New()
	checkIn, checkOut := stay(t)

	_, err := uc.AddRoom(ctx, sessionID, "deluxe-01", checkIn, checkOut)
	require.NoError(t, err)

	t.Run("put is idempotent per add-on", func(t *testing.T) {
		_, err := uc.PutAddon(ctx, sessionID, "airport-shuttle")
		require.NoError(t, err)
		summary, err := uc.PutAddon(ctx, sessionID, "airport-shuttle")
		require.NoError(t, err)

		assert.Equal(t, 1, summary.AddonsCount)
		assert.Equal(t, int64(500_00), summary.AddonsCents)
		assert.Equal(t, int64(3500_00), summary.GrandTotalCents)
	})

	t.Run("removing a missing add-on fails", func(t *testing.T) {
		_, err := uc.RemoveAddon(ctx, sessionID, "spa")
		assert.ErrorIs(t, err, commands.ErrLineNotFound)
	})
}

func TestCartCommands_ClearCart(t *testing.T) {
	ctx := context.Background()
	uc, store := setupCartCommands(t)
	sessionID := uuid.New()
	checkIn, checkOut := stay(t)

	_, err := uc.AddRoom(ctx, sessionID, "deluxe-01", checkIn, checkOut)
	require.NoError(t, err)
	_, err = uc.AddItem(ctx, sessionID, "burger", 1)
	require.NoError(t, err)

	require.NoError(t, uc.ClearCart(ctx, sessionID))

	c, err := store.Load(ctx, sessionID)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestCartCommands_ConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	uc, store := setupCartCommands(t)
	sessionID := uuid.New()

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			_, err := uc.AddItem(ctx, sessionID, "burger", 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	c, err := store.Load(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	// No lost updates: every increment survived the load-mutate-save cycle
	assert.Equal(t, workers, c.Items[0].Quantity)
}
