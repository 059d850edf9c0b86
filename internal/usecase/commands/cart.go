package commands

import (
	"context"
	"time"

	"hotelcart/internal/domain/cart"
	"hotelcart/internal/infra"
	"hotelcart/internal/pkg/config"
	"hotelcart/internal/pkg/errs"
	"hotelcart/internal/pkg/sessionlock"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound     = errs.New("room not found")
	ErrMenuItemNotFound = errs.New("menu item not found")
	ErrAddonNotFound    = errs.New("add-on not found")
	ErrLineNotFound     = errs.New("cart line not found")
	ErrInvalidStayRange = errs.New("invalid stay range")
	ErrEmptyRoomCart    = errs.New("room cart is empty")
	ErrCartStoreFailed  = errs.New("cart store operation failed")
)

type CartCommands interface {
	AddRoom(ctx context.Context, sessionID uuid.UUID, roomID string, checkIn, checkOut time.Time) (*cart.RoomCartSummary, error)
	RescheduleRoom(ctx context.Context, sessionID uuid.UUID, roomID string, checkIn, checkOut time.Time) (*cart.RoomCartSummary, error)
	RescheduleAllRooms(ctx context.Context, sessionID uuid.UUID, checkIn, checkOut time.Time) (*cart.RoomCartSummary, error)
	RemoveRoom(ctx context.Context, sessionID uuid.UUID, roomID string) (*cart.RoomCartSummary, error)

	AddItem(ctx context.Context, sessionID uuid.UUID, itemID string, quantity int) (*cart.OrderCartSummary, error)
	SetItemQuantity(ctx context.Context, sessionID uuid.UUID, itemID string, quantity int) (*cart.OrderCartSummary, error)
	RemoveItem(ctx context.Context, sessionID uuid.UUID, itemID string) (*cart.OrderCartSummary, error)

	PutAddon(ctx context.Context, sessionID uuid.UUID, addonID string) (*cart.RoomCartSummary, error)
	RemoveAddon(ctx context.Context, sessionID uuid.UUID, addonID string) (*cart.RoomCartSummary, error)

	ClearCart(ctx context.Context, sessionID uuid.UUID) error
}

type cartCommandsImpl struct {
	store   CartStore
	catalog CatalogReader
	locks   *sessionlock.KeyedMutex
	cartCfg config.CartConfig
}

func NewCartCommands(
	store CartStore,
	catalog CatalogReader,
	locks *sessionlock.KeyedMutex,
	cfg config.Config,
) CartCommands {
	return &cartCommandsImpl{
		store:   store,
		catalog: catalog,
		locks:   locks,
		cartCfg: cfg.Cart,
	}
}

// mutate runs one locked load-mutate-save cycle for the session.
func (u *cartCommandsImpl) mutate(
	ctx context.Context,
	sessionID uuid.UUID,
	fn func(c *cart.Cart) error,
) (*cart.Cart, error) {
	unlock := u.locks.Lock(sessionID.String())
	defer unlock()

	c, err := u.store.Load(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrCartStoreFailed)
	}

	if err := fn(c); err != nil {
		return nil, err
	}

	if err := u.store.Save(ctx, sessionID, c); err != nil {
		return nil, errs.Mark(err, ErrCartStoreFailed)
	}
	return c, nil
}

func (u *cartCommandsImpl) AddRoom(
	ctx context.Context,
	sessionID uuid.UUID,
	roomID string,
	checkIn, checkOut time.Time,
) (*cart.RoomCartSummary, error) {
	stay, err := cart.NewStayRange(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayRange)
	}

	room, err := u.catalog.FindRoomByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Wrap(err, "failed to look up room")
	}

	c, err := u.mutate(ctx, sessionID, func(c *cart.Cart) error {
		c.UpsertRoom(room.ID, room.Name, room.NightlyRateCents, stay)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summaryPtr(c.RoomSummary()), nil
}

func (u *cartCommandsImpl) RescheduleRoom(
	ctx context.Context,
	sessionID uuid.UUID,
	roomID string,
	checkIn, checkOut time.Time,
) (*cart.RoomCartSummary, error) {
	stay, err := cart.NewStayRange(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayRange)
	}

	c, err := u.mutate(ctx, sessionID, func(c *cart.Cart) error {
		if err := c.RescheduleRoom(roomID, stay); err != nil {
			return errs.Mark(err, ErrLineNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summaryPtr(c.RoomSummary()), nil
}

func (u *cartCommandsImpl) RescheduleAllRooms(
	ctx context.Context,
	sessionID uuid.UUID,
	checkIn, checkOut time.Time,
) (*cart.RoomCartSummary, error) {
	stay, err := cart.NewStayRange(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayRange)
	}

	c, err := u.mutate(ctx, sessionID, func(c *cart.Cart) error {
		if err := c.RescheduleAllRooms(stay); err != nil {
			return errs.Mark(err, ErrEmptyRoomCart)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summaryPtr(c.RoomSummary()), nil
}

func (u *cartCommandsImpl) RemoveRoom(
	ctx context.Context,
	sessionID uuid.UUID,
	roomID string,
) (*cart.RoomCartSummary, error) {
	c, err := u.mutate(ctx, sessionID, func(c *cart.Cart) error {
		if !c.RemoveRoom(roomID) {
			return ErrLineNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summaryPtr(c.RoomSummary()), nil
}

func (u *cartCommandsImpl) AddItem(
	ctx context.Context,
	sessionID uuid.UUID,
	itemID string,
	quantity int,
) (*cart.OrderCartSummary, error) {
	item, err := u.catalog.FindMenuItemByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, errs.Wrap(err, "failed to look up menu item")
	}

	c, err := u.mutate(ctx, sessionID, func(c *cart.Cart) error {
		c.AddItem(item.ID, item.Name, item.UnitPriceCents, quantity)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summaryPtr(c.OrderSummary(u.cartCfg.VATRate)), nil
}

func (u *cartCommandsImpl) SetItemQuantity(
	ctx context.Context,
	sessionID uuid.UUID,
	itemID string,
	quantity int,
) (*cart.OrderCartSummary, error) {
	c, err := u.mutate(ctx, sessionID, func(c *cart.Cart) error {
		if err := c.SetItemQuantity(itemID, quantity); err != nil {
			return errs.Mark(err, ErrLineNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summaryPtr(c.OrderSummary(u.cartCfg.VATRate)), nil
}

func (u *cartCommandsImpl) RemoveItem(
	ctx context.Context,
	sessionID uuid.UUID,
	itemID string,
) (*cart.OrderCartSummary, error) {
	c, err := u.mutate(ctx, sessionID, func(c *cart.Cart) error {
		if !c.RemoveItem(itemID) {
			return ErrLineNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summaryPtr(c.OrderSummary(u.cartCfg.VATRate)), nil
}

func (u *cartCommandsImpl) PutAddon(
	ctx context.Context,
	sessionID uuid.UUID,
	addonID string,
) (*cart.RoomCartSummary, error) {
	addon, err := u.catalog.FindAddonByID(ctx, addonID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAddonNotFound
		}
		return nil, errs.Wrap(err, "failed to look up add-on")
	}

	c, err := u.mutate(ctx, sessionID, func(c *cart.Cart) error {
		c.PutAddon(addon.ID, addon.Name, addon.PriceCents)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summaryPtr(c.RoomSummary()), nil
}

func (u *cartCommandsImpl) RemoveAddon(
	ctx context.Context,
	sessionID uuid.UUID,
	addonID string,
) (*cart.RoomCartSummary, error) {
	c, err := u.mutate(ctx, sessionID, func(c *cart.Cart) error {
		if !c.RemoveAddon(addonID) {
			return ErrLineNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summaryPtr(c.RoomSummary()), nil
}

func (u *cartCommandsImpl) ClearCart(ctx context.Context, sessionID uuid.UUID) error {
	unlock := u.locks.Lock(sessionID.String())
	defer unlock()

	if err := u.store.Delete(ctx, sessionID); err != nil {
		return errs.Mark(err, ErrCartStoreFailed)
	}
	return nil
}

func summaryPtr[T any](s T) *T {
	return &s
}
