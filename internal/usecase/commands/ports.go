package commands

import (
	"context"
	"time"

	"hotelcart/internal/domain/cart"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CartStore is the per-session persistence substrate behind the carts.
type CartStore interface {
	Load(ctx context.Context, sessionID uuid.UUID) (*cart.Cart, error)
	Save(ctx context.Context, sessionID uuid.UUID, c *cart.Cart) error
	Delete(ctx context.Context, sessionID uuid.UUID) error
}

// Catalog snapshots carry the canonical name/price of a sellable thing at
// the moment it is added to a cart.
type RoomSnapshot struct {
	ID               string
	Name             string
	NightlyRateCents int64
}

type MenuItemSnapshot struct {
	ID             string
	Name           string
	UnitPriceCents int64
}

type AddonSnapshot struct {
	ID         string
	Name       string
	PriceCents int64
}

// CatalogReader is the lookup service: identifier in, current price out.
type CatalogReader interface {
	FindRoomByID(ctx context.Context, id string) (*RoomSnapshot, error)
	FindMenuItemByID(ctx context.Context, id string) (*MenuItemSnapshot, error)
	FindAddonByID(ctx context.Context, id string) (*AddonSnapshot, error)
}

// BookingRecord is a committed room-cart checkout.
type BookingRecord struct {
	ID         uuid.UUID
	SessionID  uuid.UUID
	GuestName  string
	GuestEmail string
	Rooms      []cart.RoomLine
	Addons     []cart.AddonLine
	TotalCents int64
	CreatedAt  time.Time
}

// OrderRecord is a committed order-cart checkout.
type OrderRecord struct {
	ID            uuid.UUID
	SessionID     uuid.UUID
	GuestName     string
	RoomNumber    *string
	Items         []cart.OrderLine
	SubtotalCents int64
	TaxCents      int64
	TotalCents    int64
	CreatedAt     time.Time
}

type BookingWriter interface {
	CreateBooking(ctx context.Context, tx pgx.Tx, rec *BookingRecord) error
}

type OrderWriter interface {
	CreateOrder(ctx context.Context, tx pgx.Tx, rec *OrderRecord) error
}

type NotificationJobs interface {
	CreateJob(ctx context.Context, tx pgx.Tx, topic string, payload []byte, runAt time.Time) error
}
