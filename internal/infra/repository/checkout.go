package repository

import (
	"context"
	"errors"

	"hotelcart/internal/infra"
	"hotelcart/internal/usecase/commands"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// BookingRepository persists committed room-cart checkouts. All writes take
// the caller's transaction so the booking, its lines and the notification
// job commit atomically.
type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) CreateBooking(ctx context.Context, tx pgx.Tx, rec *commands.BookingRecord) error {
	const insertBooking = `
		INSERT INTO bookings (id, session_id, guest_name, guest_email, total_cents, status, created_at)
		VALUES ($1, $2, $3, $4, $5, 'pending', $6)`

	_, err := tx.Exec(ctx, insertBooking,
		rec.ID, rec.SessionID, rec.GuestName, rec.GuestEmail, rec.TotalCents, rec.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("booking already exists", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to insert booking", err)
	}

	const insertRoom = `
		INSERT INTO booking_rooms (booking_id, room_id, room_name, check_in, check_out, nights, nightly_rate_cents, total_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	for _, room := range rec.Rooms {
		_, err := tx.Exec(ctx, insertRoom,
			rec.ID, room.RoomID, room.RoomName, room.CheckIn, room.CheckOut,
			room.Nights, room.NightlyRateCents, room.TotalCents)
		if err != nil {
			return infra.WrapRepoErr("failed to insert booking room", err)
		}
	}

	const insertAddon = `
		INSERT INTO booking_addons (booking_id, addon_id, addon_name, price_cents)
		VALUES ($1, $2, $3, $4)`

	for _, addon := range rec.Addons {
		_, err := tx.Exec(ctx, insertAddon, rec.ID, addon.AddonID, addon.AddonName, addon.PriceCents)
		if err != nil {
			return infra.WrapRepoErr("failed to insert booking add-on", err)
		}
	}

	return nil
}

// OrderRepository persists committed order-cart checkouts.
type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, rec *commands.OrderRecord) error {
	const insertOrder = `
		INSERT INTO orders (id, session_id, guest_name, room_number, subtotal_cents, tax_cents, total_cents, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'pending', $8)`

	_, err := tx.Exec(ctx, insertOrder,
		rec.ID, rec.SessionID, rec.GuestName, rec.RoomNumber,
		rec.SubtotalCents, rec.TaxCents, rec.TotalCents, rec.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("order already exists", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to insert order", err)
	}

	const insertItem = `
		INSERT INTO order_items (order_id, item_id, item_name, unit_price_cents, quantity, total_cents)
		VALUES ($1, $2, $3, $4, $5, $6)`

	for _, item := range rec.Items {
		_, err := tx.Exec(ctx, insertItem,
			rec.ID, item.ItemID, item.ItemName, item.UnitPriceCents, item.Quantity, item.TotalCents)
		if err != nil {
			return infra.WrapRepoErr("failed to insert order item", err)
		}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == uniqueViolation
}
