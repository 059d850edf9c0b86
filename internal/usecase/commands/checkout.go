package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"hotelcart/internal/pkg/clock"
	"hotelcart/internal/pkg/config"
	"hotelcart/internal/pkg/errs"
	"hotelcart/internal/pkg/sessionlock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNothingToCheckout       = errs.New("cart has nothing to check out")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type GuestDetails struct {
	Name       string
	Email      string
	RoomNumber *string
}

type CheckoutBookingResult struct {
	BookingID  uuid.UUID
	TotalCents int64
}

type CheckoutOrderResult struct {
	OrderID       uuid.UUID
	SubtotalCents int64
	TaxCents      int64
	TotalCents    int64
}

type CheckoutCommands interface {
	CheckoutBooking(ctx context.Context, sessionID uuid.UUID, guest GuestDetails) (*CheckoutBookingResult, error)
	CheckoutOrder(ctx context.Context, sessionID uuid.UUID, guest GuestDetails) (*CheckoutOrderResult, error)
}

type checkoutCommandsImpl struct {
	store         CartStore
	bookingWriter BookingWriter
	orderWriter   OrderWriter
	notifications NotificationJobs
	locks         *sessionlock.KeyedMutex
	db            *pgxpool.Pool
	clock         clock.Clock
	cartCfg       config.CartConfig
}

func NewCheckoutCommands(
	store CartStore,
	bookingWriter BookingWriter,
	orderWriter OrderWriter,
	notifications NotificationJobs,
	locks *sessionlock.KeyedMutex,
	db *pgxpool.Pool,
	clk clock.Clock,
	cfg config.Config,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		store:         store,
		bookingWriter: bookingWriter,
		orderWriter:   orderWriter,
		notifications: notifications,
		locks:         locks,
		db:            db,
		clock:         clk,
		cartCfg:       cfg.Cart,
	}
}

// CheckoutBooking commits the room side of the cart (rooms plus add-ons)
// into booking rows, enqueues a notification job in the same transaction and
// clears the committed lines. The session lock is held across the whole
// read-commit-clear cycle so a concurrent cart mutation cannot slip between
// the commit and the clear.
func (u *checkoutCommandsImpl) CheckoutBooking(
	ctx context.Context,
	sessionID uuid.UUID,
	guest GuestDetails,
) (*CheckoutBookingResult, error) {
	unlock := u.locks.Lock(sessionID.String())
	defer unlock()

	c, err := u.store.Load(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrCartStoreFailed)
	}
	if len(c.Rooms) == 0 {
		return nil, ErrNothingToCheckout
	}

	summary := c.RoomSummary()
	rec := &BookingRecord{
		ID:         uuid.New(),
		SessionID:  sessionID,
		GuestName:  guest.Name,
		GuestEmail: guest.Email,
		Rooms:      summary.Rooms,
		Addons:     summary.Addons,
		TotalCents: summary.GrandTotalCents,
		CreatedAt:  u.clock.Now(),
	}

	err = u.inTx(ctx, func(tx pgx.Tx) error {
		if err := u.bookingWriter.CreateBooking(ctx, tx, rec); err != nil {
			return err
		}
		payload, err := json.Marshal(map[string]any{
			"booking_id":  rec.ID,
			"guest_email": rec.GuestEmail,
			"total_cents": rec.TotalCents,
		})
		if err != nil {
			return err
		}
		return u.notifications.CreateJob(ctx, tx, "booking_created", payload, u.clock.Now())
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	c.ClearRooms()
	if err := u.store.Save(ctx, sessionID, c); err != nil {
		// The booking is committed; a stale cart is recoverable, losing the
		// booking is not.
		slog.Warn("booking committed but cart clear failed", "session_id", sessionID, "error", err)
	}

	return &CheckoutBookingResult{
		BookingID:  rec.ID,
		TotalCents: rec.TotalCents,
	}, nil
}

// CheckoutOrder commits the food/beverage side of the cart into order rows
// with VAT applied, mirroring CheckoutBooking.
func (u *checkoutCommandsImpl) CheckoutOrder(
	ctx context.Context,
	sessionID uuid.UUID,
	guest GuestDetails,
) (*CheckoutOrderResult, error) {
	unlock := u.locks.Lock(sessionID.String())
	defer unlock()

	c, err := u.store.Load(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrCartStoreFailed)
	}
	if len(c.Items) == 0 {
		return nil, ErrNothingToCheckout
	}

	summary := c.OrderSummary(u.cartCfg.VATRate)
	rec := &OrderRecord{
		ID:            uuid.New(),
		SessionID:     sessionID,
		GuestName:     guest.Name,
		RoomNumber:    guest.RoomNumber,
		Items:         summary.Items,
		SubtotalCents: summary.SubtotalCents,
		TaxCents:      summary.TaxCents,
		TotalCents:    summary.GrandTotalCents,
		CreatedAt:     u.clock.Now(),
	}

	err = u.inTx(ctx, func(tx pgx.Tx) error {
		if err := u.orderWriter.CreateOrder(ctx, tx, rec); err != nil {
			return err
		}
		payload, err := json.Marshal(map[string]any{
			"order_id":    rec.ID,
			"guest_name":  rec.GuestName,
			"total_cents": rec.TotalCents,
		})
		if err != nil {
			return err
		}
		return u.notifications.CreateJob(ctx, tx, "order_created", payload, u.clock.Now())
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	c.ClearItems()
	if err := u.store.Save(ctx, sessionID, c); err != nil {
		slog.Warn("order committed but cart clear failed", "session_id", sessionID, "error", err)
	}

	return &CheckoutOrderResult{
		OrderID:       rec.ID,
		SubtotalCents: rec.SubtotalCents,
		TaxCents:      rec.TaxCents,
		TotalCents:    rec.TotalCents,
	}, nil
}

func (u *checkoutCommandsImpl) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
