package queries

import (
	"context"

	"hotelcart/internal/domain/cart"
	"hotelcart/internal/pkg/config"
	"hotelcart/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCartStoreFailed = errs.New("cart store operation failed")

// CartReadStore is the read side of the session store.
type CartReadStore interface {
	Load(ctx context.Context, sessionID uuid.UUID) (*cart.Cart, error)
}

type CartQueries interface {
	RoomCartSummary(ctx context.Context, sessionID uuid.UUID) (*cart.RoomCartSummary, error)
	OrderCartSummary(ctx context.Context, sessionID uuid.UUID) (*cart.OrderCartSummary, error)
}

type cartQueriesImpl struct {
	store   CartReadStore
	cartCfg config.CartConfig
}

func NewCartQueries(store CartReadStore, cfg config.Config) CartQueries {
	return &cartQueriesImpl{
		store:   store,
		cartCfg: cfg.Cart,
	}
}

func (q *cartQueriesImpl) RoomCartSummary(ctx context.Context, sessionID uuid.UUID) (*cart.RoomCartSummary, error) {
	c, err := q.store.Load(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrCartStoreFailed)
	}
	summary := c.RoomSummary()
	return &summary, nil
}

func (q *cartQueriesImpl) OrderCartSummary(ctx context.Context, sessionID uuid.UUID) (*cart.OrderCartSummary, error) {
	c, err := q.store.Load(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrCartStoreFailed)
	}
	summary := c.OrderSummary(q.cartCfg.VATRate)
	return &summary, nil
}
