package queries

import (
	"context"

	"hotelcart/internal/pkg/errs"
)

// Read models for the guest-facing catalog pages.
type RoomView struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Capacity         int32  `json:"capacity"`
	NightlyRateCents int64  `json:"nightly_rate_cents"`
	Available        bool   `json:"available"`
}

type MenuItemView struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Available      bool   `json:"available"`
}

type AddonView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
}

type CatalogReadStore interface {
	ListRooms(ctx context.Context) ([]RoomView, error)
	ListMenuItems(ctx context.Context) ([]MenuItemView, error)
	ListAddons(ctx context.Context) ([]AddonView, error)
}

type CatalogQueries interface {
	ListRooms(ctx context.Context) ([]RoomView, error)
	ListMenuItems(ctx context.Context) ([]MenuItemView, error)
	ListAddons(ctx context.Context) ([]AddonView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListRooms(ctx context.Context) ([]RoomView, error) {
	rooms, err := q.store.ListRooms(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list rooms")
	}
	return rooms, nil
}

func (q *catalogQueriesImpl) ListMenuItems(ctx context.Context) ([]MenuItemView, error) {
	items, err := q.store.ListMenuItems(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list menu items")
	}
	return items, nil
}

func (q *catalogQueriesImpl) ListAddons(ctx context.Context) ([]AddonView, error) {
	addons, err := q.store.ListAddons(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list add-ons")
	}
	return addons, nil
}
