package repository

import (
	"context"
	"errors"

	"hotelcart/internal/infra"
	"hotelcart/internal/usecase/commands"
	"hotelcart/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogRepository is the read path for sellable things: room types, menu
// items and booking add-ons. It serves both the add-to-cart lookups
// (commands.CatalogReader) and the listing pages (queries.CatalogReadStore).
type CatalogRepository struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) FindRoomByID(ctx context.Context, id string) (*commands.RoomSnapshot, error) {
	const query = `
		SELECT id, name, nightly_rate_cents
		FROM room_types
		WHERE id = $1 AND available`

	var snap commands.RoomSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.Name, &snap.NightlyRateCents)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return &snap, nil
}

func (r *CatalogRepository) FindMenuItemByID(ctx context.Context, id string) (*commands.MenuItemSnapshot, error) {
	const query = `
		SELECT id, name, unit_price_cents
		FROM menu_items
		WHERE id = $1 AND available`

	var snap commands.MenuItemSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.Name, &snap.UnitPriceCents)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("menu item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find menu item", err)
	}
	return &snap, nil
}

func (r *CatalogRepository) FindAddonByID(ctx context.Context, id string) (*commands.AddonSnapshot, error) {
	const query = `
		SELECT id, name, price_cents
		FROM addons
		WHERE id = $1`

	var snap commands.AddonSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.Name, &snap.PriceCents)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("add-on not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find add-on", err)
	}
	return &snap, nil
}

func (r *CatalogRepository) ListRooms(ctx context.Context) ([]queries.RoomView, error) {
	const query = `
		SELECT id, name, description, capacity, nightly_rate_cents, available
		FROM room_types
		ORDER BY nightly_rate_cents`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var views []queries.RoomView
	for rows.Next() {
		var v queries.RoomView
		if err := rows.Scan(&v.ID, &v.Name, &v.Description, &v.Capacity, &v.NightlyRateCents, &v.Available); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}
	return views, nil
}

func (r *CatalogRepository) ListMenuItems(ctx context.Context) ([]queries.MenuItemView, error) {
	const query = `
		SELECT id, name, description, category, unit_price_cents, available
		FROM menu_items
		ORDER BY category, name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu items", err)
	}
	defer rows.Close()

	var views []queries.MenuItemView
	for rows.Next() {
		var v queries.MenuItemView
		if err := rows.Scan(&v.ID, &v.Name, &v.Description, &v.Category, &v.UnitPriceCents, &v.Available); err != nil {
			return nil, infra.WrapRepoErr("failed to scan menu item row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate menu item rows", err)
	}
	return views, nil
}

func (r *CatalogRepository) ListAddons(ctx context.Context) ([]queries.AddonView, error) {
	const query = `
		SELECT id, name, description, price_cents
		FROM addons
		ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list add-ons", err)
	}
	defer rows.Close()

	var views []queries.AddonView
	for rows.Next() {
		var v queries.AddonView
		if err := rows.Scan(&v.ID, &v.Name, &v.Description, &v.PriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan add-on row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate add-on rows", err)
	}
	return views, nil
}
