package repository

import (
	"context"
	"time"

	"hotelcart/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificationRepository enqueues outbound notification jobs as rows in the
// checkout transaction; a separate worker drains the table.
type NotificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx pgx.Tx, topic string, payload []byte, runAt time.Time) error {
	const query = `
		INSERT INTO notification_jobs (topic, payload, run_at, status)
		VALUES ($1, $2, $3, 'pending')`

	if _, err := tx.Exec(ctx, query, topic, payload, runAt); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
