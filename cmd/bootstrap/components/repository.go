package components

import (
	repo_impl "hotelcart/internal/infra/repository"
	"hotelcart/internal/infra/sessionstore"
	"hotelcart/internal/pkg/config"
	"hotelcart/internal/usecase/commands"
	"hotelcart/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			NewCartSessionStore,
			fx.As(new(sessionstore.Store)),
			fx.As(new(commands.CartStore)),
			fx.As(new(queries.CartReadStore)),
		),
		fx.Annotate(
			repo_impl.NewCatalogRepository,
			fx.As(new(commands.CatalogReader)),
			fx.As(new(queries.CatalogReadStore)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingWriter)),
		),
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(commands.OrderWriter)),
		),
		fx.Annotate(
			repo_impl.NewNotificationRepository,
			fx.As(new(commands.NotificationJobs)),
		),
	),
)

func NewCartSessionStore(client *redis.Client, cfg config.Config) *sessionstore.RedisStore {
	return sessionstore.NewRedisStore(client, cfg.Cart.TTL)
}
