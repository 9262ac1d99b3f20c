package main

import (
	"context"
	"log/slog"
	"os"

	"zakaz/config"
	"zakaz/internal/delivery"
	"zakaz/internal/delivery/api"
	apimiddleware "zakaz/internal/delivery/api/middleware"
	"zakaz/internal/delivery/api/router/handler"
	"zakaz/internal/delivery/middleware"
	"zakaz/internal/domain/repository"
	"zakaz/internal/infra/auth"
	"zakaz/internal/infra/cache"
	logs "zakaz/internal/infra/log"
	"zakaz/internal/infra/persistence/postgres"
	"zakaz/internal/infra/pubsub"
	"zakaz/internal/usecase/impl"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
	Logger     *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.NewRedisClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewShopRepository,
			postgres.NewProductRepository,
			newCategoryRepository,
			postgres.NewOrderRepository,
			postgres.NewRatingRepository,
			postgres.NewNotificationRepository,
			postgres.NewCourierLocationRepository,
			postgres.NewTransactionManager,
		),
	)
}

// newCategoryRepository serves categories from Redis when it is configured.
func newCategoryRepository(db *gorm.DB, client *redis.Client, cfg *config.Config, logger *slog.Logger) repository.CategoryRepository {
	primary := postgres.NewCategoryRepository(db)
	if client == nil {
		return primary
	}

	return cache.NewCachedCategoryRepository(primary, cache.NewRedisStore(client), cfg.Redis.CategoryCacheTTL, logger)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewShopService,
			impl.NewProductService,
			impl.NewOrderService,
			impl.NewRatingService,
			impl.NewCourierService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			apimiddleware.NewErrorMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewShopHandler,
			handler.NewProductHandler,
			handler.NewOrderHandler,
			handler.NewRatingHandler,
			handler.NewCourierHandler,
			handler.NewNotificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	go func() {
		g, gctx := errgroup.WithContext(ctx)
		for _, d := range params.Deliveries {
			g.Go(func() error {
				return d.Serve(gctx)
			})
		}
		if err := g.Wait(); err != nil {
			params.Logger.Error("Failed to start server", slog.Any("error", err))
			os.Exit(1)
		}
	}()
}
