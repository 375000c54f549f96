package container

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"probagno/storefront/internal/cart"
	"probagno/storefront/internal/catalog"
	"probagno/storefront/internal/changefeed"
	"probagno/storefront/internal/client"
	"probagno/storefront/internal/config"
	"probagno/storefront/internal/domain/event"
	"probagno/storefront/internal/i18n"
	"probagno/storefront/internal/importer"
	"probagno/storefront/internal/repository"
	"probagno/storefront/internal/server"
	"probagno/storefront/internal/state"
)

// Container holds all initialized components
type Container struct {
	Config     *config.Config
	Repository repository.CatalogRepository
	Catalog    *catalog.Service
	Carts      cart.Store
	Feed       changefeed.Feed
	Server     *server.Server
	Importer   *importer.Importer

	db    *pgxpool.Pool
	redis *redis.Client
}

// New creates a new container with all dependencies initialized
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	repo, err := container.newRepository(ctx)
	if err != nil {
		return nil, err
	}
	container.Repository = repo

	var (
		snapshots catalog.SnapshotCache
		publisher catalog.Publisher
	)
	container.Carts = cart.NewMemoryStore()

	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})

		if _, err := rdb.Ping(ctx).Result(); err != nil {
			container.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Info("✅ Connected to Redis successfully")
		container.redis = rdb

		feed, err := changefeed.NewRedisFeed(rdb, cfg.Redis, instanceName())
		if err != nil {
			container.Close()
			return nil, err
		}
		container.Feed = feed
		publisher = feed

		snapshots = state.NewRedisSnapshotStore(rdb, time.Duration(cfg.Catalog.SnapshotTTL)*time.Second)
		container.Carts = cart.NewRedisStore(rdb, time.Duration(cfg.Redis.CartTTL)*time.Second)
	} else {
		log.Warn("⚠️ Redis disabled: carts are kept in memory and changes are not shared")
	}

	svc, err := catalog.NewService(repo, snapshots, publisher, cfg.Catalog.QueryCacheSize)
	if err != nil {
		container.Close()
		return nil, err
	}
	container.Catalog = svc

	container.Server = server.New(cfg.Server, svc, container.Carts, i18n.New())
	container.Importer = importer.New(cfg.Importer, svc)

	return container, nil
}

func (c *Container) newRepository(ctx context.Context) (repository.CatalogRepository, error) {
	switch c.Config.Backend.Driver {
	case config.DriverREST:
		log.Infof("🔗 Using REST backend at %s", c.Config.Backend.BaseURL)
		return client.NewCatalogClient(c.Config.Backend), nil
	default:
		db, err := pgxpool.New(ctx, c.Config.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
		}
		if err := repository.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		c.db = db
		log.Info("✅ Connected to Postgres successfully")
		return repository.NewCatalogRepository(db), nil
	}
}

func instanceName() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return fmt.Sprintf("instance-%d", os.Getpid())
	}
	return host
}

// Run serves the HTTP API, follows the change feed and refreshes the catalog on schedule
func (c *Container) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.Server.Run(ctx)
	})

	if c.Feed != nil {
		g.Go(func() error {
			return c.Feed.Run(ctx, func(ctx context.Context, e event.Event) error {
				c.Catalog.HandleEvent(ctx, e)
				return nil
			})
		})
	}

	g.Go(func() error {
		return c.runScheduler(ctx)
	})

	return g.Wait()
}

func (c *Container) runScheduler(ctx context.Context) error {
	scheduler := cron.New()
	_, err := scheduler.AddFunc(c.Config.Catalog.RefreshSchedule, func() {
		count := c.Catalog.Refresh(ctx)
		log.Infof("🔄 Scheduled refresh loaded %d products", count)
	})
	if err != nil {
		return fmt.Errorf("failed to register refresh job %q: %w", c.Config.Catalog.RefreshSchedule, err)
	}

	scheduler.Start()
	log.Infof("⏰ Catalog refresh scheduled %s", c.Config.Catalog.RefreshSchedule)

	<-ctx.Done()
	<-scheduler.Stop().Done()
	return nil
}

// Import runs a one-shot import from the legacy shop
func (c *Container) Import(ctx context.Context) (int, error) {
	return c.Importer.Run(ctx)
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Info("Shutting down container...")

	if c.Importer != nil {
		if err := c.Importer.Close(); err != nil {
			log.Warnf("⚠️ Failed to close importer client: %v", err)
		}
	}
	if closer, ok := c.Repository.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			log.Warnf("⚠️ Failed to close backend client: %v", err)
		}
	}
	if c.db != nil {
		c.db.Close()
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Warnf("⚠️ Failed to close Redis client: %v", err)
		}
	}

	log.Info("Container shut down successfully")
	return nil
}
