package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"

	"quiz-cli/internal/app"
	"quiz-cli/internal/config"
	"quiz-cli/internal/domain"
	"quiz-cli/internal/infra/file"
	"quiz-cli/internal/infra/memory"
	pgstore "quiz-cli/internal/infra/postgres"
	redisstore "quiz-cli/internal/infra/redis"
	"quiz-cli/internal/infra/sqlite"
)

// openRecordStore builds the backend named by cfg.Storage.Driver. The returned
// close func releases connections and is never nil.
func openRecordStore(ctx context.Context, cfg config.Config, log *slog.Logger) (app.RecordStore, func(), error) {
	noop := func() {}
	log = log.With("driver", cfg.Storage.Driver)

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return memory.NewRecordStore(domain.SeedRecords()), noop, nil

	case config.DriverFile:
		log.Debug("using quiz file", "path", cfg.Storage.Path)
		return file.NewRecordStore(cfg.Storage.Path, domain.SeedRecords()), noop, nil

	case config.DriverRedis:
		if cfg.Redis.Addr == "" {
			return nil, noop, fmt.Errorf("redis addr not configured")
		}
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, noop, fmt.Errorf("connect redis: %w", err)
		}
		log.Debug("connected to redis", "addr", cfg.Redis.Addr)
		return redisstore.NewRecordStore(client, cfg.Redis.Key), func() { client.Close() }, nil

	case config.DriverPostgres:
		if err := runMigrationsWithConfig(ctx, cfg, log); err != nil {
			return nil, noop, err
		}
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, noop, fmt.Errorf("connect postgres: %w", err)
		}
		return pgstore.NewRecordStore(pool), pool.Close, nil

	case config.DriverSQLite:
		store, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, noop, fmt.Errorf("open sqlite %s: %w", cfg.SQLite.Path, err)
		}
		log.Debug("using sqlite database", "path", cfg.SQLite.Path)
		return store, func() { store.Close() }, nil
	}
	return nil, noop, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
