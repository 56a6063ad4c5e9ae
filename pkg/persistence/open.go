package persistence

import (
	"context"
	"log/slog"

	"github.com/delver-project/delver/pkg/config"
	"github.com/delver-project/delver/pkg/database"
)

// Open selects the persistence backend from configuration. A set
// PERSISTENCE_URL yields the durable PostgreSQL store wrapped with the
// in-memory degradation fallback; an empty URL, or an unreachable database,
// yields the plain in-memory store. Open never refuses to start the service
// over persistence.
func Open(ctx context.Context, cfg config.PersistenceConfig) Store {
	if cfg.URL == "" {
		slog.Info("PERSISTENCE_URL not set, using in-memory store")
		return NewMemoryStore()
	}

	client, err := database.NewClient(ctx, database.Config{
		URL:             cfg.URL,
		Database:        cfg.DBName,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
	})
	if err != nil {
		slog.Warn("Durable persistence unavailable, starting with in-memory store",
			"error", err)
		return NewMemoryStore()
	}

	slog.Info("Durable persistence connected", "database", cfg.DBName)
	return NewDegradingStore(NewPostgresStore(client), NewMemoryStore())
}
