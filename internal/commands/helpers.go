// Package commands implements the CLI subcommands for the batchwatch binary.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/batchwatch/batchwatch/internal/provider"
	ddbprov "github.com/batchwatch/batchwatch/internal/provider/dynamodb"
	fsprov "github.com/batchwatch/batchwatch/internal/provider/fs"
	"github.com/batchwatch/batchwatch/pkg/types"
)

// providers bundles the storage collaborators the commands need. Both
// backends implement all three roles, so the bundle points at one instance.
type providers struct {
	Batches  provider.BatchProvider
	Profiles provider.ProfileProvider
	Reports  provider.ReportStore
	Pinger   provider.Pinger

	// Start prepares the backend (table creation, connectivity check).
	Start func(ctx context.Context) error
}

// newProviders creates the configured storage backend, wrapped in circuit
// breakers on the read paths.
func newProviders(cfg *types.ProjectConfig, logger *slog.Logger) (*providers, error) {
	switch cfg.Provider {
	case "fs":
		p, err := fsprov.New(cfg.FS)
		if err != nil {
			return nil, err
		}
		return wrap(p, p.Ping, logger), nil
	case "dynamodb":
		p, err := ddbprov.New(cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		return wrap(p, p.Start, logger), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
}

// backend is the full set of roles one storage implementation provides.
type backend interface {
	provider.BatchProvider
	provider.ProfileProvider
	provider.ReportStore
	provider.Pinger
}

func wrap(b backend, start func(ctx context.Context) error, logger *slog.Logger) *providers {
	return &providers{
		Batches:  provider.NewBreakerBatchProvider(b, logger),
		Profiles: provider.NewBreakerProfileProvider(b, logger),
		Reports:  b,
		Pinger:   b,
		Start:    start,
	}
}

// concurrency reads the engine concurrency setting, zero meaning default.
func concurrency(cfg *types.ProjectConfig) int {
	if cfg.Engine != nil {
		return cfg.Engine.Concurrency
	}
	return 0
}
