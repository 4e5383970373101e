// Package lambda provides shared types and initialization for Lambda handlers.
package lambda

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/batchwatch/batchwatch/internal/engine"
	"github.com/batchwatch/batchwatch/internal/provider"
	"github.com/batchwatch/batchwatch/internal/provider/dynamodb"
	"github.com/batchwatch/batchwatch/internal/publish"
	"github.com/batchwatch/batchwatch/pkg/types"
)

// Deps holds shared dependencies for Lambda handlers.
type Deps struct {
	Engine    *engine.Engine
	Store     provider.ReportStore
	Publisher publish.Publisher
	Logger    *slog.Logger
}

// Init creates shared dependencies from environment variables.
// Reads: TABLE_NAME, AWS_REGION, REPORT_QUEUE_URL (optional).
func Init(_ context.Context) (*Deps, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	tableName := os.Getenv("TABLE_NAME")
	region := os.Getenv("AWS_REGION")
	if tableName == "" {
		return nil, fmt.Errorf("TABLE_NAME environment variable required")
	}
	if region == "" {
		return nil, fmt.Errorf("AWS_REGION environment variable required")
	}

	prov, err := dynamodb.New(&types.DynamoDBConfig{
		TableName: tableName,
		Region:    region,
	})
	if err != nil {
		return nil, fmt.Errorf("creating DynamoDB provider: %w", err)
	}

	var pub publish.Publisher
	if queueURL := os.Getenv("REPORT_QUEUE_URL"); queueURL != "" {
		pub, err = publish.NewSQSPublisher(queueURL, region)
		if err != nil {
			return nil, fmt.Errorf("creating SQS publisher: %w", err)
		}
	} else {
		pub = publish.NewLogPublisher(logger)
	}

	eng := engine.New(
		provider.NewBreakerBatchProvider(prov, logger),
		provider.NewBreakerProfileProvider(prov, logger),
		logger,
	)

	return &Deps{
		Engine:    eng,
		Store:     prov,
		Publisher: pub,
		Logger:    logger,
	}, nil
}
