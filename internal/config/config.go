// Package config handles loading and validation of batchwatch.yaml project
// configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/batchwatch/batchwatch/pkg/types"
)

// Load reads and parses batchwatch.yaml from the given directory.
func Load(dir string) (*types.ProjectConfig, error) {
	path := filepath.Join(dir, "batchwatch.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg types.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func validate(cfg *types.ProjectConfig) error {
	switch cfg.Provider {
	case "":
		return fmt.Errorf("provider is required")
	case "fs":
		if cfg.FS == nil {
			return fmt.Errorf("fs config is required when provider is fs")
		}
		if cfg.FS.DataDir == "" {
			return fmt.Errorf("fs.dataDir is required")
		}
	case "dynamodb":
		if cfg.DynamoDB == nil {
			return fmt.Errorf("dynamodb config is required when provider is dynamodb")
		}
		if cfg.DynamoDB.TableName == "" {
			return fmt.Errorf("dynamodb.tableName is required")
		}
	default:
		return fmt.Errorf("unknown provider %q", cfg.Provider)
	}

	if cfg.Publisher != nil {
		switch cfg.Publisher.Type {
		case "", types.PublisherLog:
		case types.PublisherSQS:
			if cfg.Publisher.QueueURL == "" {
				return fmt.Errorf("publisher.queueUrl is required when publisher is sqs")
			}
		default:
			return fmt.Errorf("unknown publisher type %q", cfg.Publisher.Type)
		}
	}

	if cfg.Engine != nil && cfg.Engine.Concurrency < 0 {
		return fmt.Errorf("engine.concurrency must not be negative")
	}
	return nil
}
