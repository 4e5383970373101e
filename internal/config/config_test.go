package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batchwatch/batchwatch/pkg/types"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "batchwatch.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadFSProvider(t *testing.T) {
	dir := writeConfig(t, `
provider: fs
fs:
  dataDir: /var/data/batchwatch
engine:
  concurrency: 4
publisher:
  type: log
`)
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "fs", cfg.Provider)
	require.NotNil(t, cfg.FS)
	assert.Equal(t, "/var/data/batchwatch", cfg.FS.DataDir)
	require.NotNil(t, cfg.Engine)
	assert.Equal(t, 4, cfg.Engine.Concurrency)
	require.NotNil(t, cfg.Publisher)
	assert.Equal(t, types.PublisherLog, cfg.Publisher.Type)
}

func TestLoadDynamoDBProvider(t *testing.T) {
	dir := writeConfig(t, `
provider: dynamodb
dynamodb:
  tableName: batchwatch
  region: us-east-1
  endpoint: http://localhost:8000
  createTable: true
publisher:
  type: sqs
  queueUrl: https://sqs.us-east-1.amazonaws.com/123/reports
`)
	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg.DynamoDB)
	assert.Equal(t, "batchwatch", cfg.DynamoDB.TableName)
	assert.True(t, cfg.DynamoDB.CreateTable)
	require.NotNil(t, cfg.Publisher)
	assert.Equal(t, types.PublisherSQS, cfg.Publisher.Type)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestValidateErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no provider", `engine: {concurrency: 2}`},
		{"unknown provider", `provider: redis`},
		{"fs without dataDir", "provider: fs\nfs: {}"},
		{"dynamodb without table", "provider: dynamodb\ndynamodb: {region: us-east-1}"},
		{"sqs without queue", "provider: fs\nfs: {dataDir: /tmp}\npublisher: {type: sqs}"},
		{"unknown publisher", "provider: fs\nfs: {dataDir: /tmp}\npublisher: {type: pigeon}"},
		{"negative concurrency", "provider: fs\nfs: {dataDir: /tmp}\nengine: {concurrency: -1}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			assert.Error(t, err)
		})
	}
}
