package types

// ProjectConfig represents the top-level batchwatch.yaml configuration.
type ProjectConfig struct {
	Provider  string           `yaml:"provider"`
	FS        *FSConfig        `yaml:"fs,omitempty"`
	DynamoDB  *DynamoDBConfig  `yaml:"dynamodb,omitempty"`
	Server    *ServerConfig    `yaml:"server,omitempty"`
	Engine    *EngineConfig    `yaml:"engine,omitempty"`
	Publisher *PublisherConfig `yaml:"publisher,omitempty"`
}

// FSConfig holds filesystem provider settings.
type FSConfig struct {
	DataDir string `yaml:"dataDir"`
}

// DynamoDBConfig holds DynamoDB connection and table settings.
type DynamoDBConfig struct {
	TableName   string `yaml:"tableName" json:"tableName"`
	Region      string `yaml:"region" json:"region"`
	Endpoint    string `yaml:"endpoint,omitempty" json:"endpoint,omitempty"`
	CreateTable bool   `yaml:"createTable,omitempty" json:"createTable,omitempty"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr           string `yaml:"addr"`
	APIKey         string `yaml:"apiKey,omitempty" json:"apiKey,omitempty"`
	MaxRequestBody int64  `yaml:"maxRequestBody,omitempty" json:"maxRequestBody,omitempty"`
}

// EngineConfig holds audit engine settings.
type EngineConfig struct {
	// Concurrency bounds how many sources are audited in parallel.
	// Zero means the engine default.
	Concurrency int `yaml:"concurrency,omitempty"`
}

// PublisherType selects a report publisher backend.
type PublisherType string

// PublisherType values enumerate the supported report publisher backends.
const (
	PublisherLog PublisherType = "log"
	PublisherSQS PublisherType = "sqs"
)

// PublisherConfig defines where finished reports are handed off.
type PublisherConfig struct {
	Type     PublisherType `yaml:"type"`
	QueueURL string        `yaml:"queueUrl,omitempty"`
	Region   string        `yaml:"region,omitempty"`
}
