package storage

import "context"

// Fetcher reads whole objects from storage.
type Fetcher interface {
	// Fetch returns the object body. An empty bucket selects the configured
	// default bucket.
	Fetch(ctx context.Context, bucket, key string) ([]byte, error)
}

// Config holds S3-compatible storage configuration.
type Config struct {
	// Bucket is the default bucket, used when a reference does not name one.
	Bucket string `env:"STORAGE_BUCKET"`

	// AccessKey is the access key ID (required).
	AccessKey string `env:"STORAGE_ACCESS_KEY"`

	// SecretKey is the secret access key (required).
	SecretKey string `env:"STORAGE_SECRET_KEY"`

	// Endpoint is a custom endpoint URL for MinIO or other S3-compatible services.
	Endpoint string `env:"STORAGE_ENDPOINT"`

	// Region is the AWS region (default: us-east-1).
	Region string `env:"STORAGE_REGION"`

	// MaxObjectSize caps the size of fetched objects in bytes (default: 50MB).
	MaxObjectSize int64 `env:"STORAGE_MAX_OBJECT_SIZE"`

	// PathStyle enables path-style URLs (required for MinIO).
	PathStyle bool `env:"STORAGE_PATH_STYLE"`
}

// Default configuration values.
const (
	DefaultRegion        = "us-east-1"
	DefaultMaxObjectSize = 50 << 20 // 50MB
)

// Enabled reports whether credentials are configured.
func (c Config) Enabled() bool {
	return c.AccessKey != "" && c.SecretKey != ""
}

// applyDefaults fills in default values for empty config fields.
func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.MaxObjectSize == 0 {
		c.MaxObjectSize = DefaultMaxObjectSize
	}
}

// validate checks that required configuration fields are set.
func (c *Config) validate() error {
	if c.AccessKey == "" || c.SecretKey == "" {
		return ErrInvalidConfig
	}
	if c.MaxObjectSize < 0 {
		return ErrInvalidConfig
	}
	return nil
}
