// Package storage reads objects from S3-compatible object storage.
//
// It is the read-only side of asset loading: layouts may reference
// background and overlay images as s3://bucket/key URIs.
//
// # Basic Usage
//
//	cfg := storage.Config{
//		Bucket:    "certificate-assets",
//		Region:    "eu-central-1",
//		AccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
//		SecretKey: os.Getenv("STORAGE_SECRET_KEY"),
//	}
//
//	store, err := storage.New(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	data, err := store.Fetch(ctx, "", "templates/classic.png") // default bucket
//
// # Configuration
//
// The Config struct supports environment variables:
//
//	type Config struct {
//		Bucket        string // STORAGE_BUCKET (default bucket for s3:///key URIs)
//		AccessKey     string // STORAGE_ACCESS_KEY
//		SecretKey     string // STORAGE_SECRET_KEY
//		Endpoint      string // STORAGE_ENDPOINT (for MinIO/custom S3)
//		Region        string // STORAGE_REGION (default: us-east-1)
//		PathStyle     bool   // STORAGE_PATH_STYLE (for MinIO)
//		MaxObjectSize int64  // STORAGE_MAX_OBJECT_SIZE (default: 50MB)
//	}
//
// # Errors
//
// Errors are normalised to sentinels; use errors.Is:
//
//	if errors.Is(err, storage.ErrNotFound) {
//		// missing object
//	}
package storage
