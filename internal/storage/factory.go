package storage

import (
	"context"
	"fmt"
	"os"
	"strings"
)

type FactoryResult struct {
	Driver   string
	Storage  Storage
	Resolver *Resolver
}

func FromEnv(ctx context.Context) (FactoryResult, error) {
	driver := os.Getenv("STORAGE_DRIVER")
	if driver == "" {
		driver = "local"
	}

	switch driver {
	case "local":
		baseDir := envOr("LOCAL_ASSET_DIR", "./static/img")
		urlPrefix := envOr("LOCAL_ASSET_URL_PREFIX", "/static/img")
		return FactoryResult{
			Driver:   "local",
			Storage:  NewLocal(baseDir, urlPrefix),
			Resolver: NewResolver(urlPrefix),
		}, nil

	case "s3":
		region := envOr("S3_REGION", "")
		bucket := envOr("S3_BUCKET", "")
		publicBase := envOr("S3_PUBLIC_BASE_URL", "")
		prefix := envOr("S3_PREFIX", "assets")
		if region == "" || bucket == "" || publicBase == "" {
			return FactoryResult{}, fmt.Errorf("S3 config missing: S3_REGION, S3_BUCKET, S3_PUBLIC_BASE_URL required")
		}
		s, err := NewS3(ctx, S3Config{
			Region:        region,
			Bucket:        bucket,
			Prefix:        prefix,
			PublicBaseURL: publicBase,
		})
		if err != nil {
			return FactoryResult{}, err
		}
		base := strings.TrimRight(publicBase, "/")
		if prefix != "" {
			base += "/" + strings.Trim(prefix, "/")
		}
		return FactoryResult{Driver: "s3", Storage: s, Resolver: NewResolver(base)}, nil

	default:
		return FactoryResult{}, fmt.Errorf("unknown STORAGE_DRIVER: %s", driver)
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
