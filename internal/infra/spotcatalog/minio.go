package spotcatalog

import (
	"context"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	apperrors "github.com/surfapp/recommender/pkg/errors"
)

// ObjectStoreConfig points at a catalog document in an S3-compatible bucket.
type ObjectStoreConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Object    string
	Region    string
}

// LoadObjectStore fetches the catalog JSON from MinIO/S3 and parses it.
func LoadObjectStore(ctx context.Context, cfg ObjectStoreConfig) (*StaticCatalog, error) {
	endpoint := sanitizeEndpoint(cfg.Endpoint)
	useSSL := strings.HasPrefix(strings.ToLower(cfg.Endpoint), "https")
	client, err := minio.New(endpoint, &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       useSSL,
		Region:       cfg.Region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCatalogError, "init object store client", err)
	}

	obj, err := client.GetObject(ctx, cfg.Bucket, cfg.Object, minio.GetObjectOptions{})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCatalogError, "fetch spot catalog object", err)
	}
	defer obj.Close()
	if _, err := obj.Stat(); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCatalogError, "stat spot catalog object", err)
	}

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCatalogError, "read spot catalog object", err)
	}
	return parseCatalog(data)
}

func sanitizeEndpoint(endpoint string) string {
	cleaned := strings.TrimPrefix(endpoint, "https://")
	cleaned = strings.TrimPrefix(cleaned, "http://")
	return strings.TrimSuffix(cleaned, "/")
}
