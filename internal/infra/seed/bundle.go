// Package seed moves configuration bundles between the store and blob buckets.
package seed

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"time"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets

	"tuition/internal/domain/entity"
	"tuition/internal/usecase"
	"tuition/internal/util"
)

// FormatVersion is the bundle layout this build reads and writes.
const FormatVersion = 1

// Bundle is the portable export of one or more configs.
type Bundle struct {
	FormatVersion int                     `json:"formatVersion"`
	ExportedAt    time.Time               `json:"exportedAt"`
	Configs       []*entity.DynamicConfig `json:"configs"`
}

// Store reads and writes bundles at a bucket URL understood by gocloud.dev/blob.
type Store struct {
	bucketURL string
	object    string
}

// NewStore returns a store for object inside the bucket at bucketURL.
func NewStore(bucketURL, object string) (*Store, error) {
	if bucketURL == "" {
		return nil, errors.New("seed bucket url is required")
	}
	if object == "" {
		return nil, errors.New("seed object name is required")
	}

	return &Store{bucketURL: bucketURL, object: object}, nil
}

// Written describes a stored bundle object.
type Written struct {
	Size     int64
	Checksum string
}

// Write stores the bundle as indented JSON.
func (s *Store) Write(ctx context.Context, bundle *Bundle) (*Written, error) {
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	bucket, err := blob.OpenBucket(ctx, s.bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", s.bucketURL)
	}
	defer bucket.Close()

	if err := bucket.WriteAll(ctx, s.object, data, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		return nil, errors.Wrapf(err, "write %s", s.object)
	}

	return &Written{Size: int64(len(data)), Checksum: util.Checksum(data)}, nil
}

// Read loads a bundle and checks its format version.
func (s *Store) Read(ctx context.Context) (*Bundle, error) {
	bucket, err := blob.OpenBucket(ctx, s.bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", s.bucketURL)
	}
	defer bucket.Close()

	data, err := bucket.ReadAll(ctx, s.object)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", s.object)
	}

	var bundle Bundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, errors.Wrapf(err, "decode %s", s.object)
	}
	if bundle.FormatVersion != FormatVersion {
		return nil, errors.Errorf("unsupported bundle format version %d", bundle.FormatVersion)
	}

	return &bundle, nil
}

// Export collects the configs for keys, or every stored config when keys is empty.
func Export(ctx context.Context, configs usecase.ConfigUsecase, keys []string, now time.Time) (*Bundle, error) {
	if len(keys) == 0 {
		var err error
		keys, err = configs.ListConfigKeys(ctx)
		if err != nil {
			return nil, err
		}
	}
	keys = slices.Compact(slices.Sorted(slices.Values(keys)))

	bundle := &Bundle{
		FormatVersion: FormatVersion,
		ExportedAt:    now.UTC(),
		Configs:       make([]*entity.DynamicConfig, 0, len(keys)),
	}
	for _, key := range keys {
		cfg, err := configs.GetConfig(ctx, key)
		if err != nil {
			return nil, errors.Wrapf(err, "export %q", key)
		}
		bundle.Configs = append(bundle.Configs, cfg)
	}

	return bundle, nil
}

// Import stores every config of the bundle. It stops at the first failure.
func Import(ctx context.Context, configs usecase.ConfigUsecase, bundle *Bundle, logger *slog.Logger) (int, error) {
	imported := 0
	for _, cfg := range bundle.Configs {
		if cfg == nil || cfg.Key == "" {
			return imported, errors.Errorf("bundle entry %d has no key", imported)
		}

		stored, err := configs.ImportConfig(ctx, cfg)
		if err != nil {
			return imported, errors.Wrapf(err, "import %q", cfg.Key)
		}
		imported++

		logger.Info("Config imported",
			slog.String("key", stored.Key),
			slog.Int64("version", stored.Version),
		)
	}

	return imported, nil
}
