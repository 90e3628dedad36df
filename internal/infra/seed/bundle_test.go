package seed

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"

	"tuition/internal/domain/entity"
	mockUsecase "tuition/internal/mocks/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStore_WriteRead(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewStore("file://"+dir, "bundle.json")
	require.NoError(t, err)

	cfg := entity.DefaultConfig("school-a")
	cfg.Version = 4
	bundle := &Bundle{
		FormatVersion: FormatVersion,
		ExportedAt:    time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Configs:       []*entity.DynamicConfig{cfg},
	}

	written, err := store.Write(ctx, bundle)
	require.NoError(t, err)
	assert.Positive(t, written.Size)
	assert.Len(t, written.Checksum, 64)

	got, err := store.Read(ctx)
	require.NoError(t, err)
	require.Len(t, got.Configs, 1)
	assert.Equal(t, "school-a", got.Configs[0].Key)
	assert.Equal(t, int64(4), got.Configs[0].Version)
	assert.Len(t, got.Configs[0].ProfileSections, len(cfg.ProfileSections))
}

func TestStore_ReadRejectsUnknownFormat(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	bucket, err := blob.OpenBucket(ctx, "file://"+dir)
	require.NoError(t, err)
	require.NoError(t, bucket.WriteAll(ctx, "bundle.json", []byte(`{"formatVersion":99,"configs":[]}`), nil))
	require.NoError(t, bucket.Close())

	store, err := NewStore("file://"+dir, "bundle.json")
	require.NoError(t, err)

	_, err = store.Read(ctx)

	assert.ErrorContains(t, err, "unsupported bundle format version 99")
}

func TestNewStore_RequiresLocation(t *testing.T) {
	_, err := NewStore("", "bundle.json")
	assert.Error(t, err)

	_, err = NewStore("mem://", "")
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	configs := mockUsecase.NewMockConfigUsecase(t)
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.FixedZone("LK", 5*3600+1800))

	configs.EXPECT().ListConfigKeys(ctx).Return([]string{"b", "a", "b"}, nil).Once()
	configs.EXPECT().GetConfig(ctx, "a").Return(entity.DefaultConfig("a"), nil).Once()
	configs.EXPECT().GetConfig(ctx, "b").Return(entity.DefaultConfig("b"), nil).Once()

	bundle, err := Export(ctx, configs, nil, now)

	require.NoError(t, err)
	assert.Equal(t, FormatVersion, bundle.FormatVersion)
	assert.Equal(t, time.UTC, bundle.ExportedAt.Location())
	require.Len(t, bundle.Configs, 2)
	assert.Equal(t, "a", bundle.Configs[0].Key)
	assert.Equal(t, "b", bundle.Configs[1].Key)
}

func TestImport(t *testing.T) {
	ctx := context.Background()

	t.Run("imports every config", func(t *testing.T) {
		configs := mockUsecase.NewMockConfigUsecase(t)
		configs.EXPECT().
			ImportConfig(ctx, mock.AnythingOfType("*entity.DynamicConfig")).
			RunAndReturn(func(_ context.Context, cfg *entity.DynamicConfig) (*entity.DynamicConfig, error) {
				return cfg, nil
			}).
			Twice()

		n, err := Import(ctx, configs, &Bundle{Configs: []*entity.DynamicConfig{
			entity.DefaultConfig("a"),
			entity.DefaultConfig("b"),
		}}, discardLogger())

		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("stops at first failure", func(t *testing.T) {
		configs := mockUsecase.NewMockConfigUsecase(t)
		configs.EXPECT().ImportConfig(ctx, mock.Anything).Return(nil, errors.New("duplicate id")).Once()

		n, err := Import(ctx, configs, &Bundle{Configs: []*entity.DynamicConfig{
			entity.DefaultConfig("a"),
			entity.DefaultConfig("b"),
		}}, discardLogger())

		assert.ErrorContains(t, err, `import "a"`)
		assert.Equal(t, 0, n)
	})

	t.Run("rejects entry without key", func(t *testing.T) {
		configs := mockUsecase.NewMockConfigUsecase(t)

		_, err := Import(ctx, configs, &Bundle{Configs: []*entity.DynamicConfig{{}}}, discardLogger())

		assert.ErrorContains(t, err, "has no key")
	})
}
