// Package main provides the tuitionctl administration CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tuition/config"
	"tuition/internal/errors"
	"tuition/internal/infra/cache"
	logs "tuition/internal/infra/log"
	"tuition/internal/infra/persistence/postgres"
	"tuition/internal/infra/pubsub"
	"tuition/internal/infra/seed"
	"tuition/internal/usecase"
	"tuition/internal/usecase/impl"
	"tuition/internal/util"
)

const startTimeout = 30 * time.Second

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tuitionctl",
		Short: "Administer the tuition configuration store",
		Long: `Administer the tuition configuration store.

Examples:
  tuitionctl migrate                              # Create or update tables
  tuitionctl seed                                 # Store the default catalog under the default key
  tuitionctl export --bucket file:///tmp/seed     # Write every config to a bundle
  tuitionctl import --bucket gs://ops/seed        # Load configs from a bundle
`,
		SilenceUsage: true,
	}

	cmd.AddCommand(migrateCmd(), seedCmd(), exportCmd(), importCmd())

	return cmd
}

// deps are the components a command needs, built by the same providers as the server.
type deps struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	DB      *gorm.DB
	Configs usecase.ConfigUsecase
}

// run starts the dependency graph, calls fn and stops the graph again.
func run(fn func(ctx context.Context, d deps) error) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var d deps
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewTransactionManager,
			impl.NewConfigService,
		),
		cache.Module,
		pubsub.Module,
		fx.Invoke(func(in deps) { d = in }),
	)

	startCtx, cancel := context.WithTimeout(ctx, startTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "start")
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), startTimeout)
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			d.Logger.Warn("Shutdown incomplete", slog.Any("error", err))
		}
	}()

	return fn(ctx, d)
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(func(ctx context.Context, d deps) error {
				if err := postgres.Migrate(ctx, d.DB); err != nil {
					return err
				}
				d.Logger.Info("Schema migrated")

				return nil
			})
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed [key]",
		Short: "Store the default catalog unless the key already has a config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, d deps) error {
				key := d.Config.DynamicConfig.DefaultKey
				if len(args) > 0 {
					key = args[0]
				}

				created, err := d.Configs.SeedConfig(ctx, key)
				if err != nil {
					return err
				}
				d.Logger.Info("Seed finished", slog.String("key", key), slog.Bool("created", created))

				return nil
			})
		},
	}
}

// bundleFlags resolves the bundle location from flags, falling back to config.
type bundleFlags struct {
	bucket string
	object string
}

func (f *bundleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.bucket, "bucket", "", "Bucket URL, e.g. file:///var/seed or gs://bucket (default from seed.bucketUrl)")
	cmd.Flags().StringVar(&f.object, "object", "", "Bundle object name (default from seed.object)")
}

func (f *bundleFlags) store(cfg *config.Config) (*seed.Store, error) {
	bucket, object := f.bucket, f.object
	if cfg.Seed != nil {
		if bucket == "" {
			bucket = cfg.Seed.BucketURL
		}
		if object == "" {
			object = cfg.Seed.Object
		}
	}

	return seed.NewStore(bucket, object)
}

func exportCmd() *cobra.Command {
	var (
		flags bundleFlags
		keys  []string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write configs to a bundle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(func(ctx context.Context, d deps) error {
				store, err := flags.store(d.Config)
				if err != nil {
					return err
				}

				started := time.Now()
				bundle, err := seed.Export(ctx, d.Configs, keys, started)
				if err != nil {
					return err
				}
				written, err := store.Write(ctx, bundle)
				if err != nil {
					return err
				}
				d.Logger.Info("Bundle written",
					slog.Int("configs", len(bundle.Configs)),
					slog.String("size", util.FormatBytes(written.Size)),
					slog.String("sha256", written.Checksum),
					slog.String("took", util.FormatDuration(time.Since(started))),
				)

				return nil
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringSliceVar(&keys, "keys", nil, "Config keys to export (default all)")

	return cmd
}

func importCmd() *cobra.Command {
	var flags bundleFlags

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load configs from a bundle, replacing stored collections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(func(ctx context.Context, d deps) error {
				store, err := flags.store(d.Config)
				if err != nil {
					return err
				}

				bundle, err := store.Read(ctx)
				if err != nil {
					return err
				}

				imported, err := seed.Import(ctx, d.Configs, bundle, d.Logger)
				d.Logger.Info("Import finished", slog.Int("configs", imported))

				return err
			})
		},
	}

	flags.register(cmd)

	return cmd
}
