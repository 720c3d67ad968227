package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ghuser/thoron/pkg/app"
	"github.com/ghuser/thoron/pkg/cache"
	"github.com/ghuser/thoron/pkg/config"
	"github.com/ghuser/thoron/pkg/database"
	"github.com/ghuser/thoron/pkg/logger"
	"github.com/ghuser/thoron/pkg/migrator"
	"github.com/ghuser/thoron/pkg/seed"
	carriersvcs "github.com/ghuser/thoron/services/carrier/application/services"
	shipmentsvcs "github.com/ghuser/thoron/services/shipment/application/services"
)

// overrides holds flag values that replace the loaded configuration.
type overrides struct {
	driver string
	url    string
}

func (o *overrides) register(fs *pflag.FlagSet) {
	fs.StringVar(&o.driver, "driver", "", "database driver (sqlite|postgres), overrides DATABASE_DRIVER")
	fs.StringVar(&o.url, "database-url", "", "database URL or SQLite path, overrides DATABASE_URL")
}

func (o *overrides) apply(cfg *config.Config) {
	if o.driver != "" {
		cfg.DatabaseDriver = o.driver
	}
	if o.url != "" {
		cfg.DatabaseURL = o.url
	}
}

// cli builds an Application per command invocation.
type cli struct {
	load  func() (*config.Config, error)
	flags overrides
}

// newRootCmd creates the top-level "thoronctl" command. load supplies the
// base configuration; flags are applied on top.
func newRootCmd(load func() (*config.Config, error)) *cobra.Command {
	c := &cli{load: load}
	root := &cobra.Command{
		Use:           "thoronctl",
		Short:         "Database maintenance for the Thoron TMS",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	c.flags.register(root.PersistentFlags())

	root.AddCommand(
		c.newMigrateCmd(),
		c.newSeedCmd(),
		c.newResetCmd(),
	)
	return root
}

// open loads config and connects to the database. The returned close func
// releases every connection it opened.
func (c *cli) open(ctx context.Context) (*app.Application, func(), error) {
	cfg, err := c.load()
	if err != nil {
		return nil, nil, err
	}
	c.flags.apply(cfg)

	log := logger.NewWithWriter(os.Stderr, cfg)
	pool, err := database.NewPool(ctx, cfg.DatabaseDriver, cfg.DatabaseURL, log)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	a := &app.Application{Config: cfg, Db: pool, Logger: log}
	closers := []func() error{pool.Close}

	if cfg.RedisURL != "" {
		rc, err := cache.NewRedisClient(ctx, cfg)
		if err != nil {
			_ = pool.Close()
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		a.Redis = rc
		closers = append(closers, rc.Close)
	}

	return a, func() {
		for _, fn := range closers {
			_ = fn()
		}
	}, nil
}

func (c *cli) newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect schema migrations",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply every pending migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				ctx := cmd.Context()
				a, closeFn, err := c.open(ctx)
				if err != nil {
					return err
				}
				defer closeFn()

				if err := migrator.RunMigrations(ctx, a.Db.DB(), a.Config.DatabaseDriver, a.Logger); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they have been applied",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				ctx := cmd.Context()
				a, closeFn, err := c.open(ctx)
				if err != nil {
					return err
				}
				defer closeFn()

				m, err := migrator.New(a.Db.DB(), a.Config.DatabaseDriver, a.Logger)
				if err != nil {
					return err
				}
				statuses, err := m.Status(ctx)
				if err != nil {
					return err
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "VERSION\tSTATE\tSOURCE")
				for _, s := range statuses {
					fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Source.Version, s.State, s.Source.Path)
				}
				return tw.Flush()
			},
		},
	)
	return cmd
}

func (c *cli) newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo data into empty tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, closeFn, err := c.open(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			if err := seed.New(a.Db, a.Logger).Run(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Demo data seeded.")
			return nil
		},
	}
}

func (c *cli) newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace demo data (refused in production)",
	}
	cmd.AddCommand(
		c.resetCmd("tracking", "Reseed shipments, events, orders, documents and invoices",
			"Shipments and events seeded.",
			func(ctx context.Context, a *app.Application) error {
				return shipmentsvcs.New(a).Tracking.Reset(ctx)
			}),
		c.resetCmd("carriers", "Reseed carriers and every record that references them",
			"Carriers seeded.",
			func(ctx context.Context, a *app.Application) error {
				return carriersvcs.New(a).Carrier.Reset(ctx)
			}),
	)
	return cmd
}

func (c *cli) resetCmd(use, short, done string, reset func(context.Context, *app.Application) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, closeFn, err := c.open(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			if a.Config.Environment == config.EnvProduction {
				return fmt.Errorf("reset %s is disabled in production", use)
			}
			if err := reset(ctx, a); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), done)
			return nil
		},
	}
}
