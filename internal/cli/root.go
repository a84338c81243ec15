// Package cli implements the pmreport command line tool: report generation
// and catalog listing against either a local sqlite file or a postgres
// instance, without running the HTTP server.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pmreport/internal/domain/report"
	"pmreport/internal/platform/config"
	"pmreport/internal/platform/db"
	"pmreport/internal/storage/postgres"
	"pmreport/internal/storage/sqlite"
)

type rootOptions struct {
	sqlitePath  string
	databaseURL string
	outputDir   string
}

func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "pmreport",
		Short: "Generate filtered PDF reports from project management data",
		Long: `pmreport builds employee performance, project progress and executive
overview reports as PDF files. Entities and filter criteria are given on the
command line; data comes from a local sqlite file or a postgres database.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.sqlitePath, "sqlite", "", "path to a sqlite database file")
	cmd.PersistentFlags().StringVar(&opts.databaseURL, "database-url", "", "postgres connection string")
	cmd.PersistentFlags().StringVar(&opts.outputDir, "output-dir", "", "directory for generated reports")

	cmd.AddCommand(newGenerateCommand(opts))
	cmd.AddCommand(newListCommand(opts))
	return cmd
}

// openProvider resolves the storage backend from flags, falling back to the
// environment configuration. The returned func releases the connection.
func (o *rootOptions) openProvider(ctx context.Context) (report.Provider, func(), error) {
	cfg := config.Load()
	if o.sqlitePath != "" {
		cfg.SQLitePath = o.sqlitePath
		cfg.DatabaseURL = ""
	}
	if o.databaseURL != "" {
		cfg.DatabaseURL = o.databaseURL
		cfg.SQLitePath = ""
	}

	if cfg.SQLitePath != "" {
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	}
	if cfg.DatabaseURL == "" {
		return nil, nil, fmt.Errorf("either --sqlite or --database-url is required")
	}

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return postgres.NewStore(pool), pool.Close, nil
}

func (o *rootOptions) resolveOutputDir() string {
	if o.outputDir != "" {
		return o.outputDir
	}
	return config.Load().OutputDir
}
