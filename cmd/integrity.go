package cmd

import (
	"context"
	"fmt"

	"aoe4-sync/core/storage"
	"aoe4-sync/feature/integrity"
	syncer "aoe4-sync/feature/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the database schema and the snapshot archive",
	Long:  `Runs every check without fixing anything. Use the schema and archive subcommands with --fix to repair.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Compare the database tables with the models",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false)
	},
}

// archiveCmd represents the integrity archive command
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Check the snapshot bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(schemaCmd, archiveCmd)

	schemaCmd.Flags().BoolVar(&fixFlag, "fix", false, "Migrate the sync tables")
	archiveCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the snapshot bucket")
}

func runIntegrityChecks(ctx context.Context, runSchema, runArchive bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, logg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logg.Sync()

	db, err := connect(cfg, logg)
	if err != nil {
		return err
	}

	var archive *syncer.Archive
	if cfg.Storage.Enabled {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		archive = syncer.NewArchive(client, cfg.Storage.Bucket, logg.Named("archive"))
	}

	svc := integrity.NewService(db, archive, logg)
	failed := false

	if runSchema {
		logg.Info("Checking database schema...", zap.String("driver", cfg.Database.Driver))
		check := svc.CheckSchema
		if fixFlag {
			logg.Info("Migrating sync tables...")
			check = svc.FixSchema
		}
		report, err := check(ctx)
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}

		if report.Matched {
			logg.Info("Database schema matches the models.")
		} else {
			failed = true
			logg.Warn("Schema mismatches found", zap.Strings("tables", report.MismatchedTables()))
			for _, table := range report.MismatchedTables() {
				tbl := report.Tables[table]
				if tbl.Missing {
					logg.Warn("Missing Table", zap.String("table", table))
				}
				if len(tbl.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
				}
				if len(tbl.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
			if !fixFlag {
				logg.Info("Run with --fix to migrate the sync tables. Reference tables must be repaired upstream.")
			}
		}
	}

	if runArchive {
		logg.Info("Checking snapshot archive...")
		report, err := svc.CheckArchive(ctx, fixFlag)
		if err != nil {
			return err
		}
		switch {
		case !report.Enabled:
			logg.Info("Snapshot archive is disabled.")
		case report.Created:
			logg.Info("Snapshot bucket created.", zap.String("bucket", report.Bucket))
		case report.Exists:
			logg.Info("Snapshot bucket is present.", zap.String("bucket", report.Bucket))
		default:
			failed = true
			logg.Warn("Snapshot bucket is missing", zap.String("bucket", report.Bucket))
			logg.Info("Run with --fix to create it.")
		}
	}

	if failed {
		return fmt.Errorf("integrity checks reported problems")
	}
	return nil
}
