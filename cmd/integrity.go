package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"pss-assistant/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check that the design datasets can be served",
	Long:  `Checks that a snapshot object exists in the bucket for every dataset, that room upgrade chains resolve and, when a database is configured, that the export history table matches its model.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, integrityChecks{snapshots: true, chains: true, schema: true})
	},
}

// snapshotsCmd represents the integrity snapshots command
var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "Check and fix snapshot objects in the bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, integrityChecks{snapshots: true})
	},
}

// chainsCmd represents the integrity chains command
var chainsCmd = &cobra.Command{
	Use:   "chains",
	Short: "Check room upgrade chains",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, integrityChecks{chains: true})
	},
}

// driftCmd represents the integrity drift command
var driftCmd = &cobra.Command{
	Use:   "drift",
	Short: "Compare snapshots with the live game API",
	Long:  `Fetches every dataset live and compares it record by record with its bucket snapshot. Use --fix to refresh drifted snapshots.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, integrityChecks{drift: true})
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the export history table",
	Long:  `Compares the export history table with its model. Use --fix to migrate it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, integrityChecks{schema: true, requireDB: true})
	},
}

var fixFlag bool

type integrityChecks struct {
	snapshots, chains, drift, schema bool
	// requireDB fails the schema check when no database is configured
	// instead of skipping it.
	requireDB bool
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(snapshotsCmd, chainsCmd, driftCmd, schemaCmd)

	snapshotsCmd.Flags().BoolVar(&fixFlag, "fix", false, "Store missing snapshots from the live game API")
	driftCmd.Flags().BoolVar(&fixFlag, "fix", false, "Refresh drifted snapshots from the live game API")
	schemaCmd.Flags().BoolVar(&fixFlag, "fix", false, "Migrate the export history table")
}

func runIntegrityChecks(cmd *cobra.Command, run integrityChecks) error {
	r, err := newRuntime()
	if err != nil {
		return err
	}
	defer r.logg.Sync()
	logg := r.logg
	if run.schema {
		r.connectDB()
	}
	svc := r.integrityService()

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout(r.cfg))
	defer cancel()

	var rows [][2]string

	if run.snapshots {
		logg.Info("Checking design snapshots...")
		missing, err := svc.CheckSnapshots(ctx)
		if err != nil {
			return fmt.Errorf("snapshot check failed: %w", err)
		}
		if len(missing) == 0 {
			logg.Info("All snapshots are present.")
		} else {
			logg.Warn("Missing snapshots detected", zap.Strings("missing", missing))
			if fixFlag {
				logg.Info("Storing missing snapshots...")
				if err := svc.FixSnapshots(ctx, missing); err != nil {
					return fmt.Errorf("failed to store snapshots: %w", err)
				}
				logg.Info("Snapshots stored successfully.")
			} else {
				logg.Info("Run with --fix to store missing snapshots.")
			}
		}
		rows = append(rows, [2]string{"Missing snapshots", strconv.Itoa(len(missing))})
	}

	if run.chains {
		logg.Info("Checking room upgrade chains...")
		report, err := svc.CheckRoomChains(ctx)
		if err != nil {
			return fmt.Errorf("chain check failed: %w", err)
		}
		for _, p := range report.MissingParents {
			logg.Warn("Missing upgrade parent", zap.String("id", p.ID), zap.String("name", p.Name), zap.String("parent_id", p.ParentID))
		}
		for _, c := range report.Cycles {
			logg.Warn("Upgrade cycle", zap.String("ids", strings.Join(c, " -> ")))
		}
		rows = append(rows,
			[2]string{"Rooms", strconv.Itoa(report.Records)},
			[2]string{"Missing parents", strconv.Itoa(len(report.MissingParents))},
			[2]string{"Cycles", strconv.Itoa(len(report.Cycles))},
		)
	}

	if run.drift {
		logg.Info("Comparing snapshots with the live game API...")
		results, err := svc.CheckDrift(ctx)
		if err != nil {
			return fmt.Errorf("drift check failed: %w", err)
		}
		var drifted []string
		for _, res := range results {
			state := "in sync"
			if !res.InSync() {
				drifted = append(drifted, res.Key)
				state = fmt.Sprintf("%d live only, %d snapshot only, %d mismatches",
					len(res.LiveOnly), len(res.SnapshotOnly), len(res.Mismatch))
				if !res.SnapshotPresent {
					state = "no snapshot"
				}
			}
			rows = append(rows, [2]string{res.Dataset, state})
		}
		if len(drifted) > 0 && fixFlag {
			logg.Info("Refreshing drifted snapshots...", zap.Strings("keys", drifted))
			if err := svc.FixSnapshots(ctx, drifted); err != nil {
				return fmt.Errorf("failed to refresh snapshots: %w", err)
			}
		}
	}

	if run.schema {
		schemaRows, err := checkSchema(svc, logg, run.requireDB)
		if err != nil {
			return err
		}
		rows = append(rows, schemaRows...)
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderReport("Integrity", rows))
	return nil
}

func checkSchema(svc *integrity.Service, logg *zap.Logger, requireDB bool) ([][2]string, error) {
	if !svc.HasDatabase() {
		if requireDB {
			return nil, fmt.Errorf("schema check failed: %w", integrity.ErrNoDatabase)
		}
		logg.Info("No database configured, skipping schema check.")
		return nil, nil
	}

	logg.Info("Checking export history schema...")
	report, err := svc.CheckSchema()
	if err != nil {
		return nil, fmt.Errorf("schema check failed: %w", err)
	}
	if !report.Matched {
		for table, tbl := range report.Tables {
			if tbl.MissingTable {
				logg.Warn("Missing table", zap.String("table", table))
			}
			if len(tbl.MissingColumns) > 0 {
				logg.Warn("Missing columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
			}
			if len(tbl.TypeMismatches) > 0 {
				logg.Warn("Type mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
			}
		}
		for _, e := range report.Errors {
			logg.Error("Inspection error", zap.String("error", e))
		}
		if fixFlag {
			logg.Info("Migrating export history table...")
			if err := svc.FixSchema(); err != nil {
				return nil, err
			}
			if report, err = svc.CheckSchema(); err != nil {
				return nil, fmt.Errorf("schema check failed: %w", err)
			}
		}
	}

	state := "matched"
	if !report.Matched {
		state = "mismatched"
	}
	return [][2]string{{"Schema", state}}, nil
}
