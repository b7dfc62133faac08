package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"launch_dash/internal/database"
)

var (
	seedCSVPath   string
	seedBatchSize int
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the SQLite launches table from a CSV file",
	Long: `Creates the SQLite database at data.db_path if needed and, when its launches
table is empty, loads it from a launch CSV. A populated table is left untouched.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedCSVPath, "csv", "", "CSV file to load (default: data.csv_path)")
	seedCmd.Flags().IntVar(&seedBatchSize, "batch-size", 500, "Records inserted per transaction")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	csvPath := seedCSVPath
	if csvPath == "" {
		csvPath = cfg.Data.CSVPath
	}

	db, err := database.New(cfg.Data.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repo := db.LaunchRepository()
	populated, err := repo.IsTablePopulated()
	if err != nil {
		return err
	}
	if populated {
		slog.Info("Launches table is already populated", "db_path", cfg.Data.DBPath)
		return nil
	}

	slog.Info("Launches table is empty, loading from CSV", "csv_path", csvPath)
	n, err := repo.LoadFromCSV(cmd.Context(), csvPath, seedBatchSize)
	if err != nil {
		return fmt.Errorf("failed to load launches from CSV: %w", err)
	}

	slog.Info("Successfully loaded launches from CSV", "records", n, "db_path", cfg.Data.DBPath)
	return nil
}
