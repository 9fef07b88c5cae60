package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"littleyears/internal/config"
	"littleyears/internal/database"
	"littleyears/internal/repository"
	"littleyears/internal/service"
	"littleyears/pkg/logging"
)

func main() {
	logging.Setup()

	// Define subcommands
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)

	// Export flags
	exportOutput := exportCmd.String("output", "", "Output file path (default: backup_YYYYMMDD_HHMMSS.json)")

	// Import flags
	importInput := importCmd.String("input", "", "Input file path (required)")
	importClear := importCmd.Bool("clear", false, "Clear existing data before import (WARNING: destructive)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run migrations to ensure schema is up to date
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	kidRepo := repository.NewKidRepository(db)
	momentRepo := repository.NewMomentRepository(db)
	backupService := service.NewBackupService(db, kidRepo, momentRepo)

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		output := *exportOutput
		if output == "" {
			output = fmt.Sprintf("backup_%s.json", time.Now().Format("20060102_150405"))
		}
		if err := backupService.ExportToFile(output); err != nil {
			slog.Error("Export failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Export completed", "file", output)

	case "import":
		importCmd.Parse(os.Args[2:])
		if *importInput == "" {
			fmt.Fprintln(os.Stderr, "import requires -input")
			importCmd.Usage()
			os.Exit(1)
		}
		if err := backupService.ImportFromFile(*importInput, *importClear); err != nil {
			slog.Error("Import failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Import completed", "file", *importInput)

	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: backup <export|import> [flags]")
	fmt.Fprintln(os.Stderr, "  export -output <file>")
	fmt.Fprintln(os.Stderr, "  import -input <file> [-clear]")
}
