package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/archibaldedwards48-ship-it/medqc-datasets/config"
	"github.com/archibaldedwards48-ship-it/medqc-datasets/generators"
	"github.com/archibaldedwards48-ship-it/medqc-datasets/interfaces"
	"github.com/archibaldedwards48-ship-it/medqc-datasets/logging"
	"github.com/archibaldedwards48-ship-it/medqc-datasets/scheduler"
	"github.com/archibaldedwards48-ship-it/medqc-datasets/validation"
)

func init() {
	// Read the env variables from the working directory
	err := godotenv.Load()
	if err != nil {
		// If failed, try loading from executable directory
		ex, err := os.Executable()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to get executable path:", err)
			os.Exit(1)
		}

		exPath := filepath.Dir(ex)

		if err = os.Chdir(exPath); err != nil {
			fmt.Fprintln(os.Stderr, "Failed to change directory:", err)
			os.Exit(1)
		}
	}
}

// usage prints the accepted arguments and exits
func usage() {
	fmt.Fprintf(os.Stderr, `Usage: medqc-datasets [-watch] [dataset ...]

Datasets: soap, staging, departments (default: all)

  -watch    keep running and regenerate daily at GENERATE_AT times
`)
	os.Exit(2)
}

// selectGenerators resolves CLI dataset names against the available
// generators, keeping registration order. No names selects all.
func selectGenerators(available []interfaces.DatasetGenerator, names []string) ([]interfaces.DatasetGenerator, error) {
	if len(names) == 0 {
		return available, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	var selected []interfaces.DatasetGenerator
	for _, gen := range available {
		if wanted[gen.Name()] {
			selected = append(selected, gen)
			delete(wanted, gen.Name())
		}
	}

	if len(wanted) > 0 {
		for name := range wanted {
			return nil, fmt.Errorf("unknown dataset: %s", name)
		}
	}

	return selected, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Configuration error:", err)
		os.Exit(1)
	}

	logging.InitLogger(cfg.LogDir, cfg.LogRetentionWeeks, cfg.MaxLogFileSize)

	watch := false
	var datasetNames []string
	for _, arg := range os.Args[1:] {
		switch arg {
		case "-watch", "--watch":
			watch = true
		case "-h", "-help", "--help":
			usage()
		default:
			datasetNames = append(datasetNames, arg)
		}
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		logging.Error("Failed to create data directory", "dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}

	validator := validation.NewDatasetValidator()
	available := []interfaces.DatasetGenerator{
		generators.NewSoapTemplateGenerator(cfg.DataDir, validator),
		generators.NewDiseaseStagingGenerator(cfg.DataDir, validator),
		generators.NewDepartmentMappingGenerator(cfg.DataDir, validator),
	}

	selected, err := selectGenerators(available, datasetNames)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
	}

	runID := uuid.NewString()
	logging.Info("Starting dataset generation",
		"run_id", runID,
		"env", cfg.Env,
		"data_dir", cfg.DataDir,
		"datasets", len(selected))

	if watch {
		runWatch(selected, cfg.GenerateAt, runID)
		return
	}

	for _, gen := range selected {
		count, err := gen.Generate()
		if err != nil {
			logging.Error("Generation failed", "run_id", runID, "dataset", gen.Name(), "error", err)
			os.Exit(1)
		}
		fmt.Printf("Generated %d %s entries. Output saved to %s\n", count, gen.Name(), gen.OutputPath())
	}
}

// runWatch generates once, then keeps the process alive regenerating
// on the configured daily schedule until SIGINT/SIGTERM
func runWatch(selected []interfaces.DatasetGenerator, times []string, runID string) {
	sched := scheduler.NewDatasetScheduler(selected, times)

	if err := sched.Start(); err != nil {
		logging.Error("Scheduler failed to start", "run_id", runID, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Watching: regenerating daily at %v\n", times)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Info("Shutting down scheduler...", "run_id", runID)
	sched.Stop()
	logging.Info("Shutdown complete", "run_id", runID)
}
