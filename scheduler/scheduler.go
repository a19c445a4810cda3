// Package scheduler regenerates the dataset files on a daily schedule
// for watch mode. Every run is a full rewrite of each output file.
package scheduler

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/archibaldedwards48-ship-it/medqc-datasets/interfaces"
	"github.com/archibaldedwards48-ship-it/medqc-datasets/logging"
)

// Compile-time check to ensure DatasetScheduler implements Scheduler
var _ interfaces.Scheduler = (*DatasetScheduler)(nil)

// DatasetScheduler runs the injected generators at configured daily
// times and watches for stale output.
type DatasetScheduler struct {
	generators []interfaces.DatasetGenerator
	times      []string
	scheduler  *gocron.Scheduler
	lastRun    atomic.Value // time.Time
	generating atomic.Bool
}

// NewDatasetScheduler creates a scheduler with injected generators.
// times holds the daily HH:MM regeneration times.
func NewDatasetScheduler(generators []interfaces.DatasetGenerator, times []string) *DatasetScheduler {
	s := &DatasetScheduler{
		generators: generators,
		times:      times,
		scheduler:  gocron.NewScheduler(time.Local),
	}
	s.lastRun.Store(time.Time{})
	return s
}

// Start performs an initial generation, then schedules daily
// regeneration and staleness monitoring
func (s *DatasetScheduler) Start() error {
	// Initial generation
	if err := s.generateAll(); err != nil {
		logging.Error("Failed to perform initial dataset generation", "error", err)
		return fmt.Errorf("initial dataset generation failed: %w", err)
	}

	_, err := s.scheduler.Every(1).Days().At(strings.Join(s.times, ";")).Do(func() {
		if err := s.generateAll(); err != nil {
			logging.Error("Failed to regenerate datasets", "error", err)
		}
	})

	if err != nil {
		logging.Error("Failed to schedule regeneration", "error", err)
		return fmt.Errorf("failed to schedule regeneration: %w", err)
	}

	s.scheduler.StartAsync()

	s.startStalenessMonitoring()

	return nil
}

// Stop stops the scheduler
func (s *DatasetScheduler) Stop() {
	s.scheduler.Stop()
}

// LastRun returns when the datasets were last regenerated
func (s *DatasetScheduler) LastRun() time.Time {
	if v := s.lastRun.Load(); v != nil {
		if lastRun, ok := v.(time.Time); ok {
			return lastRun
		}
	}
	return time.Time{}
}

// generateAll runs every generator once, in order
func (s *DatasetScheduler) generateAll() error {
	// Prevent overlapping runs
	if !s.generating.CompareAndSwap(false, true) {
		logging.Info("Generation already in progress, skipping...")
		return nil
	}
	defer s.generating.Store(false)

	start := time.Now()
	total := 0

	for _, gen := range s.generators {
		count, err := gen.Generate()
		if err != nil {
			return fmt.Errorf("generator %s failed: %w", gen.Name(), err)
		}
		total += count
	}

	s.lastRun.Store(time.Now())

	elapsed := time.Since(start)
	logging.Info("Dataset regeneration completed",
		"duration", elapsed.String(),
		"generators", len(s.generators),
		"total_records", total)

	return nil
}

// startStalenessMonitoring warns when the datasets have not been
// regenerated for more than a day past the daily schedule
func (s *DatasetScheduler) startStalenessMonitoring() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			lastRun := s.LastRun()
			if time.Since(lastRun) > 25*time.Hour {
				logging.Warn("Datasets haven't been regenerated in over 25 hours")
			}
		}
	}()
}
