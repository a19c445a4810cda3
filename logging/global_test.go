package logging

import (
	"log/slog"
	"testing"
)

func TestPackageFunctionsFallBackBeforeInit(t *testing.T) {
	saved := DefaultLoggingService
	DefaultLoggingService = nil
	defer func() { DefaultLoggingService = saved }()

	// Must not panic without an initialized logger
	Info("info before init")
	Warn("warn before init")
	Error("error before init")
	Debug("debug before init")
}

func TestInitLoggerSetsDefault(t *testing.T) {
	saved := DefaultLoggingService
	savedDefault := slog.Default()
	defer func() {
		DefaultLoggingService = saved
		slog.SetDefault(savedDefault)
	}()

	InitLogger(t.TempDir(), 1, 0)

	if DefaultLoggingService == nil || DefaultLoggingService.Logger == nil {
		t.Fatal("InitLogger did not set the global logging service")
	}

	Info("logger initialized", "test", true)
}
