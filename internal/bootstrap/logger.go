package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/osse101/GardenIdle_Go/internal/config"
	"github.com/osse101/GardenIdle_Go/internal/logger"
)

// SetupLogger installs the slog default from cfg. With LogDir set, output is
// also written to a new session file and older sessions beyond the retention
// count are removed. The returned file is nil without LogDir; callers close it.
func SetupLogger(cfg *config.Config, version string) (*os.File, error) {
	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, logger.DefaultServiceName, version, cfg.Environment, false)
	logCfg.AddSource = logCfg.IsDevelopment()

	var (
		out     io.Writer = os.Stdout
		logFile *os.File
	)
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
		}

		cleanupLogs(cfg.LogDir, LogFileRetentionCount)

		name := fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat))
		f, err := os.OpenFile(filepath.Join(cfg.LogDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenLogFile, err)
		}
		logFile = f
		out = io.MultiWriter(os.Stdout, f)
	}

	logger.InitWithWriter(logCfg, out)

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "log_dir", cfg.LogDir)
	slog.Info(LogMsgStartingGarden,
		"environment", cfg.Environment,
		"version", version,
		"save_backend", cfg.SaveBackend)
	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"tick_interval", cfg.TickInterval,
		"autosave_interval", cfg.AutosaveInterval,
		"save_workers", cfg.SaveWorkers,
		"auth_enabled", cfg.APIKey != "")

	return logFile, nil
}

// cleanupLogs removes the oldest session logs so at most keep remain.
// Session names embed a sortable timestamp.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			names = append(names, entry.Name())
		}
	}
	if len(names) <= keep {
		return
	}

	slices.Sort(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", name, "error", err)
		}
	}
}
