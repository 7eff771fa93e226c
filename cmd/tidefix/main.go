// cmd/tidefix/main.go
package main

import (
	"flag"
	"fmt"
	stlog "log" // standard log for fatal errors before the logger is ready
	"os"

	"github.com/bethropolis/tidefix/internal/app"
	"github.com/bethropolis/tidefix/internal/config"
	"github.com/bethropolis/tidefix/internal/logger"
)

func main() {
	// --- Argument & Flag Parsing ---
	flags := config.NewFlags(flag.CommandLine)
	if _, err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return
	}

	// --- Configuration ---
	cfg, undecoded, err := config.Load(flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Logger Initialization ---
	logger.SetFilterDebug(flags.DebugLog)
	if cfg.Logger.LogFilePath == "" {
		// stderr belongs to the terminal UI
		cfg.Logger.LogFilePath = config.DefaultLogFileName
	}
	logFile, err := logger.Open(cfg.Logger)
	if err != nil {
		stlog.Fatalf("Failed to open log: %v", err)
	}
	defer logFile.Close()

	logger.Infof("Starting %s %s...", config.AppName, config.Version)
	logger.Debugf("Log level set to: %s", cfg.Logger.LogLevel)
	for _, key := range undecoded {
		logger.Warnf("Unknown configuration key: %s", key)
	}

	// --- Create and Run App ---
	recorderApp, err := app.NewApp(cfg)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		logFile.Close()
		os.Exit(1)
	}
	if err := recorderApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		logFile.Close()
		os.Exit(1)
	}
	logger.Infof("%s finished.", config.AppName)
}
