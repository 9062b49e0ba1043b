// Package main provides the command-line interface for the classtrim tool.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/classtrim/classtrim/pkg/config"
	"github.com/classtrim/classtrim/pkg/engine"
	"github.com/classtrim/classtrim/pkg/logger"
	"github.com/classtrim/classtrim/pkg/tracker"
	"github.com/spf13/cobra"
)

var (
	quiet      bool
	verbose    bool
	configPath string
	engineJar  string

	classDirs    []string
	apiArchives  []string
	minimizeSet  []string
	dependencies []string
)

// loadConfig loads the configuration, falling back to defaults when no config
// file exists. A config file named with -c must load.
func loadConfig() *config.Config {
	manager := config.NewManager()

	path := configPath
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		path = filepath.Join(homeDir, ".classtrim", "config.yaml")
	}

	cfg, err := manager.LoadConfig(path)
	if err != nil {
		if configPath != "" {
			log.Fatalf("failed to load configuration from %s: %v", path, err)
		}
		cfg = manager.DefaultConfig()
	}

	if engineJar != "" {
		cfg.EngineJar = engineJar
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v (set engine_jar in the config file or pass --engine-jar)", err)
	}

	return cfg
}

// selectLogger picks the logger implied by the verbosity flags.
func selectLogger() logger.Logger {
	if verbose && !quiet {
		return logger.NewVerboseLogger()
	}
	return logger.NewNoopLogger()
}

// buildTracker assembles a tracker over the exec-backed engine from the
// loaded configuration and the input flags, and registers every dependency
// candidate.
func buildTracker(cfg *config.Config, lg logger.Logger) (tracker.Tracker, error) {
	eng := engine.NewExecEngine(engine.NewExecEngineParams{
		Logger:         lg,
		JavaBin:        cfg.JavaBin,
		EngineJar:      cfg.EngineJar,
		RuntimeArchive: cfg.RuntimeArchive,
		WorkDir:        filepath.Join(cfg.WorkDir, "engine"),
	})

	trk, err := tracker.New(tracker.NewTrackerParams{
		ClassDirs:   classDirs,
		APIArchives: apiArchives,
		ToMinimize:  minimizeSet,
		WorkDir:     cfg.WorkDir,
		Engine:      eng,
		Logger:      lg,
	})
	if err != nil {
		return nil, err
	}

	// Without explicit registrations every to-minimize artifact is tracked.
	deps := dependencies
	if len(deps) == 0 {
		deps = minimizeSet
	}
	for _, dep := range deps {
		trk.AddDependency(dep)
	}

	return trk, nil
}

// addInputFlags registers the analysis input flags shared by subcommands.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&classDirs, "classes-dir", nil, "First-party class output directory (repeatable)")
	cmd.Flags().StringArrayVar(&apiArchives, "api-archive", nil, "First-party archive analyzed but never minimized (repeatable)")
	cmd.Flags().StringArrayVar(&minimizeSet, "minimize", nil, "Dependency archive or directory eligible for minimization (repeatable)")
	cmd.Flags().StringArrayVar(&dependencies, "dependency", nil, "Dependency candidate to register; defaults to the --minimize set (repeatable)")
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "classtrim",
		Short: "Classtrim - unused class analysis for dependency minimization",
		Long: `Classtrim determines which classes a whole-program reachability analysis ` +
			`would eliminate from merged dependency archives, without shrinking the real output.`,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors and results")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")
	rootCmd.PersistentFlags().StringVar(&engineJar, "engine-jar", "", "Override the shrinker engine jar path")

	rootCmd.AddCommand(createAnalyzeCmd())
	rootCmd.AddCommand(createKeepRulesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
