package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var outputFile string

func createAnalyzeCmd() *cobra.Command {
	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Report classes a shrink pass would eliminate",
		Long: `Run the two-pass reachability analysis and report every class that would be
eliminated from the registered dependencies, one external name per line.

Examples:
  classtrim analyze --classes-dir build/classes --minimize deps/guava.jar`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := loadConfig()

			trk, err := buildTracker(cfg, selectLogger())
			if err != nil {
				return fmt.Errorf("failed to create tracker: %w", err)
			}

			unused, err := trk.FindUnused()
			if err != nil {
				return fmt.Errorf("failed to analyze unused classes: %w", err)
			}

			return writeReport(unused)
		},
	}

	addInputFlags(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the report to a file instead of stdout")

	return analyzeCmd
}

// writeReport prints the unused class names sorted, one per line.
func writeReport(unused map[string]struct{}) error {
	lines := make([]string, 0, len(unused))
	for name := range unused {
		lines = append(lines, name)
	}
	sort.Strings(lines)

	report := strings.Join(lines, "\n")
	if len(lines) > 0 {
		report += "\n"
	}

	if outputFile == "" {
		fmt.Print(report)
		return nil
	}

	if err := os.WriteFile(outputFile, []byte(report), 0644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", outputFile, err)
	}
	return nil
}
