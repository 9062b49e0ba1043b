package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func createKeepRulesCmd() *cobra.Command {
	keepRulesCmd := &cobra.Command{
		Use:   "keep-rules",
		Short: "Print the synthesized keep rules for the first-party classes",
		Long: `Run only the enumeration pass and print one keep rule per first-party class,
as the engine itself sees the program.

Examples:
  classtrim keep-rules --classes-dir build/classes`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := loadConfig()

			trk, err := buildTracker(cfg, selectLogger())
			if err != nil {
				return fmt.Errorf("failed to create tracker: %w", err)
			}

			rules, err := trk.KeepRules()
			if err != nil {
				return fmt.Errorf("failed to synthesize keep rules: %w", err)
			}

			for _, rule := range rules {
				fmt.Println(rule)
			}
			return nil
		},
	}

	addInputFlags(keepRulesCmd)

	return keepRulesCmd
}
