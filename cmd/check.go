package cmd

import (
	"encoding/json"
	"fmt"

	"model-binder/core/config"

	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the application configuration",
	Long:  `Binds the configuration from .env, config.yaml and the environment and lists every value that could not be bound. Exits non-zero when problems are found.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		_, problems, err := config.LoadConfig(configDir)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(problems); err != nil {
				return err
			}
		} else if len(problems) == 0 {
			fmt.Fprintln(out, "configuration OK")
		} else {
			for _, p := range problems {
				fmt.Fprintln(out, p.String())
			}
		}

		if len(problems) > 0 {
			return fmt.Errorf("configuration has %d problem(s)", len(problems))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("json", false, "Output problems as JSON")
}
