package cli

import (
	"fmt"
	"os"

	"github.com/spec-kitty/kitty-bridge/internal/bridge"
	"github.com/spec-kitty/kitty-bridge/internal/bridgecfg"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Project the source of truth into every target runtime",
	Long: `Read rules from .kittify/memory and workflows from .windsurf/workflows,
then regenerate the native configuration of each enabled target and
register the targets in .kittify/config.yaml.

Generated command/prompt directories are fully rebuilt on every run;
hand-authored rules directories are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := projectRoot()
		if err != nil {
			return err
		}

		cfg, err := bridgecfg.Load(root)
		if err != nil {
			return err
		}

		report, err := bridge.Run(root, cfg, os.Stdout)
		if err != nil {
			return err
		}

		if report.HasErrors() {
			return fmt.Errorf("sync recorded %d write error(s)", len(report.Errors()))
		}
		return nil
	},
}
