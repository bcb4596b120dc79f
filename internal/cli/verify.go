package cli

import (
	"fmt"
	"os"

	"github.com/spec-kitty/kitty-bridge/internal/bridgecfg"
	"github.com/spec-kitty/kitty-bridge/internal/verify"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Audit projected configurations against the source of truth",
	Long: `Independently re-derive the expected artifacts for every source document
and target, then report missing files and content drift. Verification
never trusts the sync run's own bookkeeping: it re-scans the source tree.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := projectRoot()
		if err != nil {
			return err
		}

		cfg, err := bridgecfg.Load(root)
		if err != nil {
			return err
		}

		result := verify.Run(root, cfg, os.Stdout)

		for _, w := range result.Warnings {
			fmt.Printf("[WARN] %s\n", w)
		}
		for _, e := range result.Errors {
			fmt.Printf("[FAIL] %s\n", e)
		}

		if result.Failed() {
			return fmt.Errorf("verification failed with %d issue(s)", len(result.Errors))
		}

		fmt.Println("Integrity verified: all targets are in sync.")
		return nil
	},
}
