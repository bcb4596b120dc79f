package cli

import (
	"fmt"
	"os"

	"github.com/spec-kitty/kitty-bridge/internal/rulesync"
	"github.com/spf13/cobra"
)

var (
	rulesFile string
	rulesAll  bool
)

func init() {
	rulesSyncCmd.Flags().StringVar(&rulesFile, "rule", "", "Specific rule filename to sync (e.g., standard-workflow-rules.md)")
	rulesSyncCmd.Flags().BoolVar(&rulesAll, "all", false, "Sync all rules from .agent/rules/")
	rulesCmd.AddCommand(rulesSyncCmd)
	rootCmd.AddCommand(rulesCmd)
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage shared rule regions in monolithic agent files",
}

var rulesSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Inject rule content into CLAUDE.md, copilot-instructions.md, and GEMINI.md",
	Long: `Synchronize rule files from .agent/rules/ into the marker-delimited
region of each agent's monolithic configuration file. The surrounding
hand-authored content is preserved; only the managed region is replaced.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if rulesFile == "" && !rulesAll {
			return fmt.Errorf("provide --rule <filename> or --all")
		}

		root, err := projectRoot()
		if err != nil {
			return err
		}

		file := rulesFile
		if rulesAll {
			file = ""
		}
		if err := rulesync.SyncRules(root, file, os.Stdout); err != nil {
			return err
		}

		fmt.Println("Done.")
		return nil
	},
}
