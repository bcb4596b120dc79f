package cli

import (
	"fmt"
	"os"

	"github.com/spec-kitty/kitty-bridge/internal/rulesync"
	"github.com/spf13/cobra"
)

var skillsAll bool

func init() {
	skillsSyncCmd.Flags().BoolVar(&skillsAll, "all", false, "Sync all skills from .agent/skills/")
	skillsCmd.AddCommand(skillsSyncCmd)
	rootCmd.AddCommand(skillsCmd)
}

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Manage shared skill regions in monolithic agent files",
}

var skillsSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Inject skill documentation into CLAUDE.md, copilot-instructions.md, and GEMINI.md",
	Long: `Synchronize every .agent/skills/<name>/SKILL.md into the marker-delimited
skills region of each agent's monolithic configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !skillsAll {
			return fmt.Errorf("provide --all")
		}

		root, err := projectRoot()
		if err != nil {
			return err
		}

		if err := rulesync.SyncSkills(root, os.Stdout); err != nil {
			return err
		}

		fmt.Println("Done.")
		return nil
	},
}
