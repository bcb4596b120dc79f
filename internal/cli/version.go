package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spec-kitty/kitty-bridge/internal/branding"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

// buildInfo is the JSON shape emitted by version --json.
type buildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case versionShort:
			fmt.Println(buildVersion)
		case versionJSON:
			out, err := json.MarshalIndent(buildInfo{
				Version: buildVersion,
				Commit:  buildCommit,
				Date:    buildDate,
			}, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Println(string(out))
		default:
			fmt.Printf("%s version %s (commit: %s, built: %s)\n", branding.CLIName(), buildVersion, buildCommit, buildDate)
		}
		return nil
	},
}
