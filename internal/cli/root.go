package cli

import (
	"fmt"
	"os"

	"github.com/spec-kitty/kitty-bridge/internal/branding"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	projectFlag string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` keeps a single source of truth for agent rules and workflows
and projects it into the native configuration of every supported runtime
(Antigravity, Claude, Gemini, GitHub Copilot).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&projectFlag, "project", "", "Project root (defaults to the current directory)")
}

// projectRoot resolves the project directory the commands operate on.
func projectRoot() (string, error) {
	if projectFlag != "" {
		return projectFlag, nil
	}
	if env := os.Getenv(branding.EnvVar("PROJECT")); env != "" {
		return env, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
