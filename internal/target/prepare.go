package target

import (
	"fmt"
	"os"
	"path/filepath"
)

// Prepare establishes a clean destination tree for the given profiles.
//
// Generated-only workflow/command directories are removed and recreated so
// a renamed or deleted source workflow can never leave an orphan artifact.
// Per-file rules directories may hold hand-authored files alongside
// generated ones, so they are only ensured to exist, never swept. The
// asymmetry is a deliberate invariant.
func Prepare(projectRoot string, profiles []Profile) error {
	for _, p := range profiles {
		if p.RulesDir != "" {
			dir := filepath.Join(projectRoot, p.Root, p.RulesDir)
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("creating %s rules directory %s: %w", p.Name, dir, err)
			}
		}

		if err := cleanDir(p.CommandsPath(projectRoot)); err != nil {
			return fmt.Errorf("preparing %s: %w", p.Name, err)
		}
	}
	return nil
}

// cleanDir removes dir and recreates it empty.
func cleanDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("removing %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}
