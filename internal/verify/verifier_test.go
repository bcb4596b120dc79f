package verify

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spec-kitty/kitty-bridge/internal/bridge"
	"github.com/spec-kitty/kitty-bridge/internal/bridgecfg"
)

func syncedProject(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()

	memory := filepath.Join(tmpDir, ".kittify", "memory")
	workflows := filepath.Join(tmpDir, ".windsurf", "workflows")
	for _, dir := range []string{memory, workflows} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}

	files := map[string]string{
		filepath.Join(memory, "constitution.md"): "Be kind.\n",
		filepath.Join(workflows, "spec-kitty.accept.md"): "---\ndescription: \"Accept\"\n---\n" +
			"Run --actor \"windsurf\" with $ARGUMENTS\n",
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	if _, err := bridge.Run(tmpDir, bridgecfg.Default(), &bytes.Buffer{}); err != nil {
		t.Fatalf("sync: %v", err)
	}
	return tmpDir
}

func TestVerifyCleanProjectPasses(t *testing.T) {
	tmpDir := syncedProject(t)

	result := Run(tmpDir, bridgecfg.Default(), &bytes.Buffer{})

	if result.Failed() {
		t.Errorf("expected clean verification, got errors: %v", result.Errors)
	}
	if result.Rules != 1 || result.Workflows != 1 {
		t.Errorf("expected 1 rule and 1 workflow counted, got %d/%d", result.Rules, result.Workflows)
	}
}

func TestVerifyDetectsContentDrift(t *testing.T) {
	tmpDir := syncedProject(t)

	// Corrupt one projected artifact's substituted actor string.
	path := filepath.Join(tmpDir, ".claude", "commands", "spec-kitty.accept.md")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	corrupted := strings.ReplaceAll(string(data), `--actor "claude"`, `--actor "somebody"`)
	if err := os.WriteFile(path, []byte(corrupted), 0644); err != nil {
		t.Fatalf("corrupt artifact: %v", err)
	}

	result := Run(tmpDir, bridgecfg.Default(), &bytes.Buffer{})

	if !result.Failed() {
		t.Fatal("expected verification failure after corruption")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %v", result.Errors)
	}
	if !strings.Contains(result.Errors[0], "spec-kitty.accept.md") {
		t.Errorf("error should name the drifted artifact: %s", result.Errors[0])
	}
}

func TestVerifyDetectsMissingArtifact(t *testing.T) {
	tmpDir := syncedProject(t)

	if err := os.Remove(filepath.Join(tmpDir, ".gemini", "commands", "spec-kitty.accept.toml")); err != nil {
		t.Fatalf("remove artifact: %v", err)
	}

	result := Run(tmpDir, bridgecfg.Default(), &bytes.Buffer{})

	if !result.Failed() {
		t.Fatal("expected verification failure for missing artifact")
	}
	found := false
	for _, e := range result.Errors {
		if strings.Contains(e, "spec-kitty.accept.toml") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an error naming the missing artifact, got %v", result.Errors)
	}
}

func TestVerifyDetectsPlaceholderDrift(t *testing.T) {
	tmpDir := syncedProject(t)

	path := filepath.Join(tmpDir, ".gemini", "commands", "spec-kitty.accept.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	corrupted := strings.ReplaceAll(string(data), "{{args}}", "$ARGUMENTS")
	if err := os.WriteFile(path, []byte(corrupted), 0644); err != nil {
		t.Fatalf("corrupt artifact: %v", err)
	}

	result := Run(tmpDir, bridgecfg.Default(), &bytes.Buffer{})
	if !result.Failed() {
		t.Fatal("expected failure for un-substituted placeholder")
	}
}

func TestVerifyAcceptsEmptyDescription(t *testing.T) {
	tmpDir := t.TempDir()

	workflows := filepath.Join(tmpDir, ".windsurf", "workflows")
	if err := os.MkdirAll(workflows, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	// A declared but valueless description projects as an empty string.
	if err := os.WriteFile(filepath.Join(workflows, "wf.md"), []byte("---\ndescription:\n---\nBody.\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := bridge.Run(tmpDir, bridgecfg.Default(), &bytes.Buffer{}); err != nil {
		t.Fatalf("sync: %v", err)
	}

	result := Run(tmpDir, bridgecfg.Default(), &bytes.Buffer{})
	if result.Failed() {
		t.Errorf("empty description should verify clean, got %v", result.Errors)
	}
}

func TestVerifyDetectsDescriptionDrift(t *testing.T) {
	tmpDir := syncedProject(t)

	path := filepath.Join(tmpDir, ".gemini", "commands", "spec-kitty.accept.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	corrupted := strings.ReplaceAll(string(data), `'Accept'`, `'Edited by hand'`)
	if corrupted == string(data) {
		corrupted = strings.ReplaceAll(string(data), `"Accept"`, `"Edited by hand"`)
	}
	if err := os.WriteFile(path, []byte(corrupted), 0644); err != nil {
		t.Fatalf("corrupt artifact: %v", err)
	}

	result := Run(tmpDir, bridgecfg.Default(), &bytes.Buffer{})
	if !result.Failed() {
		t.Fatal("expected failure for drifted description")
	}
	if !strings.Contains(strings.Join(result.Errors, "\n"), "description mismatch") {
		t.Errorf("expected a description mismatch error, got %v", result.Errors)
	}
}

func TestVerifyEmptySourceWarnsOnly(t *testing.T) {
	tmpDir := t.TempDir()

	result := Run(tmpDir, bridgecfg.Default(), &bytes.Buffer{})

	if result.Failed() {
		t.Errorf("nothing to verify must not fail: %v", result.Errors)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected warnings for empty source tree")
	}
}

func TestVerifySkipsActorCheckForTokenFreeSource(t *testing.T) {
	tmpDir := t.TempDir()

	workflows := filepath.Join(tmpDir, ".windsurf", "workflows")
	if err := os.MkdirAll(workflows, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	// No actor token anywhere in the source body.
	if err := os.WriteFile(filepath.Join(workflows, "plain.md"), []byte("Just instructions.\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := bridge.Run(tmpDir, bridgecfg.Default(), &bytes.Buffer{}); err != nil {
		t.Fatalf("sync: %v", err)
	}

	result := Run(tmpDir, bridgecfg.Default(), &bytes.Buffer{})
	if result.Failed() {
		t.Errorf("token-free source should verify clean, got %v", result.Errors)
	}
}
