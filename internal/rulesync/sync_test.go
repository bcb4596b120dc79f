package rulesync

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReplaceRegionReplacesExisting(t *testing.T) {
	doc := "intro\n<!-- X_START -->\nold content\n<!-- X_END -->\noutro"
	block := "<!-- X_START -->\nnew content\n<!-- X_END -->"

	got, replaced := ReplaceRegion(doc, "<!-- X_START -->", "<!-- X_END -->", block)

	if !replaced {
		t.Error("expected replacement of existing region")
	}
	if got != "intro\n<!-- X_START -->\nnew content\n<!-- X_END -->\noutro" {
		t.Errorf("unexpected result: %q", got)
	}
}

func TestReplaceRegionAppendsWhenAbsent(t *testing.T) {
	doc := "hand-authored prose"
	block := "<!-- X_START -->\ncontent\n<!-- X_END -->"

	got, replaced := ReplaceRegion(doc, "<!-- X_START -->", "<!-- X_END -->", block)

	if replaced {
		t.Error("expected append mode for markerless document")
	}
	if !strings.HasPrefix(got, "hand-authored prose\n\n") || !strings.HasSuffix(got, block) {
		t.Errorf("unexpected result: %q", got)
	}
}

func TestReplaceRegionHalfMarkerAppends(t *testing.T) {
	// Only the start marker exists: the region is treated as absent.
	doc := "text\n<!-- X_START -->\ndangling"
	block := "<!-- X_START -->\nnew\n<!-- X_END -->"

	_, replaced := ReplaceRegion(doc, "<!-- X_START -->", "<!-- X_END -->", block)
	if replaced {
		t.Error("expected append mode when end marker is missing")
	}
}

func TestReplaceRegionFirstEndMarkerWins(t *testing.T) {
	// A marker-like literal inside injected content is not guarded against;
	// the first end marker terminates the region.
	doc := "a\n<!-- X_START -->\ninner <!-- X_END --> trailing\n<!-- X_END -->\nz"
	block := "<!-- X_START -->\nnew\n<!-- X_END -->"

	got, replaced := ReplaceRegion(doc, "<!-- X_START -->", "<!-- X_END -->", block)
	if !replaced {
		t.Fatal("expected replacement")
	}
	// Everything after the *first* end marker survives.
	if !strings.Contains(got, "trailing") {
		t.Errorf("expected content after first end marker to survive: %q", got)
	}
}

func setupProject(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()

	rulesDir := filepath.Join(tmpDir, ".agent", "rules")
	if err := os.MkdirAll(rulesDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(rulesDir, "workflow.md"), []byte("rule body"), 0644); err != nil {
		t.Fatalf("write rule: %v", err)
	}

	claudeDir := filepath.Join(tmpDir, ".claude")
	if err := os.MkdirAll(claudeDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(claudeDir, "CLAUDE.md"), []byte("# Hand-authored\n"), 0644); err != nil {
		t.Fatalf("write CLAUDE.md: %v", err)
	}

	return tmpDir
}

func TestSyncRulesAppendsAndThenReplaces(t *testing.T) {
	tmpDir := setupProject(t)
	var out bytes.Buffer

	if err := SyncRules(tmpDir, "", &out); err != nil {
		t.Fatalf("SyncRules failed: %v", err)
	}

	claudePath := filepath.Join(tmpDir, ".claude", "CLAUDE.md")
	data, _ := os.ReadFile(claudePath)
	text := string(data)

	if !strings.Contains(text, "# Hand-authored") {
		t.Error("hand-authored content was lost")
	}
	if !strings.Contains(text, RulesBlock.Start) || !strings.Contains(text, "--- RULE: workflow.md ---") {
		t.Errorf("expected injected rules block, got:\n%s", text)
	}
	if !strings.Contains(out.String(), "Appending new block") {
		t.Errorf("expected append notice, got %q", out.String())
	}

	// Second sync replaces in place: exactly one marker pair remains.
	out.Reset()
	if err := SyncRules(tmpDir, "", &out); err != nil {
		t.Fatalf("second SyncRules failed: %v", err)
	}
	data, _ = os.ReadFile(claudePath)
	if strings.Count(string(data), RulesBlock.Start) != 1 {
		t.Error("expected exactly one rules block after re-sync")
	}
	if !strings.Contains(out.String(), "Updating existing block") {
		t.Errorf("expected update notice, got %q", out.String())
	}
}

func TestSyncRulesSingleRule(t *testing.T) {
	tmpDir := setupProject(t)
	var out bytes.Buffer

	if err := SyncRules(tmpDir, "workflow.md", &out); err != nil {
		t.Fatalf("SyncRules failed: %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(tmpDir, ".claude", "CLAUDE.md"))
	if !strings.Contains(string(data), "rule body") {
		t.Error("expected single rule content injected")
	}
}

func TestSyncRulesMissingRuleFails(t *testing.T) {
	tmpDir := setupProject(t)

	if err := SyncRules(tmpDir, "no-such-rule.md", &bytes.Buffer{}); err == nil {
		t.Error("expected error for missing rule file")
	}
}

func TestSyncSkipsMissingTargets(t *testing.T) {
	tmpDir := setupProject(t)
	var out bytes.Buffer

	// GEMINI.md and copilot-instructions.md don't exist; only CLAUDE.md is touched.
	if err := SyncRules(tmpDir, "", &out); err != nil {
		t.Fatalf("SyncRules failed: %v", err)
	}

	if !strings.Contains(out.String(), "[GEMINI] File not found") {
		t.Errorf("expected skip notice for GEMINI, got %q", out.String())
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "GEMINI.md")); !os.IsNotExist(err) {
		t.Error("missing target file should not be created by rule sync")
	}
}

func TestSyncSkills(t *testing.T) {
	tmpDir := setupProject(t)

	skillDir := filepath.Join(tmpDir, ".agent", "skills", "review")
	if err := os.MkdirAll(skillDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(skillDir, "SKILL.md"), []byte("skill doc"), 0644); err != nil {
		t.Fatalf("write skill: %v", err)
	}

	if err := SyncSkills(tmpDir, &bytes.Buffer{}); err != nil {
		t.Fatalf("SyncSkills failed: %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(tmpDir, ".claude", "CLAUDE.md"))
	text := string(data)
	if !strings.Contains(text, SkillsBlock.Start) || !strings.Contains(text, "--- SKILL: review ---") {
		t.Errorf("expected skills block, got:\n%s", text)
	}
}

func TestRulesAndSkillsBlocksCoexist(t *testing.T) {
	tmpDir := setupProject(t)

	skillDir := filepath.Join(tmpDir, ".agent", "skills", "review")
	if err := os.MkdirAll(skillDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(skillDir, "SKILL.md"), []byte("skill doc"), 0644); err != nil {
		t.Fatalf("write skill: %v", err)
	}

	if err := SyncRules(tmpDir, "", &bytes.Buffer{}); err != nil {
		t.Fatalf("SyncRules: %v", err)
	}
	if err := SyncSkills(tmpDir, &bytes.Buffer{}); err != nil {
		t.Fatalf("SyncSkills: %v", err)
	}
	// Re-sync rules: must not disturb the skills block.
	if err := SyncRules(tmpDir, "", &bytes.Buffer{}); err != nil {
		t.Fatalf("re-sync rules: %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(tmpDir, ".claude", "CLAUDE.md"))
	text := string(data)
	if strings.Count(text, RulesBlock.Start) != 1 || strings.Count(text, SkillsBlock.Start) != 1 {
		t.Errorf("expected one block of each kind, got:\n%s", text)
	}
}
