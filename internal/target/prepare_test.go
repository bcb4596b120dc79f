package target

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spec-kitty/kitty-bridge/internal/source"
)

func TestPrepareCleanSweepsCommandDirs(t *testing.T) {
	tmpDir := t.TempDir()
	p := mustProfile(t, Claude)

	stale := filepath.Join(tmpDir, ".claude", "commands", "removed-workflow.md")
	if err := os.MkdirAll(filepath.Dir(stale), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(stale, []byte("orphan"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := Prepare(tmpDir, []Profile{p}); err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale command file survived the clean sweep")
	}
	if info, err := os.Stat(filepath.Join(tmpDir, ".claude", "commands")); err != nil || !info.IsDir() {
		t.Error("commands directory was not recreated")
	}
}

func TestPreparePreservesRulesDir(t *testing.T) {
	tmpDir := t.TempDir()
	p := mustProfile(t, Antigravity)

	manual := filepath.Join(tmpDir, ".agent", "rules", "hand-authored.md")
	if err := os.MkdirAll(filepath.Dir(manual), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(manual, []byte("keep me"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := Prepare(tmpDir, []Profile{p}); err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}

	if _, err := os.Stat(manual); err != nil {
		t.Error("hand-authored rule was deleted by Prepare")
	}
}

func TestOrphanRemovalAcrossRuns(t *testing.T) {
	tmpDir := t.TempDir()
	p := mustProfile(t, Antigravity)

	// First run: two workflows.
	docs := &source.Set{Workflows: []source.Document{
		{Name: "keep.md", Body: "keep"},
		{Name: "gone.md", Body: "gone"},
	}}
	if err := Prepare(tmpDir, []Profile{p}); err != nil {
		t.Fatalf("prepare: %v", err)
	}
	New(p).Project(tmpDir, docs)

	// Second run: one workflow removed from source.
	docs = &source.Set{Workflows: []source.Document{
		{Name: "keep.md", Body: "keep"},
	}}
	if err := Prepare(tmpDir, []Profile{p}); err != nil {
		t.Fatalf("prepare: %v", err)
	}
	New(p).Project(tmpDir, docs)

	if _, err := os.Stat(filepath.Join(tmpDir, ".agent", "workflows", "gone.md")); !os.IsNotExist(err) {
		t.Error("removed workflow left an orphan artifact")
	}
	if _, err := os.Stat(filepath.Join(tmpDir, ".agent", "workflows", "keep.md")); err != nil {
		t.Error("surviving workflow missing after second run")
	}
}

func TestParseName(t *testing.T) {
	for _, name := range []string{"antigravity", "claude", "gemini", "copilot"} {
		if _, ok := ParseName(name); !ok {
			t.Errorf("expected %s to parse", name)
		}
	}
	if _, ok := ParseName("cursor"); ok {
		t.Error("unknown target should not parse")
	}
}
