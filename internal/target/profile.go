package target

import (
	"path/filepath"

	"github.com/spec-kitty/kitty-bridge/internal/source"
	"github.com/spec-kitty/kitty-bridge/internal/transform"
)

// Name identifies a supported agent runtime.
type Name string

const (
	Antigravity Name = "antigravity"
	Claude      Name = "claude"
	Gemini      Name = "gemini"
	Copilot     Name = "copilot"
)

// Strategy selects how a target's artifacts are written.
type Strategy string

const (
	// PerFile writes every rule and workflow as its own file.
	PerFile Strategy = "per-file"
	// Monolithic aggregates rules into one context document and writes
	// workflows one per file.
	Monolithic Strategy = "monolithic"
	// Structured aggregates rules into one context document and writes
	// workflows as structured TOML command files.
	Structured Strategy = "structured"
)

// Profile is the fixed configuration for one target runtime. Profiles are
// data, not behavior: the projector implementations read them, and the
// verifier re-derives expected paths from the same table.
type Profile struct {
	Name     Name
	Strategy Strategy

	// Root is the target's dot-directory relative to the project root.
	Root string

	// Actor replaces the generic actor token in workflow bodies.
	Actor string

	// ArgumentPlaceholder, when non-empty, replaces the generic argument
	// token in workflow bodies.
	ArgumentPlaceholder string

	// RulesDir is the per-file rules subdirectory under Root ("" = the
	// target has no per-file rules).
	RulesDir string

	// CommandsDir is the generated workflow subdirectory under Root. It is
	// 100% machine-generated and clean-swept before every run.
	CommandsDir string

	// WorkflowExt, when non-empty, names workflow artifacts <stem><ext>
	// instead of keeping the source filename.
	WorkflowExt string

	// ContextFile is the monolithic context document path relative to the
	// project root ("" = none). Note the gemini context lives at the
	// project root, outside Root.
	ContextFile string

	// ContextHeader opens the monolithic context document.
	ContextHeader string

	// SectionPrefix opens each rule section heading in the context document.
	SectionPrefix string

	// IndexWorkflows appends an index of available workflow identifiers to
	// the context document.
	IndexWorkflows bool
}

// AllNames returns the names of every supported target, in projection order.
func AllNames() []Name {
	return []Name{Antigravity, Claude, Gemini, Copilot}
}

// ParseName converts a string to a Name, returning false if unknown.
func ParseName(s string) (Name, bool) {
	switch Name(s) {
	case Antigravity, Claude, Gemini, Copilot:
		return Name(s), true
	default:
		return "", false
	}
}

// profileRegistry is the fixed per-target configuration table.
var profileRegistry = map[Name]Profile{
	Antigravity: {
		Name:        Antigravity,
		Strategy:    PerFile,
		Root:        ".agent",
		Actor:       "antigravity",
		RulesDir:    "rules",
		CommandsDir: "workflows",
	},
	Claude: {
		Name:          Claude,
		Strategy:      Monolithic,
		Root:          ".claude",
		Actor:         "claude",
		CommandsDir:   "commands",
		ContextFile:   filepath.Join(".claude", "CLAUDE.md"),
		ContextHeader: "# Claude Assistant Instructions\nManaged by Spec Kitty Bridge.\n\n",
		SectionPrefix: "## ",
	},
	Gemini: {
		Name:                Gemini,
		Strategy:            Structured,
		Root:                ".gemini",
		Actor:               "gemini",
		ArgumentPlaceholder: "{{args}}",
		CommandsDir:         "commands",
		WorkflowExt:         ".toml",
		ContextFile:         "GEMINI.md",
		ContextHeader:       "# Gemini CLI Instructions\nManaged by Spec Kitty Bridge.\n\n",
		SectionPrefix:       "## ",
	},
	Copilot: {
		Name:           Copilot,
		Strategy:       Monolithic,
		Root:           ".github",
		Actor:          "copilot",
		CommandsDir:    "prompts",
		WorkflowExt:    ".prompt.md",
		ContextFile:    filepath.Join(".github", "copilot-instructions.md"),
		ContextHeader:  "# Copilot Instructions\n> Managed by Spec Kitty Bridge.\n\n",
		SectionPrefix:  "## Rule: ",
		IndexWorkflows: true,
	},
}

// ProfileFor returns the profile for a target name.
func ProfileFor(name Name) (Profile, bool) {
	p, ok := profileRegistry[name]
	return p, ok
}

// Profiles resolves a list of target names to profiles, preserving order.
// Unknown names are skipped and reported.
func Profiles(names []string) (profiles []Profile, unknown []string) {
	for _, n := range names {
		name, ok := ParseName(n)
		if !ok {
			unknown = append(unknown, n)
			continue
		}
		p, _ := ProfileFor(name)
		profiles = append(profiles, p)
	}
	return profiles, unknown
}

// TransformRules returns the content substitutions for this target.
func (p Profile) TransformRules() transform.Rules {
	return transform.Rules{
		Actor:               p.Actor,
		ArgumentPlaceholder: p.ArgumentPlaceholder,
	}
}

// RulePath returns the per-file rule artifact path for a logical rule name,
// or "" if the target has no per-file rules.
func (p Profile) RulePath(projectRoot, name string) string {
	if p.RulesDir == "" {
		return ""
	}
	return filepath.Join(projectRoot, p.Root, p.RulesDir, name+".md")
}

// WorkflowFileName returns the artifact filename for a workflow document.
func (p Profile) WorkflowFileName(d source.Document) string {
	if p.WorkflowExt == "" {
		return d.Name
	}
	return d.Stem() + p.WorkflowExt
}

// WorkflowPath returns the workflow artifact path for a workflow document.
func (p Profile) WorkflowPath(projectRoot string, d source.Document) string {
	return filepath.Join(projectRoot, p.Root, p.CommandsDir, p.WorkflowFileName(d))
}

// ContextPath returns the monolithic context document path, or "" if the
// target has none.
func (p Profile) ContextPath(projectRoot string) string {
	if p.ContextFile == "" {
		return ""
	}
	return filepath.Join(projectRoot, p.ContextFile)
}

// CommandsPath returns the generated workflow directory for this target.
func (p Profile) CommandsPath(projectRoot string) string {
	return filepath.Join(projectRoot, p.Root, p.CommandsDir)
}
