package rulesync

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Block describes one machine-managed region kind.
type Block struct {
	Start  string
	End    string
	Header string
}

// RulesBlock delimits the shared-rules region.
var RulesBlock = Block{
	Start:  "<!-- RULES_SYNC_START -->",
	End:    "<!-- RULES_SYNC_END -->",
	Header: "# SHARED RULES FROM .agent/rules/",
}

// SkillsBlock delimits the shared-skills region.
var SkillsBlock = Block{
	Start:  "<!-- SKILLS_SYNC_START -->",
	End:    "<!-- SKILLS_SYNC_END -->",
	Header: "# SHARED SKILLS FROM .agent/skills/",
}

// syncTarget is one monolithic file that receives injected regions.
type syncTarget struct {
	Label string
	Path  string // relative to project root
}

func syncTargets() []syncTarget {
	return []syncTarget{
		{Label: "CLAUDE", Path: filepath.Join(".claude", "CLAUDE.md")},
		{Label: "COPILOT", Path: filepath.Join(".github", "copilot-instructions.md")},
		{Label: "GEMINI", Path: "GEMINI.md"},
	}
}

// Render builds the full injection block (markers included) around content.
func (b Block) Render(content string) string {
	return b.Start + "\n" + b.Header + "\n" + content + "\n" + b.End
}

// SyncRules injects rule content into every monolithic target file. When
// ruleFile is non-empty only that rule is injected; otherwise all rules
// from .agent/rules/ are concatenated. Progress is reported to out.
func SyncRules(projectRoot, ruleFile string, out io.Writer) error {
	var content string
	if ruleFile != "" {
		rulePath := filepath.Join(projectRoot, ".agent", "rules", ruleFile)
		data, err := os.ReadFile(rulePath)
		if err != nil {
			return fmt.Errorf("rule file %s not found in .agent/rules: %w", ruleFile, err)
		}
		content = string(data)
	} else {
		content = allRulesContent(projectRoot)
	}

	return updateTargets(projectRoot, RulesBlock, content, out)
}

// SyncSkills injects all skill documentation (.agent/skills/*/SKILL.md)
// into every monolithic target file.
func SyncSkills(projectRoot string, out io.Writer) error {
	return updateTargets(projectRoot, SkillsBlock, allSkillsContent(projectRoot), out)
}

// updateTargets applies the injection block to each target file. Missing
// target files are skipped with a notice, not an error: an agent that was
// never initialized simply has nothing to update.
func updateTargets(projectRoot string, block Block, content string, out io.Writer) error {
	rendered := block.Render(content)

	for _, tgt := range syncTargets() {
		path := filepath.Join(projectRoot, tgt.Path)

		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(out, "[%s] File not found: %s, skipping.\n", tgt.Label, tgt.Path)
			continue
		}

		updated, replaced := ReplaceRegion(string(data), block.Start, block.End, rendered)
		if replaced {
			fmt.Fprintf(out, "[%s] Updating existing block.\n", tgt.Label)
		} else {
			fmt.Fprintf(out, "[%s] Appending new block.\n", tgt.Label)
		}

		if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	return nil
}

// allRulesContent concatenates every .md file in .agent/rules, sorted, with
// a labeled separator per rule.
func allRulesContent(projectRoot string) string {
	rulesDir := filepath.Join(projectRoot, ".agent", "rules")
	entries, err := os.ReadDir(rulesDir)
	if err != nil {
		return ""
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".md") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(rulesDir, name))
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "\n\n--- RULE: %s ---\n\n", name)
		b.Write(data)
	}
	return b.String()
}

// allSkillsContent concatenates every .agent/skills/<name>/SKILL.md, sorted
// by skill directory name.
func allSkillsContent(projectRoot string) string {
	skillsDir := filepath.Join(projectRoot, ".agent", "skills")
	entries, err := os.ReadDir(skillsDir)
	if err != nil {
		return ""
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(skillsDir, name, "SKILL.md"))
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "\n\n--- SKILL: %s ---\n\n", name)
		b.Write(data)
	}
	return b.String()
}
