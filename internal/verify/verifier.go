package verify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/spec-kitty/kitty-bridge/internal/bridgecfg"
	"github.com/spec-kitty/kitty-bridge/internal/source"
	"github.com/spec-kitty/kitty-bridge/internal/target"
	"github.com/spec-kitty/kitty-bridge/internal/transform"
)

// Result collects the findings of one verification pass.
type Result struct {
	Errors    []string
	Warnings  []string
	Rules     int
	Workflows int
}

// Failed reports whether any error-level finding was recorded. Warnings
// never fail a verification run.
func (r *Result) Failed() bool {
	return len(r.Errors) > 0
}

func (r *Result) errorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Run audits every enabled target against the current source tree, writing
// per-target progress to out.
func Run(projectRoot string, cfg *bridgecfg.Config, out io.Writer) *Result {
	result := &Result{}

	docs, _ := source.Read(cfg.RulesPath(projectRoot), cfg.WorkflowsPath(projectRoot))
	result.Rules = len(docs.Rules)
	result.Workflows = len(docs.Workflows)

	if len(docs.Rules) == 0 {
		result.warnf("no source rules found in %s", cfg.Source.RulesDir)
	}
	if len(docs.Workflows) == 0 {
		result.warnf("no source workflows found in %s", cfg.Source.WorkflowsDir)
	}

	profiles, unknown := target.Profiles(cfg.Targets)
	for _, name := range unknown {
		result.warnf("unknown target %q in bridge config, skipping", name)
	}

	fmt.Fprintf(out, "Auditing %d rules and %d workflows across %d targets...\n",
		result.Rules, result.Workflows, len(profiles))

	for _, p := range profiles {
		fmt.Fprintf(out, "Checking %s (%s)...\n", p.Name, p.Root)
		checkTarget(result, projectRoot, p, docs)
	}

	return result
}

// checkTarget re-derives and asserts every expected artifact for one target.
func checkTarget(result *Result, projectRoot string, p target.Profile, docs *source.Set) {
	for _, wf := range docs.Workflows {
		path := p.WorkflowPath(projectRoot, wf)
		body, ok := checkExists(result, path, fmt.Sprintf("%s workflow %s", p.Name, wf.Name))
		if !ok {
			continue
		}

		// Structured artifacts are checked against the decoded prompt, not
		// the raw TOML encoding.
		if p.Strategy == target.Structured {
			prompt, ok := checkStructured(result, path, body, transform.Description(wf.Body, wf.Stem()))
			if !ok {
				continue
			}
			body = prompt
		}

		// Only expect the actor swap when the source actually carries the token.
		if strings.Contains(wf.Body, transform.SourceActorFlag()) {
			checkContent(result, path, body, transform.ActorFlag(p.Actor))
		}
		if p.ArgumentPlaceholder != "" && strings.Contains(wf.Body, transform.ArgumentsToken) {
			checkContent(result, path, body, p.ArgumentPlaceholder)
		}
	}

	for _, rule := range docs.Rules {
		if path := p.RulePath(projectRoot, rule.Name); path != "" {
			checkExists(result, path, fmt.Sprintf("%s rule %s", p.Name, rule.Name))
		}
	}

	// The monolithic context document is only expected once rules exist.
	if len(docs.Rules) > 0 {
		if path := p.ContextPath(projectRoot); path != "" {
			checkExists(result, path, fmt.Sprintf("%s context document", p.Name))
		}
	}
}

// checkExists asserts an artifact exists and returns its content.
func checkExists(result *Result, path, description string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		result.errorf("%s missing at %s", description, path)
		return "", false
	}
	return string(data), true
}

// checkContent asserts the artifact contains the expected transformed substring.
func checkContent(result *Result, path, body, expected string) {
	if !strings.Contains(body, expected) {
		result.errorf("%s content mismatch: missing %q", path, expected)
	}
}

// checkStructured asserts a structured command file parses as TOML and
// carries the description derived from the source front matter, returning
// the decoded prompt body. An empty description is legitimate when the
// front matter declares one with no value.
func checkStructured(result *Result, path, body, wantDescription string) (string, bool) {
	var cmd target.CommandFile
	if err := toml.Unmarshal([]byte(body), &cmd); err != nil {
		result.errorf("%s is not valid TOML: %v", path, err)
		return "", false
	}
	if cmd.Description != wantDescription {
		result.errorf("%s description mismatch: got %q, want %q", path, cmd.Description, wantDescription)
	}
	return cmd.Prompt, true
}
