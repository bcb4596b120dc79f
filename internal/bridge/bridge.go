package bridge

import (
	"fmt"
	"io"
	"strings"

	"github.com/spec-kitty/kitty-bridge/internal/bridgecfg"
	"github.com/spec-kitty/kitty-bridge/internal/registrar"
	"github.com/spec-kitty/kitty-bridge/internal/source"
	"github.com/spec-kitty/kitty-bridge/internal/target"
)

// sourceAgent is the actor the canonical documents are written for; it is
// always registered alongside the projected targets.
const sourceAgent = "windsurf"

// Report is the outcome of one synchronization pass.
type Report struct {
	Results    []*target.Result
	Warnings   []string
	Registered []string
}

// Errors returns every hard per-artifact error recorded across targets.
func (r *Report) Errors() []string {
	var errs []string
	for _, res := range r.Results {
		errs = append(errs, res.Errors...)
	}
	return errs
}

// HasErrors reports whether any hard error was recorded.
func (r *Report) HasErrors() bool {
	return len(r.Errors()) > 0
}

// Run performs one full projection pass for the project rooted at
// projectRoot, writing progress to out. Soft failures become report
// warnings; hard per-artifact failures are recorded in the per-target
// results. The returned error covers only failures that prevent the pass
// from running at all (e.g. the destination tree cannot be prepared).
func Run(projectRoot string, cfg *bridgecfg.Config, out io.Writer) (*Report, error) {
	report := &Report{}

	profiles, unknown := target.Profiles(cfg.Targets)
	for _, name := range unknown {
		report.Warnings = append(report.Warnings, fmt.Sprintf("unknown target %q in bridge config, skipping", name))
	}

	fmt.Fprintln(out, "Preparing target directories...")
	if err := target.Prepare(projectRoot, profiles); err != nil {
		return nil, err
	}

	docs, warnings := source.Read(cfg.RulesPath(projectRoot), cfg.WorkflowsPath(projectRoot))
	report.Warnings = append(report.Warnings, warnings...)

	if docs.Empty() {
		report.Warnings = append(report.Warnings,
			"no source data found: run 'spec-kitty init' to populate the source of truth")
		printSummary(out, report)
		return report, nil
	}

	for _, p := range profiles {
		fmt.Fprintf(out, "Syncing %s (%s)...\n", p.Name, p.Root)
		res := target.New(p).Project(projectRoot, docs)
		report.Results = append(report.Results, res)
		fmt.Fprintf(out, "  [ OK ] %d rules, %d workflows\n", res.Rules, res.Workflows)
	}

	registerAgents(projectRoot, cfg, report, out)

	printSummary(out, report)
	return report, nil
}

// registerAgents records the source agent plus every enabled target in the
// shared config. Registration is best-effort metadata: failure degrades to
// a warning with manual-fix guidance.
func registerAgents(projectRoot string, cfg *bridgecfg.Config, report *Report, out io.Writer) {
	configPath := cfg.RegistryPath(projectRoot)
	agents := append([]string{sourceAgent}, cfg.Targets...)

	registered, err := registrar.Register(configPath, agents)
	if err != nil {
		report.Warnings = append(report.Warnings, fmt.Sprintf(
			"failed to update %s: %v (add the agents to agents.available manually)", configPath, err))
		return
	}

	report.Registered = registered
	fmt.Fprintf(out, "Registered %d agents: %s\n", len(registered), strings.Join(registered, ", "))
}

// printSummary enumerates warnings and errors after all targets have run.
func printSummary(out io.Writer, report *Report) {
	for _, w := range report.Warnings {
		fmt.Fprintf(out, "[WARN] %s\n", w)
	}
	for _, e := range report.Errors() {
		fmt.Fprintf(out, "[FAIL] %s\n", e)
	}

	if report.HasErrors() {
		fmt.Fprintln(out, "Sync finished with errors.")
	} else {
		fmt.Fprintln(out, "Sync complete.")
	}
}
