package target

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spec-kitty/kitty-bridge/internal/source"
	"github.com/spec-kitty/kitty-bridge/internal/transform"
)

// Result reports one target's projection outcome.
type Result struct {
	Target    Name
	Rules     int
	Workflows int
	Warnings  []string
	Errors    []string
}

// Projector writes source documents into one target's layout.
type Projector interface {
	Profile() Profile
	Project(projectRoot string, docs *source.Set) *Result
}

// New returns the projector implementation for a profile's strategy.
func New(p Profile) Projector {
	switch p.Strategy {
	case Monolithic:
		return &monolithicProjector{profile: p}
	case Structured:
		return &structuredProjector{profile: p}
	default:
		return &fileProjector{profile: p}
	}
}

// writeArtifact writes one artifact, creating parent directories as needed.
// A failure is recorded on the result with the offending path and does not
// stop sibling artifacts.
func writeArtifact(res *Result, path string, data []byte) bool {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("creating directory for %s: %v", path, err))
		return false
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("writing %s: %v", path, err))
		return false
	}
	return true
}

// buildContextDoc renders the monolithic context document: a fixed header,
// one section per rule, and (for targets that want one) an index of
// available workflow identifiers.
func buildContextDoc(p Profile, docs *source.Set) string {
	var b strings.Builder
	b.WriteString(p.ContextHeader)

	for _, rule := range docs.Rules {
		b.WriteString(p.SectionPrefix)
		b.WriteString(rule.Name)
		b.WriteString("\n\n")
		b.WriteString(rule.Body)
		b.WriteString("\n\n---\n\n")
	}

	if p.IndexWorkflows {
		b.WriteString("\n# Available Workflows\n")
		for _, wf := range docs.Workflows {
			fmt.Fprintf(&b, "- /%s/%s\n", p.CommandsDir, p.WorkflowFileName(wf))
		}
	}

	return b.String()
}

// projectContext writes the monolithic context document, if the profile has one.
func projectContext(res *Result, p Profile, projectRoot string, docs *source.Set) {
	path := p.ContextPath(projectRoot)
	if path == "" {
		return
	}
	writeArtifact(res, path, []byte(buildContextDoc(p, docs)))
}

// projectWorkflowFiles writes each workflow, transformed for the target,
// one file per document into the commands directory.
func projectWorkflowFiles(res *Result, p Profile, projectRoot string, docs *source.Set) {
	rules := p.TransformRules()
	for _, wf := range docs.Workflows {
		body := transform.Apply(wf.Body, rules)
		if writeArtifact(res, p.WorkflowPath(projectRoot, wf), []byte(body)) {
			res.Workflows++
		}
	}
}
