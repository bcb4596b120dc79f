package target

import (
	"github.com/spec-kitty/kitty-bridge/internal/source"
)

// fileProjector writes every rule and workflow as its own file. Rules are
// copied verbatim (they carry no actor tokens); workflows are transformed.
type fileProjector struct {
	profile Profile
}

func (f *fileProjector) Profile() Profile { return f.profile }

func (f *fileProjector) Project(projectRoot string, docs *source.Set) *Result {
	res := &Result{Target: f.profile.Name}

	for _, rule := range docs.Rules {
		if writeArtifact(res, f.profile.RulePath(projectRoot, rule.Name), []byte(rule.Body)) {
			res.Rules++
		}
	}

	projectWorkflowFiles(res, f.profile, projectRoot, docs)
	return res
}
