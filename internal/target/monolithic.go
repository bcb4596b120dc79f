package target

import (
	"github.com/spec-kitty/kitty-bridge/internal/source"
)

// monolithicProjector aggregates all rules into one context document and
// writes workflows one per file. The context document is regenerated
// wholesale each run; the commands directory projection is independent of it.
type monolithicProjector struct {
	profile Profile
}

func (m *monolithicProjector) Profile() Profile { return m.profile }

func (m *monolithicProjector) Project(projectRoot string, docs *source.Set) *Result {
	res := &Result{Target: m.profile.Name}

	projectContext(res, m.profile, projectRoot, docs)
	res.Rules = len(docs.Rules)

	projectWorkflowFiles(res, m.profile, projectRoot, docs)
	return res
}
