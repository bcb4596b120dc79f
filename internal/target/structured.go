package target

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/spec-kitty/kitty-bridge/internal/source"
	"github.com/spec-kitty/kitty-bridge/internal/transform"
)

// CommandFile is the structured command document emitted for targets that
// consume TOML: a short description plus the full transformed workflow body
// as a multi-line prompt. The verifier reads artifacts back through the
// same struct.
type CommandFile struct {
	Description string `toml:"description"`
	Prompt      string `toml:"prompt,multiline"`
}

// structuredProjector aggregates rules into a context document and writes
// each workflow as a TOML command file named <stem>.toml. The description
// comes from the workflow's front matter, falling back to a generated
// default; it is recomputed from the source body on every run.
type structuredProjector struct {
	profile Profile
}

func (s *structuredProjector) Profile() Profile { return s.profile }

func (s *structuredProjector) Project(projectRoot string, docs *source.Set) *Result {
	res := &Result{Target: s.profile.Name}

	projectContext(res, s.profile, projectRoot, docs)
	res.Rules = len(docs.Rules)

	rules := s.profile.TransformRules()
	for _, wf := range docs.Workflows {
		cmd := CommandFile{
			Description: transform.Description(wf.Body, wf.Stem()),
			Prompt:      transform.Apply(wf.Body, rules),
		}

		data, err := toml.Marshal(cmd)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("encoding %s: %v", s.profile.WorkflowFileName(wf), err))
			continue
		}

		if writeArtifact(res, s.profile.WorkflowPath(projectRoot, wf), data) {
			res.Workflows++
		}
	}

	return res
}
