package transform

import (
	"fmt"
	"strings"
)

const (
	// sourceActor is the actor the canonical workflows are written against.
	sourceActor = "windsurf"

	// ArgumentsToken is the generic argument placeholder used in canonical
	// workflow bodies. Targets with their own placeholder syntax replace it.
	ArgumentsToken = "$ARGUMENTS"

	// legacyFragment is a broken inline fragment left over from an earlier
	// template generation; it is rewritten to the real command name.
	legacyFragment    = "(Missing script command for sh)"
	legacyReplacement = "spec-kitty"
)

// ActorFlag renders the --actor flag form for the given actor name. The
// verifier uses the same form to assert substitution in projected output.
func ActorFlag(actor string) string {
	return fmt.Sprintf("--actor %q", actor)
}

// SourceActorFlag returns the generic actor token as it appears in
// canonical documents.
func SourceActorFlag() string {
	return ActorFlag(sourceActor)
}

// Rules describes the per-target substitutions to apply to a document.
type Rules struct {
	// Actor replaces the source actor in the --actor flag.
	Actor string

	// ArgumentPlaceholder, when non-empty, replaces ArgumentsToken.
	ArgumentPlaceholder string
}

// Apply returns a copy of text with the target substitutions applied. The
// input is never mutated and the replacements are order-independent because
// the search strings are disjoint.
func Apply(text string, r Rules) string {
	out := strings.ReplaceAll(text, SourceActorFlag(), ActorFlag(r.Actor))
	if r.ArgumentPlaceholder != "" {
		out = strings.ReplaceAll(out, ArgumentsToken, r.ArgumentPlaceholder)
	}
	out = strings.ReplaceAll(out, legacyFragment, legacyReplacement)
	return out
}
