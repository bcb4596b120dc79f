// Package source loads the canonical rule and workflow documents that form
// the bridge's single source of truth. Rules live in .kittify/memory and are
// keyed by logical name (filename without extension); workflows live in
// .windsurf/workflows and keep their full filename as identity so that
// per-workflow naming is stable across every projected target.
package source
