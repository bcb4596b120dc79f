// Package rulesync injects shared rule and skill content into the
// hand-authored monolithic configuration files of other agents
// (.claude/CLAUDE.md, .github/copilot-instructions.md, GEMINI.md). The
// machine-managed region is delimited by literal HTML-comment markers:
// when both markers are present the enclosed span is replaced, otherwise
// the whole block is appended. Only the region is touched; the surrounding
// hand-authored prose is never rewritten.
package rulesync
