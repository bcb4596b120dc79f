// Package verify audits a completed projection pass. It re-derives the
// expected artifact paths and transformed substrings from the source tree
// itself rather than trusting the projector's bookkeeping, then checks
// every target for missing or drifted artifacts. Missing sources are
// warnings (nothing to verify); missing artifacts and content mismatches
// are errors.
package verify
