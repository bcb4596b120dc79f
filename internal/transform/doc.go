// Package transform applies per-target content rewrites to source documents
// and extracts advisory front-matter metadata. All rewrites are literal
// substring replacements over disjoint search strings; nothing here
// interprets the document content itself.
package transform
