// Package target defines the supported agent runtimes and projects source
// documents into each runtime's configuration layout. Each target is
// described by a fixed Profile selected from a registry table; the three
// projection strategies (one file per document, monolithic context document,
// structured TOML commands) share ingestion and differ only in how they
// write artifacts. Generated-only subtrees are clean-swept before each run;
// subtrees that may hold hand-authored files are only ensured to exist.
package target
