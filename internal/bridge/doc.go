// Package bridge orchestrates one full synchronization pass: prepare the
// destination trees, ingest the source of truth, project every document
// into every enabled target, and register the targets in the shared agent
// config. Soft failures are collected and reported at the end of the run;
// per-artifact write failures are recorded without stopping sibling work.
package bridge
