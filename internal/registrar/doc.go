// Package registrar records which agent runtimes are available in the
// shared .kittify/config.yaml. It edits the document through yaml.Node
// surgery so unrelated keys, ordering, and comments survive round-trips:
// registration only appends missing agent names and fills in a default
// selection block when none exists.
package registrar
