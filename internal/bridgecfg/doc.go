// Package bridgecfg loads the optional .kittify/bridge.yaml file that
// overrides where the bridge reads its source of truth and which targets it
// projects to. The file is validated against an embedded JSON Schema before
// use and carries a schema_version that is checked for compatibility; when
// the file is absent the built-in defaults apply.
package bridgecfg
