package source

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// Document is a single source document. For rules Name is the logical name
// (extension stripped); for workflows Name is the full filename.
type Document struct {
	Name string
	Body string
}

// Stem returns the document name without its extension. For rules this is
// the name itself; for workflows it strips the trailing ".md".
func (d Document) Stem() string {
	return strings.TrimSuffix(d.Name, filepath.Ext(d.Name))
}

// Set holds all documents read from the source of truth, sorted by name.
type Set struct {
	Rules     []Document
	Workflows []Document
}

// Empty reports whether the set contains no documents at all.
func (s *Set) Empty() bool {
	return len(s.Rules) == 0 && len(s.Workflows) == 0
}

// Read loads rules and workflows from the given directories. A missing
// directory yields an empty slice plus a warning; a file that cannot be
// read or is not valid UTF-8 is skipped with a per-file warning. Read never
// fails outright: partial source trees are a supported state.
func Read(rulesDir, workflowsDir string) (*Set, []string) {
	var warnings []string

	rules, ruleWarnings := readDir(rulesDir, stripExt)
	if ruleWarnings != nil {
		warnings = append(warnings, ruleWarnings...)
	}

	workflows, wfWarnings := readDir(workflowsDir, keepName)
	if wfWarnings != nil {
		warnings = append(warnings, wfWarnings...)
	}

	return &Set{Rules: rules, Workflows: workflows}, warnings
}

func stripExt(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}

func keepName(filename string) string {
	return filename
}

// readDir walks dir recursively collecting every .md file, keyed by the
// given naming function, deduplicated by derived name and sorted by name
// for deterministic output.
func readDir(dir string, nameOf func(string) string) ([]Document, []string) {
	if _, err := os.Stat(dir); err != nil {
		return nil, []string{fmt.Sprintf("no source directory at %s", dir)}
	}

	var warnings []string
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible entries
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, []string{fmt.Sprintf("walking %s: %v", dir, err)}
	}

	sort.Strings(files)

	// Duplicate base names in nested subdirectories collapse onto one
	// document name; the last file in path order wins.
	byName := make(map[string]string)
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("failed to read %s: %v", filepath.Base(path), err))
			continue
		}
		if !utf8.Valid(data) {
			warnings = append(warnings, fmt.Sprintf("skipping %s: not valid UTF-8", filepath.Base(path)))
			continue
		}
		byName[nameOf(filepath.Base(path))] = string(data)
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	docs := make([]Document, 0, len(names))
	for _, name := range names {
		docs = append(docs, Document{Name: name, Body: byName[name]})
	}

	return docs, warnings
}
