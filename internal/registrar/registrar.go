package registrar

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// Default selection values written when no agents.selection block exists.
const (
	defaultStrategy    = "preferred"
	defaultImplementer = "claude"
	defaultReviewer    = "claude"
)

// Register appends the given agent names to the agents.available list in
// the config file at configPath, preserving the existing order and every
// unrelated key. A missing file is treated as an empty document. The final
// ordered list is returned.
func Register(configPath string, agents []string) ([]string, error) {
	doc, err := loadDocument(configPath)
	if err != nil {
		return nil, err
	}
	root := doc.Content[0]

	agentsNode := ensureMapKey(root, "agents")
	availableNode := ensureMapKey(agentsNode, "available")
	if availableNode.Kind != yaml.SequenceNode {
		availableNode.Kind = yaml.SequenceNode
		availableNode.Tag = "!!seq"
		availableNode.Value = ""
		availableNode.Content = nil
	}

	// Append any agent not already present; never remove or reorder.
	existing := make(map[string]bool)
	var registered []string
	for _, n := range availableNode.Content {
		existing[n.Value] = true
		registered = append(registered, n.Value)
	}
	for _, agent := range agents {
		if existing[agent] {
			continue
		}
		existing[agent] = true
		registered = append(registered, agent)
		availableNode.Content = append(availableNode.Content, scalarNode(agent))
	}

	// Populate selection defaults only when the block is absent.
	if findMapValue(agentsNode, "selection") == nil {
		selection := ensureMapKey(agentsNode, "selection")
		setMapKey(selection, "strategy", defaultStrategy)
		setMapKey(selection, "preferred_implementer", defaultImplementer)
		setMapKey(selection, "preferred_reviewer", defaultReviewer)
	}

	if err := saveDocument(configPath, doc); err != nil {
		return nil, err
	}
	return registered, nil
}

// loadDocument parses configPath into a yaml document node, synthesizing an
// empty mapping document when the file is missing or empty.
func loadDocument(path string) (*yaml.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if doc.Kind == 0 || len(doc.Content) == 0 {
		doc = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}},
		}
	}
	if doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parsing %s: top-level document is not a mapping", path)
	}

	return &doc, nil
}

func saveDocument(path string, doc *yaml.Node) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// findMapValue returns the value node for key in a mapping node, or nil.
func findMapValue(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// ensureMapKey returns the value node for key, appending an empty mapping
// entry when the key is absent. A bare "key:" line parses as a null scalar,
// so an existing non-mapping value is coerced to a mapping in place.
func ensureMapKey(mapping *yaml.Node, key string) *yaml.Node {
	if v := findMapValue(mapping, key); v != nil {
		if v.Kind != yaml.MappingNode {
			v.Kind = yaml.MappingNode
			v.Tag = "!!map"
			v.Value = ""
			v.Content = nil
		}
		return v
	}
	value := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	mapping.Content = append(mapping.Content, scalarNode(key), value)
	return value
}

// setMapKey sets key to a scalar value, appending when absent.
func setMapKey(mapping *yaml.Node, key, value string) {
	if v := findMapValue(mapping, key); v != nil {
		v.SetString(value)
		return
	}
	mapping.Content = append(mapping.Content, scalarNode(key), scalarNode(value))
}

func scalarNode(value string) *yaml.Node {
	n := &yaml.Node{}
	n.SetString(value)
	return n
}
