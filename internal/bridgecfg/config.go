package bridgecfg

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

const (
	kittifyDir = ".kittify"
	configFile = "bridge.yaml"
)

// Config controls where the bridge reads from and which targets it writes.
type Config struct {
	SchemaVersion string       `yaml:"schema_version"`
	Source        SourceConfig `yaml:"source"`
	Targets       []string     `yaml:"targets"`
}

// SourceConfig names the source-of-truth directories, relative to the
// project root.
type SourceConfig struct {
	RulesDir     string `yaml:"rules_dir"`
	WorkflowsDir string `yaml:"workflows_dir"`
}

// Default returns the built-in configuration used when no bridge.yaml exists.
func Default() *Config {
	return &Config{
		SchemaVersion: "1.0",
		Source: SourceConfig{
			RulesDir:     filepath.Join(".kittify", "memory"),
			WorkflowsDir: filepath.Join(".windsurf", "workflows"),
		},
		Targets: []string{"antigravity", "claude", "gemini", "copilot"},
	}
}

// Path returns the bridge config path for a project root.
func Path(projectRoot string) string {
	return filepath.Join(projectRoot, kittifyDir, configFile)
}

// Load reads, validates, and parses the bridge config for a project. A
// missing file yields the defaults. A present file must validate against
// the embedded schema and carry a compatible schema_version.
func Load(projectRoot string) (*Config, error) {
	path := Path(projectRoot)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("invalid bridge config %s: %s", path, result.Issues[0].Message)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := checkSchemaVersion(cfg.SchemaVersion); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults fills unset fields from the built-in defaults.
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.SchemaVersion == "" {
		cfg.SchemaVersion = def.SchemaVersion
	}
	if cfg.Source.RulesDir == "" {
		cfg.Source.RulesDir = def.Source.RulesDir
	}
	if cfg.Source.WorkflowsDir == "" {
		cfg.Source.WorkflowsDir = def.Source.WorkflowsDir
	}
	if len(cfg.Targets) == 0 {
		cfg.Targets = def.Targets
	}
}

// RulesPath returns the absolute rules directory for a project root.
func (c *Config) RulesPath(projectRoot string) string {
	return filepath.Join(projectRoot, c.Source.RulesDir)
}

// WorkflowsPath returns the absolute workflows directory for a project root.
func (c *Config) WorkflowsPath(projectRoot string) string {
	return filepath.Join(projectRoot, c.Source.WorkflowsDir)
}

// RegistryPath returns the shared agent-registry config file for a project
// root (.kittify/config.yaml).
func (c *Config) RegistryPath(projectRoot string) string {
	return filepath.Join(projectRoot, kittifyDir, "config.yaml")
}
