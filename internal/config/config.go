// Package config handles settings discovery and loading.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the settings file searched for by FindRoot.
const FileName = "tugboat.yaml"

// Environment variables that override settings file values.
const (
	EnvSpecFile     = "TUGBOAT_SPEC_FILE"
	EnvOutputDir    = "TUGBOAT_OUTPUT_DIR"
	EnvTemplatesDir = "TUGBOAT_TEMPLATES_DIR"
	EnvRegion       = "TUGBOAT_REGION"
)

// ErrRootNotFound indicates no settings file above the working directory.
var ErrRootNotFound = errors.New("project root not found (no " + FileName + ")")

// Config holds tugboat settings.
type Config struct {
	// Root is the directory holding tugboat.yaml. Empty when running on defaults.
	Root string `yaml:"-"`

	// SpecFile is the spreadsheet layout catalog.
	SpecFile string `yaml:"spec_file"`

	// OutputDir is where rendered manifests are written.
	OutputDir string `yaml:"output_dir"`

	// TemplatesDir overrides built-in templates by name. Optional.
	TemplatesDir string `yaml:"templates_dir"`

	// Region is the site name used in output paths.
	Region string `yaml:"region"`

	// SiteTemplates are rendered from extracted workbook data.
	SiteTemplates []string `yaml:"site_templates"`

	// PKITemplates are rendered by the PKI processor.
	PKITemplates []string `yaml:"pki_templates"`
}

// Default returns settings used when no tugboat.yaml exists.
func Default() *Config {
	return &Config{
		SpecFile:      "excel_spec.yaml",
		OutputDir:     "pegleg_manifests",
		SiteTemplates: []string{"networks/common-addresses", "baremetal/nodes"},
		PKITemplates:  []string{"pki-catalogue"},
	}
}

// FindRoot searches upward from the current directory for tugboat.yaml.
func FindRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if info, err := os.Stat(filepath.Join(dir, FileName)); err == nil && !info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", ErrRootNotFound
}

// Load reads settings. With an explicit path that file must exist; otherwise
// tugboat.yaml is searched for and defaults are used when there is none.
// A .env file next to the settings file (or in the working directory) is
// loaded first, then TUGBOAT_* variables override file values.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		root, err := FindRoot()
		switch {
		case err == nil:
			path = filepath.Join(root, FileName)
		case errors.Is(err, ErrRootNotFound):
		default:
			return nil, err
		}
	}

	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	if err := loadDotEnv(cfg.Root); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	cfg.resolvePaths()

	return cfg, nil
}

func (c *Config) readFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(content, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	abs, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return fmt.Errorf("resolve config directory: %w", err)
	}
	c.Root = abs
	return nil
}

// loadDotEnv loads .env from dir, or the working directory when dir is empty.
// Existing environment variables are not overwritten.
func loadDotEnv(dir string) error {
	envFile := filepath.Join(dir, ".env")
	if _, err := os.Stat(envFile); err != nil {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("load %s: %w", envFile, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	overrides := []struct {
		env string
		dst *string
	}{
		{EnvSpecFile, &c.SpecFile},
		{EnvOutputDir, &c.OutputDir},
		{EnvTemplatesDir, &c.TemplatesDir},
		{EnvRegion, &c.Region},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.env); v != "" {
			*o.dst = v
		}
	}
}

// resolvePaths makes relative paths relative to Root.
func (c *Config) resolvePaths() {
	if c.Root == "" {
		return
	}
	for _, p := range []*string{&c.SpecFile, &c.OutputDir, &c.TemplatesDir} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(c.Root, *p)
		}
	}
}
