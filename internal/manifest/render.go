package manifest

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"gopkg.in/yaml.v3"

	"github.com/cameronsjo/tugboat/internal/fileutil"
	"github.com/cameronsjo/tugboat/internal/parser"
)

// Template kinds.
const (
	KindSite = "site"
	KindPKI  = "pki"
)

const templateExt = ".yaml.tmpl"

//go:embed templates
var builtin embed.FS

// ErrTemplateNotFound indicates a template missing from both the override
// directory and the built-in set.
var ErrTemplateNotFound = errors.New("template not found")

// ErrInvalidRegion indicates a region name that is not a single directory
// name under site/.
var ErrInvalidRegion = errors.New("invalid region name")

// Rendered is one rendered manifest.
type Rendered struct {
	// Name is the template name, e.g. "networks/common-addresses".
	Name string
	// Path is where the manifest belongs.
	Path string
	// Content is the rendered manifest.
	Content []byte
}

// SiteContext is the data handed to site templates.
type SiteContext struct {
	Region string
	Site   *parser.SiteData
}

// Renderer renders named templates.
type Renderer struct {
	// TemplatesDir overrides built-in templates. Optional.
	TemplatesDir string
}

// NewRenderer creates a Renderer. templatesDir may be empty.
func NewRenderer(templatesDir string) *Renderer {
	return &Renderer{TemplatesDir: templatesDir}
}

// Source returns the template text for kind/name and where it came from.
func (r *Renderer) Source(kind, name string) ([]byte, string, error) {
	if r.TemplatesDir != "" {
		p := filepath.Join(r.TemplatesDir, kind, filepath.FromSlash(name)+templateExt)
		content, err := os.ReadFile(p)
		if err == nil {
			return content, p, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("read template %s: %w", p, err)
		}
	}

	p := path.Join("templates", kind, name+templateExt)
	content, err := builtin.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("%w: %s/%s", ErrTemplateNotFound, kind, name)
		}
		return nil, "", fmt.Errorf("read built-in template %s: %w", p, err)
	}
	return content, "builtin:" + p, nil
}

// Render executes one template against data.
func (r *Renderer) Render(kind, name string, data any) ([]byte, error) {
	content, _, err := r.Source(kind, name)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).
		Option("missingkey=error").
		Funcs(sprig.TxtFuncMap()).
		Funcs(renderFuncs()).
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parse template %s/%s: %w", kind, name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render template %s/%s: %w", kind, name, err)
	}
	return buf.Bytes(), nil
}

// RenderAll renders each named template into outDir as <name>.yaml and
// validates the result. Nothing is written; see Write.
func (r *Renderer) RenderAll(kind string, names []string, data any, outDir string) ([]Rendered, error) {
	rendered := make([]Rendered, 0, len(names))
	for _, name := range names {
		content, err := r.Render(kind, name, data)
		if err != nil {
			return nil, err
		}
		if _, err := ValidateRendered(content); err != nil {
			return nil, fmt.Errorf("template %s/%s: %w", kind, name, err)
		}
		rendered = append(rendered, Rendered{
			Name:    name,
			Path:    filepath.Join(outDir, filepath.FromSlash(name)+".yaml"),
			Content: content,
		})
	}
	return rendered, nil
}

// RenderSite renders site templates for extracted workbook data into
// <outputRoot>/site/<region>.
func (r *Renderer) RenderSite(names []string, region string, site *parser.SiteData, outputRoot string) ([]Rendered, error) {
	if err := ValidateRegion(region); err != nil {
		return nil, err
	}
	ctx := SiteContext{Region: region, Site: site}
	return r.RenderAll(KindSite, names, ctx, SiteDir(outputRoot, region))
}

// Write writes rendered manifests to their paths.
func Write(rendered []Rendered) error {
	for _, m := range rendered {
		if err := fileutil.WriteFile(m.Path, m.Content, 0644); err != nil {
			return fmt.Errorf("write %s: %w", m.Path, err)
		}
	}
	return nil
}

// ValidateRegion rejects region names that are empty or could leave the
// output directory.
func ValidateRegion(region string) error {
	if region == "" {
		return fmt.Errorf("%w: region name is required", ErrInvalidRegion)
	}
	if strings.ContainsAny(region, `/\`) || strings.Contains(region, "..") {
		return fmt.Errorf("%w: %q must not contain path separators or ..", ErrInvalidRegion, region)
	}
	return nil
}

// SiteDir returns the manifest directory for a region.
func SiteDir(outputRoot, region string) string {
	return filepath.Join(outputRoot, "site", region)
}

// renderFuncs returns template functions on top of sprig.
func renderFuncs() template.FuncMap {
	return template.FuncMap{
		"toYaml": func(v any) (string, error) {
			data, err := yaml.Marshal(v)
			if err != nil {
				return "", fmt.Errorf("toYaml: %w", err)
			}
			return strings.TrimSuffix(string(data), "\n"), nil
		},
		"include": func(path string) (string, error) {
			data, err := os.ReadFile(path)
			if err != nil {
				return "", fmt.Errorf("include %s: %w", path, err)
			}
			return string(data), nil
		},
	}
}
