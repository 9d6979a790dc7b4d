package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// SiteDefinition is the part of a site definition file the PKI processor
// reads. Hosts are grouped by rack under baremetal.
type SiteDefinition struct {
	RegionName string                               `yaml:"region_name"`
	Baremetal  map[string]map[string]map[string]any `yaml:"baremetal"`
	Network    struct {
		Ingress any `yaml:"ingress"`
	} `yaml:"network"`
}

// PKIContext is the data handed to PKI templates.
type PKIContext struct {
	Region  string
	Hosts   map[string]map[string]any
	Ingress any
}

// LoadSiteDefinition reads one or more site definition files. Later files
// are deep-merged over earlier ones, so a site can be layered on a shared
// base.
func LoadSiteDefinition(paths ...string) (*SiteDefinition, error) {
	if len(paths) == 0 {
		return nil, errors.New("no site definition given")
	}

	var merged map[string]any
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read site definition: %w", err)
		}

		var layer map[string]any
		if err := yaml.Unmarshal(content, &layer); err != nil {
			return nil, fmt.Errorf("parse site definition %s: %w", path, err)
		}
		if merged == nil {
			merged = layer
			continue
		}
		merged = DeepMerge(merged, layer)
	}

	content, err := yaml.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("encode site definition: %w", err)
	}

	var site SiteDefinition
	if err := yaml.Unmarshal(content, &site); err != nil {
		return nil, fmt.Errorf("parse site definition %s: %w", strings.Join(paths, ", "), err)
	}
	if site.RegionName == "" {
		return nil, fmt.Errorf("site definition %s: region_name is required", strings.Join(paths, ", "))
	}
	if err := ValidateRegion(site.RegionName); err != nil {
		return nil, fmt.Errorf("site definition %s: %w", strings.Join(paths, ", "), err)
	}

	return &site, nil
}

// PKIProcessor renders PKI manifests for a site.
type PKIProcessor struct {
	site     *SiteDefinition
	renderer *Renderer
}

// NewPKIProcessor creates a PKIProcessor.
func NewPKIProcessor(site *SiteDefinition, renderer *Renderer) *PKIProcessor {
	return &PKIProcessor{site: site, renderer: renderer}
}

// Hosts flattens racks into a single host map. Racks are visited in name
// order, so a host listed in two racks takes the later rack's entry.
func (p *PKIProcessor) Hosts() map[string]map[string]any {
	racks := make([]string, 0, len(p.site.Baremetal))
	for rack := range p.site.Baremetal {
		racks = append(racks, rack)
	}
	sort.Strings(racks)

	hosts := make(map[string]map[string]any)
	for _, rack := range racks {
		for host, data := range p.site.Baremetal[rack] {
			if data == nil {
				data = map[string]any{}
			}
			hosts[host] = data
		}
	}
	return hosts
}

// Context returns the data handed to PKI templates.
func (p *PKIProcessor) Context() PKIContext {
	return PKIContext{
		Region:  p.site.RegionName,
		Hosts:   p.Hosts(),
		Ingress: p.site.Network.Ingress,
	}
}

// Dir returns the PKI manifest directory under outputRoot.
func (p *PKIProcessor) Dir(outputRoot string) string {
	return filepath.Join(SiteDir(outputRoot, p.site.RegionName), "pki")
}

// Render renders each PKI template into <outputRoot>/site/<region>/pki.
func (p *PKIProcessor) Render(templates []string, outputRoot string) ([]Rendered, error) {
	if len(templates) == 0 {
		return nil, errors.New("no pki templates configured")
	}
	return p.renderer.RenderAll(KindPKI, templates, p.Context(), p.Dir(outputRoot))
}
