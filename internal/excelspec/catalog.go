package excelspec

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidSpec indicates a specification that cannot be used for matching.
	ErrInvalidSpec = errors.New("invalid specification")

	// ErrEmptyCatalog indicates a catalog with no specifications.
	ErrEmptyCatalog = errors.New("catalog has no specifications")

	// ErrDuplicateSpec indicates two specifications with the same name.
	ErrDuplicateSpec = errors.New("duplicate specification")
)

// Catalog is an ordered, read-only set of specifications.
type Catalog struct {
	entries []Entry
}

// New builds a catalog from entries, keeping their order.
func New(entries ...Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSpec, e.Name)
		}
		seen[e.Name] = true

		if err := Validate(e.Name, e.Spec); err != nil {
			return nil, err
		}
	}

	return &Catalog{entries: slices.Clone(entries)}, nil
}

// Load reads a catalog file.
func Load(path string) (*Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec file: %w", err)
	}

	catalog, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return catalog, nil
}

// Parse decodes a catalog document of the form
//
//	specs:
//	  <name>:
//	    ipmi_sheet_name: ...
//	    header_row: ...
//
// Specifications are kept in the order they are declared.
func Parse(content []byte) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parse spec file: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmptyCatalog
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse spec file: top level must be a mapping")
	}

	specs := mappingValue(root, "specs")
	if specs == nil {
		return nil, fmt.Errorf("parse spec file: missing specs key")
	}
	if specs.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse spec file: specs must be a mapping (line %d)", specs.Line)
	}

	var entries []Entry
	for i := 0; i+1 < len(specs.Content); i += 2 {
		key, value := specs.Content[i], specs.Content[i+1]

		var spec Specification
		if err := value.Decode(&spec); err != nil {
			return nil, fmt.Errorf("parse spec %s: %w", key.Value, err)
		}
		entries = append(entries, Entry{Name: key.Value, Spec: spec})
	}

	return New(entries...)
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// Validate checks that a specification names its sheets and header label and
// that every coordinate is usable.
func Validate(name string, s Specification) error {
	required := []struct {
		key   string
		value string
	}{
		{"ipmi_sheet_name", s.IPMISheetName},
		{"ipmi_address_header", s.IPMIAddressHeader},
		{"private_ip_sheet", s.PrivateIPSheet},
		{"public_ip_sheet", s.PublicIPSheet},
		{"dns_ntp_ldap_sheet", s.DNSNTPLDAPSheet},
	}
	for _, r := range required {
		// Blank labels would match every sheet and header.
		if strings.IndexFunc(r.value, func(c rune) bool { return !unicode.IsSpace(c) }) < 0 {
			return fmt.Errorf("%w: %s: %s must not be empty", ErrInvalidSpec, name, r.key)
		}
	}

	for _, f := range s.coordinates() {
		if f.value < 1 {
			return fmt.Errorf("%w: %s: %s must be at least 1, got %d", ErrInvalidSpec, name, f.key, f.value)
		}
	}

	for _, r := range s.ranges() {
		if r[0].value > r[1].value {
			return fmt.Errorf("%w: %s: %s (%d) is after %s (%d)",
				ErrInvalidSpec, name, r[0].key, r[0].value, r[1].key, r[1].value)
		}
	}

	return nil
}

// Entries returns the specifications in declaration order.
func (c *Catalog) Entries() []Entry {
	return slices.Clone(c.entries)
}

// Names returns specification names in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}

// Get returns the named specification.
func (c *Catalog) Get(name string) (Specification, bool) {
	for _, e := range c.entries {
		if e.Name == name {
			return e.Spec, true
		}
	}
	return Specification{}, false
}

// Len returns the number of specifications.
func (c *Catalog) Len() int {
	return len(c.entries)
}
