package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Validation errors for rendered manifests.
var (
	// ErrInvalidManifest indicates rendered output that is not valid YAML.
	ErrInvalidManifest = errors.New("invalid manifest")

	// ErrMissingMetadata indicates a document with a schema but no
	// metadata.schema or metadata.name.
	ErrMissingMetadata = errors.New("missing document metadata")
)

// DocumentMeta is the header every deployment document carries.
type DocumentMeta struct {
	Schema   string `yaml:"schema"`
	Metadata struct {
		Schema string `yaml:"schema"`
		Name   string `yaml:"name"`
	} `yaml:"metadata"`
}

// ValidateRendered checks every document in a rendered manifest. Each must
// parse as YAML, and a document that declares a schema must also carry
// metadata.schema and metadata.name. Documents without a schema are plain
// YAML and only need to parse. It returns the metadata of each schema
// document in order.
func ValidateRendered(content []byte) ([]DocumentMeta, error) {
	dec := yaml.NewDecoder(bytes.NewReader(content))

	var docs []DocumentMeta
	for i := 1; ; i++ {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: document %d: %v", ErrInvalidManifest, i, err)
		}

		var meta DocumentMeta
		if node.Kind == yaml.DocumentNode && len(node.Content) > 0 && node.Content[0].Kind == yaml.MappingNode {
			if err := node.Decode(&meta); err != nil {
				return nil, fmt.Errorf("%w: document %d: %v", ErrInvalidManifest, i, err)
			}
		}
		if meta.Schema == "" {
			continue
		}

		if meta.Metadata.Schema == "" || meta.Metadata.Name == "" {
			return nil, fmt.Errorf("%w: document %d (%s) needs metadata.schema and metadata.name", ErrMissingMetadata, i, meta.Schema)
		}
		docs = append(docs, meta)
	}

	return docs, nil
}
