package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRendered(t *testing.T) {
	content := []byte(`---
schema: drydock/BaremetalNode/v1
metadata:
  schema: metadata/Document/v1
  name: host-01
data: {}
---
schema: drydock/BaremetalNode/v1
metadata:
  schema: metadata/Document/v1
  name: host-02
data: {}
...
`)

	docs, err := ValidateRendered(content)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "drydock/BaremetalNode/v1", docs[0].Schema)
	assert.Equal(t, "host-01", docs[0].Metadata.Name)
	assert.Equal(t, "host-02", docs[1].Metadata.Name)
}

func TestValidateRendered_PlainYAML(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"mapping without schema", "region: atl01\n"},
		{"scalar", "hello\n"},
		{"list", "- a\n- b\n"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := ValidateRendered([]byte(tt.content))
			require.NoError(t, err)
			assert.Empty(t, docs)
		})
	}
}

func TestValidateRendered_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "broken yaml",
			content: "schema: [unclosed\n",
			wantErr: ErrInvalidManifest,
		},
		{
			name:    "schema without metadata",
			content: "schema: pegleg/CommonAddresses/v1\ndata: {}\n",
			wantErr: ErrMissingMetadata,
		},
		{
			name:    "metadata without name",
			content: "schema: pegleg/CommonAddresses/v1\nmetadata:\n  schema: metadata/Document/v1\n",
			wantErr: ErrMissingMetadata,
		},
		{
			name: "second document bad",
			content: "---\nschema: a/B/v1\nmetadata:\n  schema: metadata/Document/v1\n  name: ok\n" +
				"---\nschema: a/B/v1\n",
			wantErr: ErrMissingMetadata,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateRendered([]byte(tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
