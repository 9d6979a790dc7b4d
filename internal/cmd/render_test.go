package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cameronsjo/tugboat/internal/lock"
	"github.com/cameronsjo/tugboat/internal/manifest"
)

func TestRenderCmd(t *testing.T) {
	p := newProject(t)

	output, err := executeCmd(t, "render", "-c", p.settings, "--region", "atl01", p.workbook)
	require.NoError(t, err)
	assert.Empty(t, output)

	common, err := os.ReadFile(p.path("out", "site", "atl01", "networks", "common-addresses.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(common), `region: "atl01"`)
	assert.Contains(t, string(common), `- "8.8.4.4"`)

	nodes, err := os.ReadFile(p.path("out", "site", "atl01", "baremetal", "nodes.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(nodes), `name: "host-01"`)
	assert.Contains(t, string(nodes), `host_profile: "profile-A"`)
	assert.Contains(t, string(nodes), `name: "host-02"`)
}

func TestRenderCmd_DryRun(t *testing.T) {
	p := newProject(t)

	output, err := executeCmd(t, "render", "-c", p.settings, "--region", "atl01", "-n", p.workbook)
	require.NoError(t, err)
	assert.Contains(t, output, "# "+p.path("out", "site", "atl01", "networks", "common-addresses.yaml"))
	assert.Contains(t, output, "schema: drydock/BaremetalNode/v1")

	_, err = os.Stat(p.path("out"))
	assert.True(t, os.IsNotExist(err))
}

func TestRenderCmd_RegionFromConfig(t *testing.T) {
	p := newProject(t)
	require.NoError(t, os.WriteFile(p.settings, []byte("spec_file: specs.yaml\noutput_dir: out\nregion: lab1\n"), 0644))

	_, err := executeCmd(t, "render", "-c", p.settings, p.workbook)
	require.NoError(t, err)
	assert.FileExists(t, p.path("out", "site", "lab1", "baremetal", "nodes.yaml"))
}

func TestRenderCmd_RequiresRegion(t *testing.T) {
	p := newProject(t)

	_, err := executeCmd(t, "render", "-c", p.settings, p.workbook)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "region required")
}

func TestRenderCmd_RejectsRegionPath(t *testing.T) {
	p := newProject(t)

	_, err := executeCmd(t, "render", "-c", p.settings, "--region", "../escape", p.workbook)
	assert.ErrorIs(t, err, manifest.ErrInvalidRegion)
	assert.NoDirExists(t, p.path("out", "escape"))
	assert.NoDirExists(t, p.path("out"))
}

func TestRenderCmd_TemplateOverride(t *testing.T) {
	p := newProject(t)
	require.NoError(t, os.WriteFile(p.settings,
		[]byte("spec_file: specs.yaml\noutput_dir: out\ntemplates_dir: templates\nsite_templates: [hosts]\n"), 0644))
	require.NoError(t, os.MkdirAll(p.path("templates", "site"), 0755))
	require.NoError(t, os.WriteFile(p.path("templates", "site", "hosts.yaml.tmpl"),
		[]byte(`hosts: {{ .Site.IPMIData.Order | join "," }}`), 0644))

	_, err := executeCmd(t, "render", "-c", p.settings, "--region", "atl01", p.workbook)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(p.dir, "out", "site", "atl01", "hosts.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "hosts: host-01,host-02", string(content))
}

func TestRenderCmd_OutputLocked(t *testing.T) {
	p := newProject(t)
	held := lock.New(p.path("out"), "write")
	require.NoError(t, held.Acquire())
	defer held.Release()

	_, err := executeCmd(t, "render", "-c", p.settings, "--region", "atl01", p.workbook)
	assert.ErrorIs(t, err, lock.ErrLocked)
	assert.NoFileExists(t, p.path("out", "site", "atl01", "baremetal", "nodes.yaml"))
}
