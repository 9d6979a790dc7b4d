package cmd

import (
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteWorkbooks(t *testing.T) {
	names, dir := completeWorkbooks(parseCmd, nil, "")
	assert.Equal(t, []string{"xlsx", "xlsm"}, names)
	assert.Equal(t, cobra.ShellCompDirectiveFilterFileExt, dir)

	names, dir = completeWorkbooks(parseCmd, []string{"site.xlsx"}, "")
	assert.Nil(t, names)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, dir)
}

func TestCompleteFormats(t *testing.T) {
	tests := []struct {
		toComplete string
		want       []string
	}{
		{"", []string{"yaml", "json"}},
		{"j", []string{"json"}},
		{"x", nil},
	}

	for _, tt := range tests {
		t.Run(tt.toComplete, func(t *testing.T) {
			names, dir := completeFormats(parseCmd, nil, tt.toComplete)
			assert.Equal(t, tt.want, names)
			assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, dir)
		})
	}
}

func TestCompleteSpecNames(t *testing.T) {
	p := newProject(t)
	cfgFile = p.settings
	t.Cleanup(func() { cfgFile = "" })

	names, dir := completeSpecNames(specsCmd, nil, "site")
	assert.Equal(t, []string{"site_v1"}, names)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, dir)

	names, _ = completeSpecNames(specsCmd, nil, "")
	assert.Equal(t, []string{"legacy_v0", "site_v1"}, names)

	names, _ = completeSpecNames(specsCmd, []string{"site_v1"}, "")
	assert.Nil(t, names)
}

func TestCompleteSpecNames_BadCatalog(t *testing.T) {
	p := newProject(t)
	require.NoError(t, os.WriteFile(p.path("specs.yaml"), []byte("nope: {}\n"), 0644))
	cfgFile = p.settings
	t.Cleanup(func() { cfgFile = "" })

	_, dir := completeSpecNames(specsCmd, nil, "")
	assert.Equal(t, cobra.ShellCompDirectiveError, dir)
}

func TestCompleteRegion(t *testing.T) {
	p := newProject(t)
	require.NoError(t, os.WriteFile(p.settings, []byte("region: atl01\n"), 0644))
	cfgFile = p.settings
	t.Cleanup(func() { cfgFile = "" })

	names, _ := completeRegion(renderCmd, nil, "a")
	assert.Equal(t, []string{"atl01"}, names)

	names, _ = completeRegion(renderCmd, nil, "b")
	assert.Nil(t, names)
}

func TestRegisterCompletions(t *testing.T) {
	registerCompletions()

	for _, c := range []*cobra.Command{parseCmd, renderCmd, validateCmd, pkiCmd, specsCmd} {
		assert.NotNil(t, c.ValidArgsFunction, c.Name())
	}
}
