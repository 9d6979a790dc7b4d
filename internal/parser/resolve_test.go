package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cameronsjo/tugboat/internal/excelspec"
	"github.com/cameronsjo/tugboat/internal/workbook"
)

// hostSpec returns testSpec pointed at a different host sheet and header.
func hostSpec(sheet, header string) excelspec.Specification {
	spec := testSpec()
	spec.IPMISheetName = sheet
	spec.IPMIAddressHeader = header
	return spec
}

func TestResolve(t *testing.T) {
	rs, err := Resolve(siteWorkbook(), testCatalog(t))
	require.NoError(t, err)

	assert.Equal(t, "site_v1", rs.Name)
	assert.Equal(t, siteSheet, rs.IPMISheet)
	assert.Equal(t, "SITE-INFO", rs.Spec.IPMISheetName, "catalog entry keeps its declared sheet name")
}

func TestResolve_DeclarationOrderWins(t *testing.T) {
	// Sheet order favours "second"; catalog order must decide.
	wb := workbook.NewMemory().
		Set("Hosts B", 3, 3, "IPMI Address").
		Set("Hosts A", 3, 3, "IPMI Address")

	first := excelspec.Entry{Name: "first", Spec: hostSpec("hosts a", "ipmi address")}
	second := excelspec.Entry{Name: "second", Spec: hostSpec("hosts b", "ipmi address")}

	t.Run("first declared", func(t *testing.T) {
		rs, err := Resolve(wb, testCatalog(t, first, second))
		require.NoError(t, err)
		assert.Equal(t, "first", rs.Name)
		assert.Equal(t, "Hosts A", rs.IPMISheet)
	})

	t.Run("second declared", func(t *testing.T) {
		rs, err := Resolve(wb, testCatalog(t, second, first))
		require.NoError(t, err)
		assert.Equal(t, "second", rs.Name)
		assert.Equal(t, "Hosts B", rs.IPMISheet)
	})
}

func TestResolve_HeaderMismatchFallsThrough(t *testing.T) {
	wb := workbook.NewMemory().
		Set("Hosts", 3, 3, "iLO Address")

	catalog := testCatalog(t,
		excelspec.Entry{Name: "ipmi", Spec: hostSpec("Hosts", "IPMI Address")},
		excelspec.Entry{Name: "ilo", Spec: hostSpec("Hosts", "iLO Address")},
	)

	rs, err := Resolve(wb, catalog)
	require.NoError(t, err)
	assert.Equal(t, "ilo", rs.Name)
}

func TestResolve_SimilarSheetNamesNeedHeader(t *testing.T) {
	// Both sheets match by name; only the second has the header.
	wb := workbook.NewMemory().
		Set("Hosts (old)", 3, 3, "Notes").
		Set("Hosts", 3, 3, "IPMI Address")

	rs, err := Resolve(wb, testCatalog(t, excelspec.Entry{Name: "v1", Spec: hostSpec("hosts", "IPMI Address")}))
	require.NoError(t, err)
	assert.Equal(t, "Hosts", rs.IPMISheet)
}

func TestResolve_BlankHeaderDoesNotMatch(t *testing.T) {
	wb := workbook.NewMemory().AddSheet("Hosts")

	_, err := Resolve(wb, testCatalog(t, excelspec.Entry{Name: "v1", Spec: hostSpec("Hosts", "IPMI")}))
	assert.ErrorIs(t, err, ErrNoSpecMatched)
}

func TestResolve_NoSpecMatched(t *testing.T) {
	wb := workbook.NewMemory().
		Set("Inventory", 3, 3, "IPMI Address").
		AddSheet("Notes")
	catalog := testCatalog(t)

	_, err := Resolve(wb, catalog)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoSpecMatched)

	var noMatch *NoSpecMatchedError
	require.True(t, errors.As(err, &noMatch))
	assert.Same(t, catalog, noMatch.Catalog)
	assert.Equal(t, []string{"Inventory", "Notes"}, noMatch.Sheets)
	assert.Contains(t, err.Error(), "site_v1")
	assert.Contains(t, err.Error(), "SITE-INFO")
}

func TestParser_ResolveIsCached(t *testing.T) {
	p := New(siteWorkbook(), testCatalog(t))

	first, err := p.Resolve()
	require.NoError(t, err)
	second, err := p.Resolve()
	require.NoError(t, err)

	assert.Same(t, first, second)
}
