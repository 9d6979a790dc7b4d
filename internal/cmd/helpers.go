package cmd

import (
	"fmt"
	"io"

	"github.com/cameronsjo/tugboat/internal/excelspec"
	"github.com/cameronsjo/tugboat/internal/lock"
	"github.com/cameronsjo/tugboat/internal/manifest"
	"github.com/cameronsjo/tugboat/internal/parser"
	"github.com/cameronsjo/tugboat/internal/snapshot"
	"github.com/cameronsjo/tugboat/internal/ui"
	"github.com/cameronsjo/tugboat/internal/workbook"
)

// specFile returns the catalog path from a --spec flag, falling back to config.
func specFile(flag string) string {
	if flag != "" {
		return flag
	}
	return cfg.SpecFile
}

// loadCatalog loads the spec catalog at path.
func loadCatalog(path string) (*excelspec.Catalog, error) {
	catalog, err := excelspec.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load spec catalog: %w", err)
	}
	ui.Debug("loaded %d specs from %s", catalog.Len(), path)
	return catalog, nil
}

// withParser opens a workbook and its spec catalog and hands fn a Parser,
// closing the workbook afterwards.
func withParser(workbookPath, catalogPath string, fn func(*parser.Parser) error) error {
	catalog, err := loadCatalog(catalogPath)
	if err != nil {
		return err
	}

	wb, err := workbook.Open(workbookPath)
	if err != nil {
		return err
	}
	defer wb.Close()

	ui.Debug("workbook %s has sheets %v", wb.Path(), wb.SheetNames())
	return fn(parser.New(wb, catalog))
}

// extract resolves the spec for a workbook and returns its site data.
func extract(workbookPath, catalogPath string) (*parser.SiteData, error) {
	var data *parser.SiteData
	err := withParser(workbookPath, catalogPath, func(p *parser.Parser) error {
		rs, err := p.Resolve()
		if err != nil {
			return err
		}
		ui.Debug("using spec %s (sheet %q)", rs.Name, rs.IPMISheet)

		data, err = p.GetData()
		return err
	})
	return data, err
}

// emit prints rendered manifests to w on a dry run. Otherwise, holding the
// output directory lock, it snapshots the region's current manifests and
// writes the new ones.
func emit(w io.Writer, rendered []manifest.Rendered, dryRun bool, region string) error {
	if dryRun {
		for _, m := range rendered {
			if _, err := fmt.Fprintf(w, "# %s\n%s\n", m.Path, m.Content); err != nil {
				return fmt.Errorf("print %s: %w", m.Path, err)
			}
		}
		return nil
	}

	err := lock.WithLock(cfg.OutputDir, "write", func() error {
		store := snapshot.New(cfg.OutputDir, region)
		name, err := store.Create(manifest.SiteDir(cfg.OutputDir, region))
		if err != nil {
			return fmt.Errorf("snapshot %s: %w", region, err)
		}
		if name != "" {
			ui.Debug("previous manifests saved as %s", name)
		}
		return manifest.Write(rendered)
	})
	if err != nil {
		return err
	}
	for _, m := range rendered {
		ui.Success("Wrote %s", m.Path)
	}
	return nil
}
