package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jobsift/jobsift/internal/record"
	"github.com/jobsift/jobsift/internal/render"
)

// BaseName derives the artifact base name from the search query, matching
// the historical eluta_<query>_extracted naming.
func BaseName(query string) string {
	safe := strings.Join(strings.Fields(query), "_")
	if safe == "" {
		safe = "results"
	}
	return "eluta_" + safe + "_extracted"
}

// saveArtifacts writes every rendered format side by side and returns the
// paths written, in write order.
func (a *App) saveArtifacts(records []record.Record) ([]string, error) {
	base := a.cfg.BaseName
	if base == "" {
		base = BaseName(a.cfg.Query)
	}
	dir := a.cfg.OutDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	outputs := []struct {
		ext     string
		content string
	}{
		{".txt", render.Table(records)},
		{".tsv", render.TSV(records)},
		{".csv", render.CSV(records)},
		{".md", render.Markdown(records)},
	}

	var paths []string
	for _, out := range outputs {
		p := filepath.Join(dir, base+out.ext)
		if err := os.WriteFile(p, []byte(out.content), 0o644); err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}

	if a.cfg.EnablePDF {
		p := filepath.Join(dir, base+".pdf")
		if err := render.WritePDF(records, p); err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}
