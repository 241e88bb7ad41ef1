package catalog

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kagankarabayir/EV-Price-Estimator/core/logger"
)

// SourcePaths lists the candidate reference-data files in resolution order: a
// user-supplied spreadsheet, a user-supplied CSV, then the bundled sample.
type SourcePaths struct {
	XLSX   string
	CSV    string
	Sample string
}

// Build resolves the first readable input source, detects its schema and
// returns the canonical catalog. It never fails: unreadable files fall through
// to the next source and an unrecognized schema degrades to the built-in
// table. Every degradation is logged.
func Build(paths SourcePaths, log logger.Logger) *Catalog {
	for _, p := range []string{paths.XLSX, paths.CSV, paths.Sample} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			continue
		}
		table, err := readTable(p)
		if err != nil {
			log.Warnf("reference data %s unreadable, trying next source: %v", p, err)
			continue
		}
		for _, d := range detectors() {
			rows, ok := d.detect(table)
			if !ok {
				continue
			}
			log.Infow("reference catalog built", map[string]any{
				"path":   p,
				"source": d.source.String(),
				"rows":   len(rows),
			})
			return New(rows, d.source)
		}
		log.Warnf("reference data %s has no recognizable schema, using builtin catalog", p)
		break
	}
	rows := builtin()
	log.Infow("reference catalog built", map[string]any{
		"source": SourceBuiltin.String(),
		"rows":   len(rows),
	})
	return New(rows, SourceBuiltin)
}

func readTable(path string) (Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ReadXLSX(path)
	}
	return ReadCSV(path)
}
