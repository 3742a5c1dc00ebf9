package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"machbridge/internal"
	"machbridge/internal/config"
)

// Driver runs the whole transformation: every source table in order, every
// row in file order, one shared id sequence across all of them.
type Driver struct {
	cfg config.Config
	log *zap.SugaredLogger
}

func NewDriver(cfg config.Config, log *zap.SugaredLogger) *Driver {
	return &Driver{cfg: cfg, log: log}
}

// Run aggregates all readable sources into one ordered catalog. A missing or
// unreadable table is logged and contributes nothing; the run continues. The
// returned error is reserved for zero-source calls, not data problems.
func (d *Driver) Run(sources []internal.Source) ([]internal.CatalogRecord, internal.RunSummary, error) {
	if len(sources) == 0 {
		return nil, internal.RunSummary{}, fmt.Errorf("no input sources")
	}

	summary := internal.RunSummary{
		ByCategory:   map[internal.Category]int{},
		BySource:     map[string]int{},
		TablesFailed: []string{},
	}

	synth := NewSynthesizer(d.cfg)
	seen := map[string]struct{}{}
	catalog := []internal.CatalogRecord{}

	for _, src := range sources {
		rows, err := ReadTable(src)
		if err != nil {
			d.log.Warnw("skipping table", "path", src.Path, "error", err)
			summary.TablesFailed = append(summary.TablesFailed, src.Path)
			continue
		}
		summary.TablesRead++

		for _, row := range rows {
			summary.RowsSeen++

			key := dedupeKey(src.Label, row)
			if _, dup := seen[key]; dup {
				summary.Duplicates++
				continue
			}

			record, ok := synth.Synthesize(row, src)
			if !ok {
				summary.Skipped++
				continue
			}
			seen[key] = struct{}{}

			catalog = append(catalog, *record)
			summary.Records++
			summary.ByCategory[record.Category]++
			summary.BySource[record.Source]++
		}
	}

	return catalog, summary, nil
}

// dedupeKey collapses byte-identical listings that appear twice within a run,
// e.g. a row present in two exports of the same source.
func dedupeKey(sourceLabel string, row internal.RawRow) string {
	return sourceLabel + "|" + row.Title + "|" + row.Model + "|" + row.Price
}
