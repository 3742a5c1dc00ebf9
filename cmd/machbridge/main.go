package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"machbridge/internal"
	"machbridge/internal/config"
	"machbridge/internal/pipeline"
	"machbridge/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	logger, err := zap.NewProduction()
	must(err)
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	cmd := os.Args[1]
	switch cmd {
	case "transform":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		manifest := fs.String("manifest", cfg.ManifestPath, "sources manifest json")
		jsOut := fs.String("js", "", "output js module path")
		jsonOut := fs.String("json", "", "output json path")
		xlsxOut := fs.String("xlsx", "", "output review xlsx path")
		noDB := fs.Bool("no-db", false, "skip persisting the catalog")
		_ = fs.Parse(os.Args[2:])

		sources, err := pipeline.LoadManifest(*manifest)
		must(err)

		driver := pipeline.NewDriver(cfg, log)
		catalog, summary, err := driver.Run(sources)
		must(err)

		if !*noDB {
			db, err := storage.Open(cfg.DBPath)
			must(err)
			defer db.Close()
			must(db.ReplaceCatalog(catalog))
			must(db.InsertRun(traceID(), summary))
			_ = db.SetMetadata("catalog.last_transform", time.Now().UTC().Format(time.RFC3339))
		}

		must(writeOutputs(catalog, sources, *jsOut, *jsonOut, *xlsxOut))
		printSummary(summary)
	case "run":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "input table path")
		kind := fs.String("kind", "csv", "csv|xlsx|html")
		label := fs.String("source", "", "provenance label")
		category := fs.String("category", "", "fixed category for this table")
		strategy := fs.String("strategy", "", "label|keyword|fixed")
		priceFormat := fs.String("price-format", "english", "german|english")
		jsOut := fs.String("js", "", "output js module path")
		jsonOut := fs.String("json", "", "output json path")
		xlsxOut := fs.String("xlsx", "", "output review xlsx path")
		_ = fs.Parse(os.Args[2:])
		if *input == "" || *label == "" {
			must(fmt.Errorf("--input and --source are required"))
		}

		src := internal.Source{
			Path:        *input,
			Label:       *label,
			Kind:        internal.TableKind(*kind),
			Strategy:    internal.ClassifyStrategy(*strategy),
			Category:    internal.Category(*category),
			PriceFormat: internal.PriceFormat(*priceFormat),
		}
		if src.Strategy == "" {
			src.Strategy = internal.StrategyKeyword
			if src.Category != "" {
				src.Strategy = internal.StrategyFixed
			}
		}

		driver := pipeline.NewDriver(cfg, log)
		catalog, summary, err := driver.Run([]internal.Source{src})
		must(err)
		must(writeOutputs(catalog, []internal.Source{src}, *jsOut, *jsonOut, *xlsxOut))
		printSummary(summary)
	case "export:js", "export:json", "export:xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		out := fs.String("out", "", "output path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*out) == "" {
			must(fmt.Errorf("--out is required"))
		}

		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()
		catalog, err := db.ListMachines()
		must(err)
		if len(catalog) == 0 {
			must(fmt.Errorf("catalog is empty, run transform first"))
		}

		switch cmd {
		case "export:js":
			must(pipeline.ExportJS(catalog, sourceLabels(catalog), *out))
		case "export:json":
			must(pipeline.ExportJSON(catalog, *out))
		case "export:xlsx":
			must(pipeline.ExportXLSX(catalog, *out))
		}
		fmt.Printf("exported %d machines to %s\n", len(catalog), *out)
	case "stats":
		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()

		byCategory, err := db.CountByCategory()
		must(err)
		bySource, err := db.CountBySource()
		must(err)

		fmt.Println("Category breakdown:")
		printCounts(byCategory)
		fmt.Println("\nSource breakdown:")
		printCounts(bySource)
	default:
		usage()
		os.Exit(1)
	}
}

func writeOutputs(catalog []internal.CatalogRecord, sources []internal.Source, jsOut, jsonOut, xlsxOut string) error {
	labels := make([]string, 0, len(sources))
	for _, s := range sources {
		labels = append(labels, s.Label)
	}

	if jsOut != "" {
		if err := pipeline.ExportJS(catalog, labels, jsOut); err != nil {
			return err
		}
		fmt.Printf("wrote %d machines to %s\n", len(catalog), jsOut)
	}
	if jsonOut != "" {
		if err := pipeline.ExportJSON(catalog, jsonOut); err != nil {
			return err
		}
		fmt.Printf("wrote %d machines to %s\n", len(catalog), jsonOut)
	}
	if xlsxOut != "" {
		if err := pipeline.ExportXLSX(catalog, xlsxOut); err != nil {
			return err
		}
		fmt.Printf("wrote %d machines to %s\n", len(catalog), xlsxOut)
	}
	return nil
}

func sourceLabels(catalog []internal.CatalogRecord) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, rec := range catalog {
		if _, ok := seen[rec.Source]; ok {
			continue
		}
		seen[rec.Source] = struct{}{}
		out = append(out, rec.Source)
	}
	return out
}

func printSummary(summary internal.RunSummary) {
	fmt.Printf("transform done: %d records from %d rows (%d skipped, %d duplicates, %d tables failed)\n",
		summary.Records, summary.RowsSeen, summary.Skipped, summary.Duplicates, len(summary.TablesFailed))

	byCategory := map[string]int{}
	for cat, count := range summary.ByCategory {
		byCategory[string(cat)] = count
	}
	fmt.Println("\nCategory breakdown:")
	printCounts(byCategory)
	fmt.Println("\nSource breakdown:")
	printCounts(summary.BySource)
}

func printCounts(counts map[string]int) {
	type entry struct {
		key   string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for k, c := range counts {
		entries = append(entries, entry{k, c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].key < entries[j].key
	})
	for _, e := range entries {
		fmt.Printf("  %s: %d\n", e.key, e.count)
	}
}

func traceID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}

func usage() {
	fmt.Println("usage: machbridge <command>")
	fmt.Println("commands:")
	fmt.Println("  transform [--manifest=sources.json] [--js=...] [--json=...] [--xlsx=...] [--no-db]")
	fmt.Println("  run --input=... --source=... [--kind=csv|xlsx|html] [--category=...] [--strategy=label|keyword|fixed] [--price-format=german|english] [--js|--json|--xlsx=...]")
	fmt.Println("  export:js --out=...")
	fmt.Println("  export:json --out=...")
	fmt.Println("  export:xlsx --out=...")
	fmt.Println("  stats")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
