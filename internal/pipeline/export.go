package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/xuri/excelize/v2"

	"machbridge/internal"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ExportJS writes the catalog as a JS data module consumed directly by the
// storefront: a generated-from header plus `export const MACHINES = [...]`.
func ExportJS(records []internal.CatalogRecord, sources []string, outputPath string) error {
	blob, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	header := fmt.Sprintf("// Auto-generated machine catalog — %d machines\n", len(records))
	for _, s := range sources {
		header += "// Source: " + s + "\n"
	}
	header += "// Generated: " + time.Now().UTC().Format("2006-01-02") + "\n"
	header += "export const MACHINES = "

	return writeFile(outputPath, append([]byte(header), append(blob, []byte(";\n")...)...))
}

// ExportJSON writes the catalog as a plain JSON array.
func ExportJSON(records []internal.CatalogRecord, outputPath string) error {
	blob, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(outputPath, append(blob, '\n'))
}

// ExportXLSX writes a review spreadsheet, one row per record.
func ExportXLSX(records []internal.CatalogRecord, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{
		"id", "name", "category", "brand", "year", "condition", "price",
		"location", "source", "hs_code", "customs_duty", "image_url", "specs", "description", "url",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, rec := range records {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		specsJSON, _ := json.Marshal(rec.Specs)

		set(1, rec.ID)
		set(2, rec.Name)
		set(3, string(rec.Category))
		set(4, rec.Brand)
		set(5, derefInt(rec.Year))
		set(6, string(rec.Condition))
		set(7, derefFloat(rec.Price))
		set(8, rec.Location)
		set(9, rec.Source)
		set(10, rec.HSCode)
		set(11, rec.CustomsDuty)
		set(12, rec.ImageURL)
		set(13, string(specsJSON))
		set(14, rec.Description)
		set(15, rec.URL)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

// LoadManifest reads the source-table manifest: a JSON array of Source defs.
func LoadManifest(path string) ([]internal.Source, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sources []internal.Source
	if err := json.Unmarshal(blob, &sources); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", path, err)
	}
	return sources, nil
}

func writeFile(outputPath string, blob []byte) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outputPath, blob, 0o644)
}

func derefFloat(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

func derefInt(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}
