package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"

	"machbridge/internal"
	"machbridge/internal/util"
)

// ReadTable loads one input table into typed raw rows. The schema is bound
// once here; downstream stages never touch column names again.
func ReadTable(src internal.Source) ([]internal.RawRow, error) {
	blob, err := os.ReadFile(src.Path)
	if err != nil {
		return nil, err
	}

	switch src.Kind {
	case internal.TableCSV, "":
		return readCSV(blob)
	case internal.TableXLSX:
		return readXLSX(blob)
	case internal.TableHTML:
		return readHTML(blob)
	default:
		return nil, fmt.Errorf("unsupported table kind: %s", src.Kind)
	}
}

func readCSV(blob []byte) ([]internal.RawRow, error) {
	var rows []internal.RawRow
	if err := gocsv.UnmarshalBytes(blob, &rows); err != nil {
		return nil, fmt.Errorf("decode csv: %w", err)
	}
	return rows, nil
}

// columnProbes maps RawRow fields to header substrings, lowercased. Both the
// English scraper exports and the German mock tables are covered.
var columnProbes = []struct {
	assign func(*internal.RawRow, string)
	probes []string
}{
	{func(r *internal.RawRow, v string) { r.Title = v }, []string{"title", "name", "bezeichnung"}},
	{func(r *internal.RawRow, v string) { r.Manufacturer = v }, []string{"manufacturer", "hersteller", "brand"}},
	{func(r *internal.RawRow, v string) { r.Model = v }, []string{"model"}},
	{func(r *internal.RawRow, v string) { r.Year = v }, []string{"year", "baujahr"}},
	{func(r *internal.RawRow, v string) { r.Condition = v }, []string{"condition", "zustand"}},
	{func(r *internal.RawRow, v string) { r.Functionality = v }, []string{"functionality", "funktion"}},
	{func(r *internal.RawRow, v string) { r.Price = v }, []string{"price", "preis"}},
	{func(r *internal.RawRow, v string) { r.Location = v }, []string{"location", "standort"}},
	{func(r *internal.RawRow, v string) { r.Dimensions = v }, []string{"dimensions", "abmessung"}},
	{func(r *internal.RawRow, v string) { r.Weight = v }, []string{"weight", "gewicht"}},
	{func(r *internal.RawRow, v string) { r.Electrical = v }, []string{"electrical", "elektrik"}},
	{func(r *internal.RawRow, v string) { r.Description = v }, []string{"description", "beschreibung"}},
	{func(r *internal.RawRow, v string) { r.Category = v }, []string{"category", "kategorie"}},
	{func(r *internal.RawRow, v string) { r.URL = v }, []string{"url", "link"}},
	{func(r *internal.RawRow, v string) { r.ExternalID = v }, []string{"id"}},
}

func readXLSX(blob []byte) ([]internal.RawRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(blob))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := []internal.RawRow{}
	for _, sheet := range f.GetSheetList() {
		cells, err := f.GetRows(sheet)
		if err != nil || len(cells) < 2 {
			continue
		}
		headers := normalizeHeaders(cells[0])
		for _, rowCells := range cells[1:] {
			row := bindRow(headers, rowCells)
			if strings.TrimSpace(row.Title) == "" {
				continue
			}
			out = append(out, row)
		}
	}
	return out, nil
}

// readHTML walks tables in a saved listing page export. The first row is
// treated as the header row, the rest as listings.
func readHTML(blob []byte) ([]internal.RawRow, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(blob))
	if err != nil {
		return nil, err
	}

	out := []internal.RawRow{}
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		trs := table.Find("tr")
		if trs.Length() < 2 {
			return
		}

		headers := []string{}
		trs.First().Find("th,td").Each(func(_ int, cell *goquery.Selection) {
			headers = append(headers, strings.ToLower(util.CollapseSpaces(cell.Text())))
		})

		trs.Slice(1, trs.Length()).Each(func(_ int, tr *goquery.Selection) {
			rowCells := []string{}
			tr.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
				rowCells = append(rowCells, util.CollapseSpaces(cell.Text()))
			})
			row := bindRow(headers, rowCells)
			if strings.TrimSpace(row.Title) == "" {
				return
			}
			out = append(out, row)
		})
	})

	return out, nil
}

func normalizeHeaders(cells []string) []string {
	out := make([]string, 0, len(cells))
	for _, c := range cells {
		out = append(out, strings.ToLower(util.CollapseSpaces(c)))
	}
	return out
}

// bindRow assigns cells to RawRow fields by probing lowercased headers.
// "id" is matched exactly to avoid hitting "listing_id"-style foreign keys
// before their own probe does, and substring probes take the first hit.
func bindRow(headers, cells []string) internal.RawRow {
	var row internal.RawRow
	for _, probe := range columnProbes {
		idx := -1
		for i, h := range headers {
			if matched(h, probe.probes) {
				idx = i
				break
			}
		}
		if idx >= 0 && idx < len(cells) {
			probe.assign(&row, strings.TrimSpace(cells[idx]))
		}
	}
	return row
}

func matched(header string, probes []string) bool {
	for _, p := range probes {
		if p == "id" {
			if header == "id" || header == "listing_id" {
				return true
			}
			continue
		}
		if strings.Contains(header, p) {
			return true
		}
	}
	return false
}
