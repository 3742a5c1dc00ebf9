package storage

import (
	"path/filepath"
	"testing"

	"machbridge/internal"
	"machbridge/internal/util"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testRecords() []internal.CatalogRecord {
	return []internal.CatalogRecord{
		{
			ID: 1, Name: "Filling Machine XYZ", Category: internal.CategoryFilling,
			Brand: "Handtmann", Year: util.IntPtr(2015), Condition: internal.ConditionExcellent,
			Price: util.FloatPtr(6029), Location: "Berlin, Germany", Source: "Maschinensucher",
			Icon: "\U0001FAD9", ImageURL: "/machines/A1.jpg",
			Specs:       map[string]string{"model": "XYZ"},
			Description: "desc", HSCode: "8422.30", CustomsDuty: 7.5,
			URL: "https://example.com/1",
		},
		{
			ID: 2, Name: "Decanter D-10", Category: internal.CategoryDairy,
			Brand: "Flottweg", Condition: internal.ConditionGood,
			Location: "Europe", Source: "Surplex",
			Icon:        "\U0001F95B",
			Specs:       map[string]string{"type": "Industrial"},
			Description: "desc2", HSCode: "8434.20", CustomsDuty: 7.5,
		},
	}
}

func TestReplaceAndList(t *testing.T) {
	db := openTestDB(t)

	if err := db.ReplaceCatalog(testRecords()); err != nil {
		t.Fatal(err)
	}

	got, err := db.ListMachines()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d", len(got))
	}

	first := got[0]
	if first.ID != 1 || first.Name != "Filling Machine XYZ" {
		t.Fatalf("first = %+v", first)
	}
	if first.Year == nil || *first.Year != 2015 {
		t.Fatalf("year = %v", first.Year)
	}
	if first.Price == nil || *first.Price != 6029 {
		t.Fatalf("price = %v", first.Price)
	}
	if first.Specs["model"] != "XYZ" {
		t.Fatalf("specs = %v", first.Specs)
	}

	second := got[1]
	if second.Year != nil || second.Price != nil {
		t.Fatalf("absent fields must stay absent: %+v", second)
	}
	if second.Condition != internal.ConditionGood {
		t.Fatalf("condition = %q", second.Condition)
	}
}

func TestReplaceIsWholesale(t *testing.T) {
	db := openTestDB(t)

	if err := db.ReplaceCatalog(testRecords()); err != nil {
		t.Fatal(err)
	}
	replacement := []internal.CatalogRecord{{
		ID: 1, Name: "Only One", Category: internal.CategoryPaper, Brand: "Unknown",
		Condition: internal.ConditionFair, Location: "Europe", Source: "PaperMachineTrading",
		Icon: "\U0001F4C4", Specs: map[string]string{"type": "Industrial"},
		Description: "d", HSCode: "8439.20", CustomsDuty: 7.5,
	}}
	if err := db.ReplaceCatalog(replacement); err != nil {
		t.Fatal(err)
	}

	got, err := db.ListMachines()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "Only One" {
		t.Fatalf("got = %+v", got)
	}
}

func TestCounts(t *testing.T) {
	db := openTestDB(t)
	if err := db.ReplaceCatalog(testRecords()); err != nil {
		t.Fatal(err)
	}

	byCategory, err := db.CountByCategory()
	if err != nil {
		t.Fatal(err)
	}
	if byCategory["filling"] != 1 || byCategory["dairy"] != 1 {
		t.Fatalf("byCategory = %v", byCategory)
	}

	bySource, err := db.CountBySource()
	if err != nil {
		t.Fatal(err)
	}
	if bySource["Maschinensucher"] != 1 || bySource["Surplex"] != 1 {
		t.Fatalf("bySource = %v", bySource)
	}
}

func TestRunAndMetadata(t *testing.T) {
	db := openTestDB(t)

	summary := internal.RunSummary{
		Records:    2,
		RowsSeen:   3,
		Skipped:    1,
		ByCategory: map[internal.Category]int{internal.CategoryFilling: 2},
		BySource:   map[string]int{"Maschinensucher": 2},
	}
	if err := db.InsertRun("trace-1", summary); err != nil {
		t.Fatal(err)
	}

	if err := db.SetMetadata("catalog.last_transform", "2026-08-30T00:00:00Z"); err != nil {
		t.Fatal(err)
	}
	value, err := db.GetMetadata("catalog.last_transform")
	if err != nil {
		t.Fatal(err)
	}
	if value == nil || *value != "2026-08-30T00:00:00Z" {
		t.Fatalf("value = %v", value)
	}

	missing, err := db.GetMetadata("nope")
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Fatalf("missing = %v", missing)
	}
}
