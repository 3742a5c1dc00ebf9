package internal

// Category is one of the fixed catalog categories. CategoryOrder below defines
// the enumeration order the keyword classifier resolves ties by.
type Category string

const (
	CategoryBeverage  Category = "beverage"
	CategoryMeat      Category = "meat"
	CategoryDairy     Category = "dairy"
	CategoryFilling   Category = "filling"
	CategoryPackaging Category = "packaging"
	CategoryMixing    Category = "mixing"
	CategoryBakery    Category = "bakery"
	CategoryPrinting  Category = "printing"
	CategoryPaper     Category = "paper"
)

var CategoryOrder = []Category{
	CategoryBeverage,
	CategoryMeat,
	CategoryDairy,
	CategoryFilling,
	CategoryPackaging,
	CategoryMixing,
	CategoryBakery,
	CategoryPrinting,
	CategoryPaper,
}

func IsCategory(c Category) bool {
	for _, known := range CategoryOrder {
		if c == known {
			return true
		}
	}
	return false
}

type Condition string

const (
	ConditionExcellent Condition = "Excellent"
	ConditionLikeNew   Condition = "Like New"
	ConditionGood      Condition = "Good"
	ConditionFair      Condition = "Fair"
)

// PriceFormat is a fixed per-source policy, never sniffed from the data.
type PriceFormat string

const (
	// PriceGerman: "." thousands, "," decimal ("6.029" = 6029, "1.234,50" = 1234.50).
	PriceGerman PriceFormat = "german"
	// PriceEnglish: "," thousands, "." decimal ("6,029" = 6029).
	PriceEnglish PriceFormat = "english"
)

type ClassifyStrategy string

const (
	// StrategyLabel looks the controlled category label up in the German label map.
	StrategyLabel ClassifyStrategy = "label"
	// StrategyKeyword scores lowercased title+description against trigger lists.
	StrategyKeyword ClassifyStrategy = "keyword"
	// StrategyFixed assigns the source's default category to every row.
	StrategyFixed ClassifyStrategy = "fixed"
)

type TableKind string

const (
	TableCSV  TableKind = "csv"
	TableXLSX TableKind = "xlsx"
	TableHTML TableKind = "html"
)

// Source describes one input table and the policies that apply to its rows.
type Source struct {
	Path        string           `json:"path"`
	Label       string           `json:"source"`
	Kind        TableKind        `json:"kind"`
	Strategy    ClassifyStrategy `json:"strategy"`
	Category    Category         `json:"category,omitempty"`
	PriceFormat PriceFormat      `json:"priceFormat"`
}

// RawRow is one listing row, validated into named fields at table-read time.
// All fields hold raw source text; normalization happens downstream.
type RawRow struct {
	ExternalID    string `csv:"id"`
	Title         string `csv:"title"`
	Manufacturer  string `csv:"manufacturer"`
	Model         string `csv:"model"`
	Year          string `csv:"year"`
	Condition     string `csv:"condition"`
	Functionality string `csv:"functionality"`
	Price         string `csv:"price"`
	Currency      string `csv:"currency"`
	Location      string `csv:"location"`
	Dimensions    string `csv:"dimensions"`
	Weight        string `csv:"weight"`
	Electrical    string `csv:"electrical"`
	Description   string `csv:"description"`
	Category      string `csv:"category"`
	URL           string `csv:"url"`
}

// CatalogRecord is one display-ready catalog entry. Immutable once
// synthesized; the catalog is only ever regenerated wholesale.
type CatalogRecord struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Category    Category          `json:"category"`
	Brand       string            `json:"brand"`
	Year        *int              `json:"year"`
	Condition   Condition         `json:"condition"`
	Price       *float64          `json:"price"`
	Location    string            `json:"location"`
	Source      string            `json:"source"`
	Icon        string            `json:"image"`
	ImageURL    string            `json:"imageUrl"`
	Specs       map[string]string `json:"specs"`
	Description string            `json:"description"`
	HSCode      string            `json:"hsCode"`
	CustomsDuty float64           `json:"customsDuty"`
	URL         string            `json:"url,omitempty"`
}

// RunSummary is the diagnostic breakdown of one pipeline run. Reported after
// a run, not part of the persisted catalog.
type RunSummary struct {
	Records      int              `json:"records"`
	RowsSeen     int              `json:"rowsSeen"`
	Skipped      int              `json:"skipped"`
	Duplicates   int              `json:"duplicates"`
	ByCategory   map[Category]int `json:"byCategory"`
	BySource     map[string]int   `json:"bySource"`
	TablesRead   int              `json:"tablesRead"`
	TablesFailed []string         `json:"tablesFailed"`
}
