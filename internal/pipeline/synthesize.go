package pipeline

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strings"

	"machbridge/internal"
	"machbridge/internal/config"
	"machbridge/internal/util"
)

// Synthesizer composes normalized fields into catalog records. It owns the
// run-scoped id counter and the per-category image cycling state, so one
// Synthesizer instance corresponds to exactly one pipeline run.
type Synthesizer struct {
	cfg        config.Config
	nextID     int
	imageIndex map[internal.Category]int
}

func NewSynthesizer(cfg config.Config) *Synthesizer {
	return &Synthesizer{
		cfg:        cfg,
		nextID:     1,
		imageIndex: map[internal.Category]int{},
	}
}

// Synthesize turns one raw row into a catalog record. Rows without a title
// are skipped (nil, false); everything else degrades to defaults rather than
// failing.
func (s *Synthesizer) Synthesize(row internal.RawRow, src internal.Source) (*internal.CatalogRecord, bool) {
	title := util.CollapseSpaces(row.Title)
	if title == "" {
		return nil, false
	}

	category := s.resolveCategory(row, src)
	attrs := DeriveAttributes(category)

	name := TranslateTitle(title)
	brand := util.CollapseSpaces(row.Manufacturer)
	if brand == "" {
		brand = "Unknown"
	}
	condition := NormalizeCondition(row.Condition)

	record := internal.CatalogRecord{
		ID:          s.nextID,
		Name:        name,
		Category:    category,
		Brand:       brand,
		Year:        ParseYearBounded(row.Year, s.cfg.YearMin, s.cfg.YearMax),
		Condition:   condition,
		Price:       ParsePrice(row.Price, src.PriceFormat),
		Location:    CleanLocation(row.Location, s.cfg.DefaultLocation),
		Source:      src.Label,
		Icon:        attrs.Glyph,
		ImageURL:    s.imageURL(row, category),
		Specs:       buildSpecs(row),
		Description: s.description(row, name, brand, category, condition),
		HSCode:      attrs.HSCode,
		CustomsDuty: attrs.CustomsDuty,
		URL:         strings.TrimSpace(row.URL),
	}
	s.nextID++

	return &record, true
}

func (s *Synthesizer) resolveCategory(row internal.RawRow, src internal.Source) internal.Category {
	if src.Strategy == internal.StrategyFixed && internal.IsCategory(src.Category) {
		return src.Category
	}
	return Classify(row.Category, row.Title, row.Description, src.Strategy)
}

// imageURL prefers the scraped image keyed by the source's external row id,
// then a cycled per-category stock image, then nothing (glyph only).
func (s *Synthesizer) imageURL(row internal.RawRow, category internal.Category) string {
	if externalID := strings.TrimSpace(row.ExternalID); externalID != "" {
		return s.cfg.ImagePathPrefix + externalID + ".jpg"
	}
	pool := imagePools[category]
	if len(pool) == 0 {
		return ""
	}
	url := pool[s.imageIndex[category]%len(pool)]
	s.imageIndex[category]++
	return url
}

var (
	reVoltage = regexp.MustCompile(`Spannung:\s*([^;]+)`)
	rePower   = regexp.MustCompile(`Leistung:\s*([^;]+)`)
)

// buildSpecs collects whatever structured attributes the row carries. The
// result is never empty; rows with no usable fields get a placeholder entry.
func buildSpecs(row internal.RawRow) map[string]string {
	specs := map[string]string{}
	if model := util.CollapseSpaces(row.Model); model != "" {
		specs["model"] = model
	}
	if functionality := util.CollapseSpaces(row.Functionality); functionality != "" {
		specs["functionality"] = functionality
	}
	if dimensions := util.CollapseSpaces(row.Dimensions); dimensions != "" {
		specs["dimensions"] = dimensions
	}
	if weight := util.CollapseSpaces(row.Weight); weight != "" {
		specs["weight"] = weight
	}
	if electrical := strings.TrimSpace(row.Electrical); electrical != "" {
		if m := reVoltage.FindStringSubmatch(electrical); m != nil {
			specs["voltage"] = strings.TrimSpace(m[1])
		}
		if m := rePower.FindStringSubmatch(electrical); m != nil {
			specs["power"] = strings.TrimSpace(m[1])
		}
	}
	if len(specs) == 0 {
		specs["type"] = "Industrial"
	}
	return specs
}

var categoryLabels = map[internal.Category]string{
	internal.CategoryMeat:      "meat processing",
	internal.CategoryDairy:     "dairy processing",
	internal.CategoryBakery:    "bakery & confectionery",
	internal.CategoryBeverage:  "beverage production",
	internal.CategoryPackaging: "packaging & storage",
	internal.CategoryMixing:    "mixing & processing",
	internal.CategoryFilling:   "filling & filtration",
	internal.CategoryPrinting:  "printing",
	internal.CategoryPaper:     "paper processing",
}

var conditionPhrases = map[internal.Condition]string{
	internal.ConditionExcellent: "in excellent condition, fully tested and operational",
	internal.ConditionLikeNew:   "in excellent condition, fully tested and operational",
	internal.ConditionGood:      "in good working condition, regularly maintained",
	internal.ConditionFair:      "in fair condition, suitable for reconditioning",
}

// description uses source text with whitespace collapsed when present,
// otherwise synthesizes one sentence from a template. Template selection is a
// stable hash of name+brand so repeated runs produce identical catalogs.
func (s *Synthesizer) description(row internal.RawRow, name, brand string, category internal.Category, condition internal.Condition) string {
	if text := util.CollapseSpaces(row.Description); text != "" {
		return text
	}

	model := util.CollapseSpaces(row.Model)
	catLabel := categoryLabels[category]
	if catLabel == "" {
		catLabel = "food processing"
	}
	condPhrase := conditionPhrases[condition]

	modelParen := ""
	if model != "" {
		modelParen = " (Model: " + model + ")"
	}
	modelSpace := ""
	if model != "" {
		modelSpace = " " + model
	}
	modelComma := ""
	if model != "" {
		modelComma = ", model " + model
	}

	templates := []string{
		fmt.Sprintf("%s by %s%s. This %s machine is %s. Available for immediate inspection and shipping.", name, brand, modelParen, catLabel, condPhrase),
		fmt.Sprintf("%s%s — %s. Category: %s. %s condition. Ready for dispatch from warehouse.", brand, modelSpace, name, catLabel, condition),
		fmt.Sprintf("We offer a %s from %s%s. The machine is %s. Spare parts available.", name, brand, modelComma, condPhrase),
		fmt.Sprintf("%s — %s%s. This %s equipment is %s. Can be inspected on site.", name, brand, modelSpace, catLabel, condPhrase),
		fmt.Sprintf("%s %s%s. Industrial-grade %s equipment, %s. All functions verified.", brand, name, modelParen, catLabel, condPhrase),
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(name + "|" + brand))
	return templates[int(h.Sum32())%len(templates)]
}
