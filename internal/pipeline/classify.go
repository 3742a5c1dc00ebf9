package pipeline

import (
	"strings"

	"machbridge/internal"
)

// labelCategories maps the controlled German source vocabulary to catalog
// categories. Unknown labels fall back to mixing.
var labelCategories = map[string]internal.Category{
	"Fleischverarbeitungsmaschinen":        internal.CategoryMeat,
	"Fischverarbeitungsmaschinen":          internal.CategoryMeat,
	"Räucheranlagen":                       internal.CategoryMeat,
	"Milch & Milchprodukte":                internal.CategoryDairy,
	"Dekanter":                             internal.CategoryDairy,
	"Molkereianlagen":                      internal.CategoryDairy,
	"Separatoren für Lebensmittel":         internal.CategoryDairy,
	"Eismaschinen":                         internal.CategoryDairy,
	"Bäckereimaschinen":                    internal.CategoryBakery,
	"Süßwarenmaschinen":                    internal.CategoryBakery,
	"Pastamaschinen":                       internal.CategoryBakery,
	"Getränkemaschinen":                    internal.CategoryBeverage,
	"Getränkeautomaten":                    internal.CategoryBeverage,
	"Brauereianlagen":                      internal.CategoryBeverage,
	"Kaffee-, Tee- & Tabakmaschinen":       internal.CategoryBeverage,
	"Verpackungsmaschinen":                 internal.CategoryPackaging,
	"Kühlanlagen für Lebensmittel":         internal.CategoryPackaging,
	"Trockner für Lebensmittel":            internal.CategoryPackaging,
	"Waagen (Lebensmittel)":                internal.CategoryPackaging,
	"Lagerung & Handhabung":                internal.CategoryPackaging,
	"Kartoffelchipsherstellungsmaschinen":  internal.CategoryPackaging,
	"Mischanlagen":                         internal.CategoryMixing,
	"Kochkessel":                           internal.CategoryMixing,
	"Mühlen für Lebensmittel":              internal.CategoryMixing,
	"Getreideverarbeitung":                 internal.CategoryMixing,
	"Pulverherstellung & Verarbeitung":     internal.CategoryMixing,
	"Siebanlagen für Lebensmittel":         internal.CategoryMixing,
	"Sonstige Lebensmitteltechnik":         internal.CategoryMixing,
	"Labortechnik für Lebensmittel":        internal.CategoryMixing,
	"Anschlagmaschinen":                    internal.CategoryMixing,
	"Mengenmaschinen":                      internal.CategoryMixing,
	"Ölherstellung":                        internal.CategoryMixing,
	"Fettherstellung & Verarbeitung":       internal.CategoryMixing,
	"Filter (Lebensmitteltechnik)":         internal.CategoryFilling,
	"Pumpen (Lebensmitteltechnik)":         internal.CategoryFilling,
	"Reinigungstechnik":                    internal.CategoryFilling,
	"Gastronomiemaschinen & -Geräte":       internal.CategoryFilling,
	"Küchentechnik":                        internal.CategoryFilling,
	"Obstverarbeitung & Gemüseverarbeitung": internal.CategoryFilling,
	"Maschinen für Feinkost":               internal.CategoryFilling,
}

// keywordTriggers holds substring triggers per category, evaluated in
// CategoryOrder. Containment is deliberately boundary-free: "bottl" must hit
// both "bottling" and "bottle washer".
var keywordTriggers = map[internal.Category][]string{
	internal.CategoryBeverage: {"bottling", "bottl", "beverage", "brew", "brewhouse", "water khs", "filling machine", "bottle washer", "bottle inspector", "decrater", "crater", "retort"},
	internal.CategoryMeat:     {"burger", "nugget", "fryer", "frying", "fish", "skinning", "tumbler", "batter", "enrober", "preduster", "pre-duster", "former for", "multifor", "speedbatcher", "stir fryer", "freezer", "tunnel freezer", "flowcook", "cookstar", "spiral oven"},
	internal.CategoryDairy:    {"cheese", "milk", "cream", "dairy", "edible oil", "oil refinery"},
	internal.CategoryFilling:  {"filling", "filler", "pouch", "sealer", "vacuum", "dosing", "standardization"},
	internal.CategoryPackaging: {"wrapper", "packing", "packer", "conveyor", "tipper", "dolav", "washing machine", "container wash", "metal detector"},
	internal.CategoryMixing:   {"mixer", "mixing", "blending", "paddle", "process tank", "sieve", "vibrating"},
	internal.CategoryBakery:   {"pasta", "oven", "tunnel oven", "bread", "baking"},
}

const (
	// labelFallback catches unknown controlled labels; mixing is the broadest
	// residual class in the labeled datasets.
	labelFallback = internal.CategoryMixing
	// keywordFallback catches untriggered free text; the keyword strategy only
	// runs for food-processing sources where filling dominates the residue.
	keywordFallback = internal.CategoryFilling
)

// Classify resolves a row's category. Deterministic and side-effect-free;
// it never fails and never returns a value outside CategoryOrder.
func Classify(label, title, description string, strategy internal.ClassifyStrategy) internal.Category {
	switch strategy {
	case internal.StrategyLabel:
		if c, ok := labelCategories[strings.TrimSpace(label)]; ok {
			return c
		}
		return labelFallback
	default:
		return classifyKeywords(title, description)
	}
}

func classifyKeywords(title, description string) internal.Category {
	text := strings.ToLower(title + " " + description)
	for _, category := range internal.CategoryOrder {
		for _, trigger := range keywordTriggers[category] {
			if strings.Contains(text, trigger) {
				return category
			}
		}
	}
	return keywordFallback
}
