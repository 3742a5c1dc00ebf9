package pipeline

import (
	"strconv"
	"strings"

	"machbridge/internal"
	"machbridge/internal/util"
)

// Phrases that mean "no price published". Substring match, case-insensitive.
var noPricePhrases = []string{
	"request",
	"contact",
	"newsletter",
	"price info",
	"preisinfo",
	"auf anfrage",
	"new price",
}

// ParsePrice extracts a non-negative price in base currency units, or nil when
// the source text signals price-on-request or fails to parse. The separator
// convention is the source's fixed policy, never guessed from the value.
func ParsePrice(raw string, format internal.PriceFormat) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	lower := strings.ToLower(s)
	for _, phrase := range noPricePhrases {
		if strings.Contains(lower, phrase) {
			return nil
		}
	}

	parsed, ok := util.ParseDecimal(s, format == internal.PriceGerman)
	if !ok || parsed < 0 {
		return nil
	}
	return util.FloatPtr(parsed)
}

const (
	YearMin = 1900
	YearMax = 2030
)

// ParseYear accepts a 4-digit build year within plausible bounds.
func ParseYear(raw string) *int {
	return ParseYearBounded(raw, YearMin, YearMax)
}

func ParseYearBounded(raw string, min, max int) *int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < min || n > max {
		return nil
	}
	return util.IntPtr(n)
}

// conditionTiers is checked in order; the first group with a substring hit
// wins. "new" alone only counts when the text does not also say "used"
// ("new (used)" listings exist in the source data).
var conditionTiers = []struct {
	condition internal.Condition
	phrases   []string
}{
	{internal.ConditionExcellent, []string{"excellent", "sehr gut", "neuwertig"}},
	{internal.ConditionLikeNew, []string{"like new", "new"}},
	{internal.ConditionGood, []string{"ready for operation", "good", "gut", "gebraucht", "überholt"}},
	{internal.ConditionFair, []string{"fair"}},
}

// NormalizeCondition maps free-text condition to the fixed tier enum.
// Unrecognized or empty input defaults to Good.
func NormalizeCondition(raw string) internal.Condition {
	c := strings.ToLower(strings.TrimSpace(raw))
	if c == "" {
		return internal.ConditionGood
	}
	for _, tier := range conditionTiers {
		for _, phrase := range tier.phrases {
			if !strings.Contains(c, phrase) {
				continue
			}
			if phrase == "new" && strings.Contains(c, "used") {
				continue
			}
			return tier.condition
		}
	}
	return internal.ConditionGood
}

var countryTranslations = []struct{ de, en string }{
	{"Deutschland", "Germany"},
	{"Italien", "Italy"},
	{"Schweiz", "Switzerland"},
	{"Österreich", "Austria"},
	{"Spanien", "Spain"},
	{"Belgien", "Belgium"},
	{"Niederlande", "Netherlands"},
	{"Polen", "Poland"},
	{"Frankreich", "France"},
	{"Tschechien", "Czech Republic"},
	{"Dänemark", "Denmark"},
	{"Schweden", "Sweden"},
}

// CleanLocation trims separator debris, translates German country names and
// substitutes the region fallback when nothing is left.
func CleanLocation(raw, fallback string) string {
	cleaned := strings.ReplaceAll(raw, `"`, "")
	cleaned = util.TrimLeadingSeparators(util.CollapseSpaces(cleaned))
	for _, tr := range countryTranslations {
		cleaned = strings.ReplaceAll(cleaned, tr.de, tr.en)
	}
	if cleaned == "" {
		return fallback
	}
	return cleaned
}

// titleTranslations maps German machine-type prefixes to English display
// names. Only the leading type word is translated; model designations that
// follow are kept verbatim.
var titleTranslations = map[string]string{
	"Verarbeitungsanlage":       "Processing Line",
	"Produktionsmaschine":       "Production Machine",
	"Fertigungsmaschine":        "Manufacturing Machine",
	"Prozessanlage":             "Processing Plant",
	"Industriemaschine":         "Industrial Machine",
	"Konvektomat":               "Combi Oven",
	"Schneidemaschine":          "Cutting Machine",
	"Pasteur":                   "Pasteurizer",
	"Intensivmischer":           "Intensive Mixer",
	"Pflugscharmischer":         "Ploughshare Mixer",
	"Schlauchbeutelmaschine":    "Flow Wrapper",
	"Separator":                 "Separator",
	"Schockfroster":             "Blast Chiller",
	"Kippkochkessel":            "Tilting Kettle",
	"Sprühtrockner":             "Spray Dryer",
	"Verschließer":              "Sealing Machine",
	"Waschmaschine":             "Washing Machine",
	"Gefriertunnel":             "Freezing Tunnel",
	"Maischebottich":            "Mash Tun",
	"Wirbelschichttrockner":     "Fluid Bed Dryer",
	"Membranfilter":             "Membrane Filter",
	"Kühlzelle":                 "Cold Room",
	"Zentrifugaldekanter":       "Centrifugal Decanter",
	"Teigteiler":                "Dough Divider",
	"Mehrkopfwaage":             "Multihead Weigher",
	"Druckfilter":               "Pressure Filter",
	"Langwirkmaschine":          "Long Moulder",
	"Planetenrührer":            "Planetary Mixer",
	"CIP-Anlage":                "CIP System",
	"Temperiermaschine":         "Tempering Machine",
	"Schälmaschine":             "Peeling Machine",
	"Überziehmaschine":          "Enrober",
	"Geschirrspüler":            "Dishwasher",
	"Membranpumpe":              "Diaphragm Pump",
	"Schläger":                  "Beater",
	"Gärschrank":                "Proofing Cabinet",
	"Spiralkneter":              "Spiral Kneader",
	"Paddelmischer":             "Paddle Mixer",
	"Homogenisator":             "Homogenizer",
	"Konusmischer":              "Conical Mixer",
	"Walzentrockner":            "Drum Dryer",
	"Stikkenofen":               "Rack Oven",
	"2-Phasen-Dekanter":         "2-Phase Decanter",
	"Clipmaschine":              "Clipping Machine",
	"Desinfektionsanlage":       "Sanitizing System",
	"Entschwartungsmaschine":    "Derinding Machine",
	"Kreiselpumpe":              "Centrifugal Pump",
	"Passiermaschine":           "Strainer",
	"Drehkolbenpumpe":           "Rotary Lobe Pump",
	"Mogulanlage":               "Mogul Plant",
	"Kartonierer":               "Cartoner",
	"Bandfilter":                "Belt Filter",
	"Kühltunnel":                "Cooling Tunnel",
	"Kombinationswaage":         "Combination Weigher",
	"Eiscrusher":                "Ice Crusher",
	"Etikettiermaschine":        "Labeling Machine",
	"Käsefertiger":              "Cheese Vat",
	"Tiefziehverpackungsmaschine": "Thermoformer",
	"Aufschlagmaschine":         "Whipping Machine",
	"Walzwerk":                  "Roller Mill",
	"Fleischwolf":               "Meat Grinder",
	"Zahnradpumpe":              "Gear Pump",
	"Gefriertrockner":           "Freeze Dryer",
	"Salamander":                "Salamander Grill",
	"Würfelschneider":           "Dicer",
	"Schlagmaschine":            "Beating Machine",
	"Etikettierer":              "Labeler",
	"Brötchenpresse":            "Bun Press",
	"Eismaschine":               "Ice Cream Machine",
	"Kutter":                    "Bowl Cutter",
	"Hochdruckreiniger":         "Pressure Washer",
	"3-Phasen-Dekanter":         "3-Phase Decanter",
	"Exzenterschneckenpumpe":    "Progressive Cavity Pump",
	"Bandtrockner":              "Belt Dryer",
	"Rührkochkessel":            "Stirring Kettle",
	"Mischer":                   "Mixer",
	"Abfüllanlage":              "Filling Line",
	"Dampfkochkessel":           "Steam Kettle",
	"Plattenfilter":             "Plate Filter",
	"Conche":                    "Conche",
	"Vakuumierer":               "Vacuum Sealer",
	"Kombidämpfer":              "Combi Steamer",
	"Brauanlage":                "Brewing System",
	"Vakuumkocher":              "Vacuum Cooker",
	"Sägemaschine":              "Sawing Machine",
	"Füllmaschine":              "Filling Machine",
	"Plattformwaage":            "Platform Scale",
	"Entsafter":                 "Juicer",
	"Gärtank":                   "Fermentation Tank",
	"Speiseeisbereiter":         "Ice Cream Maker",
	"Plattenkühler":             "Plate Cooler",
	"Würzepfanne":               "Wort Kettle",
	"Kerzenfilter":              "Candle Filter",
	"Läuterbottich":             "Lauter Tun",
	"Sudhaus":                   "Brewhouse",
	"Dekanter":                  "Decanter",
	"Kontrollwaage":             "Checkweigher",
	"Rinser":                    "Rinser",
	"Dosierbandwaage":           "Belt Feeder Scale",
}

// TranslateTitle replaces a German machine-type prefix with its English name.
// Titles without a known prefix pass through unchanged.
func TranslateTitle(title string) string {
	for de, en := range titleTranslations {
		if title == de {
			return en
		}
		if strings.HasPrefix(title, de+" ") {
			return en + title[len(de):]
		}
	}
	return title
}
