package pipeline

import "machbridge/internal"

// Attributes is the display/customs metadata derived from a category.
type Attributes struct {
	HSCode      string
	CustomsDuty float64
	Glyph       string
}

// Generic machinery tariff line for anything outside the declared categories.
// The classifier guarantees a known category, so this is a defensive path.
var genericAttributes = Attributes{HSCode: "8479.89", CustomsDuty: 7.5, Glyph: "⚙️"}

var categoryAttributes = map[internal.Category]Attributes{
	internal.CategoryBeverage:  {HSCode: "8422.30", CustomsDuty: 7.5, Glyph: "\U0001F964"},
	internal.CategoryMeat:      {HSCode: "8438.50", CustomsDuty: 7.5, Glyph: "\U0001F969"},
	internal.CategoryDairy:     {HSCode: "8434.20", CustomsDuty: 7.5, Glyph: "\U0001F95B"},
	internal.CategoryFilling:   {HSCode: "8422.30", CustomsDuty: 7.5, Glyph: "\U0001FAD9"},
	internal.CategoryPackaging: {HSCode: "8422.40", CustomsDuty: 7.5, Glyph: "\U0001F4E6"},
	internal.CategoryMixing:    {HSCode: "8438.80", CustomsDuty: 7.5, Glyph: "\U0001F504"},
	internal.CategoryBakery:    {HSCode: "8438.10", CustomsDuty: 7.5, Glyph: "\U0001F35E"},
	internal.CategoryPrinting:  {HSCode: "8443.39", CustomsDuty: 7.5, Glyph: "\U0001F5A8️"},
	internal.CategoryPaper:     {HSCode: "8439.20", CustomsDuty: 7.5, Glyph: "\U0001F4C4"},
}

// DeriveAttributes is a total mapping: every declared category has an entry,
// anything else resolves to the generic pair.
func DeriveAttributes(c internal.Category) Attributes {
	if attrs, ok := categoryAttributes[c]; ok {
		return attrs
	}
	return genericAttributes
}

// imagePools are fallback stock images cycled per category when a row carries
// no scraped image of its own. Cycling state lives on the Synthesizer.
var imagePools = map[internal.Category][]string{
	internal.CategoryFilling: {
		"https://plus.unsplash.com/premium_photo-1663045337142-aed6c496ccbc?w=600&h=400&fit=crop&auto=format",
		"https://images.unsplash.com/photo-1763256340688-cbd3614c9a56?w=600&h=400&fit=crop&auto=format",
		"https://images.unsplash.com/photo-1758522965224-7a69eedbad8a?w=600&h=400&fit=crop&auto=format",
		"https://images.unsplash.com/photo-1767814984749-afb88afca4d7?w=600&h=400&fit=crop&auto=format",
	},
	internal.CategoryPackaging: {
		"https://plus.unsplash.com/premium_photo-1682144489819-d5efccb05721?w=600&h=400&fit=crop&auto=format",
		"https://images.unsplash.com/photo-1764745021344-317b80f09e40?w=600&h=400&fit=crop&auto=format",
		"https://images.unsplash.com/photo-1755937303351-57ad0f70f773?w=600&h=400&fit=crop&auto=format",
		"https://images.unsplash.com/photo-1730705788367-dbd288c40ee7?w=600&h=400&fit=crop&auto=format",
	},
	internal.CategoryMixing: {
		"https://plus.unsplash.com/premium_photo-1761846736549-27842d888eca?w=600&h=400&fit=crop&auto=format",
		"https://images.unsplash.com/photo-1575215913471-52cde4fb8a6e?w=600&h=400&fit=crop&auto=format",
		"https://images.unsplash.com/photo-1730401996604-61114d4a953e?w=600&h=400&fit=crop&auto=format",
		"https://images.unsplash.com/photo-1583145326503-e8257db257d2?w=600&h=400&fit=crop&auto=format",
	},
	internal.CategoryBakery: {
		"https://plus.unsplash.com/premium_photo-1663047600157-3d042098e0f3?w=600&h=400&fit=crop&auto=format",
		"https://images.unsplash.com/photo-1703607888337-aae6d77b3d83?w=600&h=400&fit=crop&auto=format",
		"https://images.unsplash.com/photo-1738717201678-412395e65b36?w=600&h=400&fit=crop&auto=format",
		"https://images.unsplash.com/photo-1591482862924-b98dbf239e8f?w=600&h=400&fit=crop&auto=format",
	},
	internal.CategoryDairy: {
		"https://plus.unsplash.com/premium_photo-1682145514902-59f426028d65?w=600&h=400&fit=crop&auto=format",
		"https://images.unsplash.com/photo-1580686954168-b08d0309d203?w=600&h=400&fit=crop&auto=format",
		"https://images.unsplash.com/photo-1523473827533-2a64d0d36748?w=600&h=400&fit=crop&auto=format",
		"https://images.unsplash.com/photo-1649715985821-9a25b85bfc83?w=600&h=400&fit=crop&auto=format",
	},
	internal.CategoryMeat: {
		"https://plus.unsplash.com/premium_photo-1682129520075-6e97df4cba3f?w=600&h=400&fit=crop&auto=format",
		"https://images.unsplash.com/photo-1656711858987-1956a99f646a?w=600&h=400&fit=crop&auto=format",
		"https://images.unsplash.com/photo-1699841669442-d13df0725af3?w=600&h=400&fit=crop&auto=format",
		"https://images.unsplash.com/photo-1640503006343-1614ff8b15f5?w=600&h=400&fit=crop&auto=format",
	},
	internal.CategoryBeverage: {
		"https://plus.unsplash.com/premium_photo-1663036488065-e72992044d62?w=600&h=400&fit=crop&auto=format",
		"https://images.unsplash.com/photo-1545287072-469f3761413c?w=600&h=400&fit=crop&auto=format",
		"https://images.unsplash.com/photo-1689348745037-21adeb31dd2a?w=600&h=400&fit=crop&auto=format",
		"https://images.unsplash.com/photo-1586962371016-e47edc9834c6?w=600&h=400&fit=crop&auto=format",
	},
}
