package util

import (
	"regexp"
	"strconv"
	"strings"
)

var reCurrency = regexp.MustCompile(`[€$£\s\x{00A0}]`)

// ParseDecimal parses a price/amount token under an explicit separator
// convention. The convention is a per-source policy: german uses "." as
// thousands separator and "," as decimal ("6.029" = 6029, "1.234,50" =
// 1234.50); english uses "," as thousands and "." as decimal. Currency
// symbols and whitespace are stripped first. Returns false on anything that
// does not survive cleaning as a number.
func ParseDecimal(token string, german bool) (float64, bool) {
	compact := reCurrency.ReplaceAllString(token, "")
	if compact == "" {
		return 0, false
	}

	if german {
		compact = strings.ReplaceAll(compact, ".", "")
		compact = strings.ReplaceAll(compact, ",", ".")
	} else {
		compact = strings.ReplaceAll(compact, ",", "")
	}

	parsed, err := strconv.ParseFloat(compact, 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}
