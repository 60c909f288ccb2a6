// Package vocab holds the fixed vocabularies the pipeline classifies and
// parses against: size tokens and their ordering tracks, combo foods,
// ingredient components, section headings, and OCR typo corrections.
// Tables are extensible at runtime via LoadOverrides.
package vocab

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Size tracks. Ordinal comparisons are only meaningful within one track.
const (
	TrackInch         = "inch"
	TrackWord         = "word"
	TrackPortion      = "portion"
	TrackMultiplicity = "multiplicity"
	TrackPiece        = "piece"
)

// sizeWordMap maps lowercased size words to canonical labels.
var sizeWordMap = map[string]string{
	"s":           "S",
	"sm":          "S",
	"sml":         "S",
	"small":       "S",
	"m":           "M",
	"md":          "M",
	"med":         "M",
	"medium":      "M",
	"l":           "L",
	"lg":          "L",
	"lrg":         "L",
	"large":       "L",
	"xl":          "XL",
	"x-large":     "XL",
	"xlarge":      "XL",
	"extra large": "XL",
	"xxl":         "XXL",
	"half":        "Half",
	"whole":       "Whole",
	"mini":        "Mini",
	"personal":    "Personal",
	"reg":         "Regular",
	"regular":     "Regular",
	"family":      "Family",
	"family size": "Family",
	"party":       "Party",
	"party size":  "Party",
	"single":      "Single",
	"double":      "Double",
	"triple":      "Triple",
	"pint":        "Pint",
	"quart":       "Quart",
	"cup":         "Cup",
	"bowl":        "Bowl",
	"slice":       "Slice",
}

var (
	numericSizeRe = regexp.MustCompile(`^(\d{1,2})\s*(?:"|''|in\.?|inch(?:es)?)$`)
	pieceSizeRe   = regexp.MustCompile(`^(\d{1,3})\s*(?:pc|pcs|piece|pieces)\.?$`)
)

// NormalizeSizeToken canonicalizes a single size token: "Sml" -> "S",
// "10 inch" -> `10"`, "6 pcs" -> "6 pc", "Family Size" -> "Family".
// Returns "" when the token is not a recognized size.
func NormalizeSizeToken(tok string) string {
	t := strings.ToLower(strings.Trim(tok, " .,:;()"))
	if t == "" {
		return ""
	}
	if canon, ok := sizeWordMap[t]; ok {
		return canon
	}
	if m := numericSizeRe.FindStringSubmatch(t); m != nil {
		return m[1] + `"`
	}
	if m := pieceSizeRe.FindStringSubmatch(t); m != nil {
		return m[1] + " pc"
	}
	return ""
}

// IsSizeToken reports whether tok normalizes to a known size.
func IsSizeToken(tok string) bool {
	return NormalizeSizeToken(tok) != ""
}

// wordOrdinals places word-track and portion-track sizes on their scales.
var wordOrdinals = map[string]int{
	"Mini":     6,
	"Personal": 8,
	"S":        10,
	"M":        20,
	"L":        30,
	"XL":       40,
	"XXL":      45,
	"Slice":    105,
	"Half":     110,
	"Cup":      112,
	"Pint":     115,
	"Bowl":     118,
	"Regular":  119,
	"Whole":    120,
	"Quart":    125,
	"Family":   140,
	"Party":    150,
	"Single":   210,
	"Double":   220,
	"Triple":   230,
}

var portionSizes = map[string]bool{
	"Slice": true, "Half": true, "Cup": true, "Pint": true, "Bowl": true,
	"Regular": true, "Whole": true, "Quart": true, "Family": true, "Party": true,
}

var multiplicitySizes = map[string]bool{
	"Single": true, "Double": true, "Triple": true,
}

// SizeOrdinal returns the position of a canonical size on its track, and
// whether the size is ordered at all. Inch sizes order by the inch value,
// piece sizes by 300 plus the count.
func SizeOrdinal(canonical string) (int, bool) {
	if strings.HasSuffix(canonical, `"`) {
		n, err := strconv.Atoi(strings.TrimSuffix(canonical, `"`))
		if err != nil || n < 6 || n > 30 {
			return 0, false
		}
		return n, true
	}
	if strings.HasSuffix(canonical, " pc") {
		n, err := strconv.Atoi(strings.TrimSuffix(canonical, " pc"))
		if err != nil {
			return 0, false
		}
		return 300 + n, true
	}
	ord, ok := wordOrdinals[canonical]
	return ord, ok
}

// SizeTrack returns which ordering track a canonical size belongs to.
// Returns "" for unrecognized sizes.
func SizeTrack(canonical string) string {
	switch {
	case canonical == "":
		return ""
	case strings.HasSuffix(canonical, `"`):
		return TrackInch
	case strings.HasSuffix(canonical, " pc"):
		return TrackPiece
	case multiplicitySizes[canonical]:
		return TrackMultiplicity
	case portionSizes[canonical]:
		return TrackPortion
	}
	if _, ok := wordOrdinals[canonical]; ok {
		return TrackWord
	}
	return ""
}

// CompareSizes orders two canonical sizes on a shared track. Returns an
// error when the sizes live on different tracks or are unordered.
func CompareSizes(a, b string) (int, error) {
	ta, tb := SizeTrack(a), SizeTrack(b)
	if ta == "" || tb == "" || ta != tb {
		return 0, fmt.Errorf("sizes %q and %q are not comparable", a, b)
	}
	oa, _ := SizeOrdinal(a)
	ob, _ := SizeOrdinal(b)
	switch {
	case oa < ob:
		return -1, nil
	case oa > ob:
		return 1, nil
	}
	return 0, nil
}
