package vocab

import "strings"

// sectionPhrases are complete headings that always denote a menu section.
var sectionPhrases = map[string]bool{
	"appetizers": true, "starters": true, "sides": true, "side orders": true,
	"salads": true, "soups": true, "soup and salad": true,
	"pizza": true, "pizzas": true, "gourmet pizza": true,
	"specialty pizzas": true, "calzones": true, "stromboli": true,
	"sandwiches": true, "subs": true, "hoagies": true, "wraps": true,
	"club sandwiches": true, "melt sandwiches": true, "burgers": true,
	"wings": true, "pasta": true, "pasta dinners": true, "entrees": true,
	"dinners": true, "lunch specials": true, "desserts": true,
	"beverages": true, "drinks": true, "seafood": true, "specials": true,
	"kids menu": true, "extras": true, "toppings": true,
}

// sectionKeywords match when they appear as the first or last word of a
// heading, so "FRESH BUFFALO WINGS" and "WRAPS CITY" both resolve.
var sectionKeywords = map[string]bool{
	"appetizers": true, "starters": true, "sides": true, "salads": true,
	"soups": true, "pizza": true, "pizzas": true, "calzones": true,
	"stromboli": true, "sandwiches": true, "subs": true, "hoagies": true,
	"wraps": true, "burgers": true, "burger": true, "wings": true,
	"pasta": true, "entrees": true, "dinners": true, "desserts": true,
	"beverages": true, "drinks": true, "seafood": true, "specials": true,
	"toppings": true, "extras": true,
}

// IsKnownSectionHeading reports whether text names a real menu section.
// Trailing OCR punctuation is stripped before matching; "BUILD YOUR OWN
// BURGER!" and "WRAPS CITY_" both qualify, "FRENCH FRIES" does not.
func IsKnownSectionHeading(text string) bool {
	cleaned := strings.ToLower(strings.TrimSpace(text))
	cleaned = strings.TrimRight(cleaned, "_!.:;- ")
	if cleaned == "" {
		return false
	}
	if sectionPhrases[cleaned] {
		return true
	}
	words := strings.Fields(cleaned)
	if len(words) == 0 || len(words) > 5 {
		return false
	}
	return sectionKeywords[words[0]] || sectionKeywords[words[len(words)-1]]
}

// HeadingPhrases returns a copy of the full-phrase section vocabulary.
func HeadingPhrases() []string {
	out := make([]string, 0, len(sectionPhrases))
	for p := range sectionPhrases {
		out = append(out, p)
	}
	return out
}
