package vocab

import "strings"

// nameAbbreviations are short all-caps words that open an item name
// without being the whole name ("BBQ Chicken Pizza"). A closed list keeps
// the guard conservative; extend via LoadOverrides.
var nameAbbreviations = map[string]bool{
	"bbq": true,
	"blt": true,
	"pbj": true,
	"ipa": true,
}

// IsNameAbbreviation reports whether tok is a known name-opening
// abbreviation.
func IsNameAbbreviation(tok string) bool {
	return nameAbbreviations[strings.ToLower(strings.Trim(tok, " .,:;"))]
}
