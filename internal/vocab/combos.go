package vocab

import (
	"regexp"
	"strings"
)

// comboFoods are the side dishes that turn a "w/ X" mention into a combo
// variant rather than an ingredient.
var comboFoods = map[string]bool{
	"fries":        true,
	"french fries": true,
	"curly fries":  true,
	"chips":        true,
	"salad":        true,
	"side salad":   true,
	"soup":         true,
	"drink":        true,
	"soda":         true,
	"coleslaw":     true,
	"slaw":         true,
	"rice":         true,
	"beans":        true,
	"bread":        true,
	"garlic bread": true,
	"breadsticks":  true,
	"onion rings":  true,
	"wedges":       true,
	"tots":         true,
	"tater tots":   true,
}

var comboPatternRe = regexp.MustCompile(`(?i)\bw(?:/|ith)\s+([a-z][a-z ]{1,30})`)

// IsComboFood reports whether a phrase names a known combo side.
func IsComboFood(phrase string) bool {
	return comboFoods[strings.ToLower(strings.TrimSpace(phrase))]
}

// ExtractComboHints returns the combo sides mentioned after "w/" or "with"
// in the text, in source order.
func ExtractComboHints(text string) []string {
	var hints []string
	for _, m := range comboPatternRe.FindAllStringSubmatch(text, -1) {
		phrase := strings.ToLower(strings.TrimSpace(m[1]))
		// Longest matching prefix wins: "w/ fries and drink" hints "fries".
		words := strings.Fields(phrase)
		for n := len(words); n > 0; n-- {
			candidate := strings.Join(words[:n], " ")
			if comboFoods[candidate] {
				hints = append(hints, candidate)
				break
			}
		}
	}
	return hints
}
