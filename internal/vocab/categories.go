package vocab

import "strings"

// categoryKeywords map a category class to the name words that signal it.
// The lists are deliberately loose; they feed heuristic scoring, not
// hard classification.
var categoryKeywords = map[string][]string{
	"pizza": {
		"pizza", "pie", "sicilian", "neapolitan", "margherita", "slice",
	},
	"calzones": {
		"calzone", "stromboli", "stuffed", "folded",
	},
	"sandwiches": {
		"sub", "hoagie", "grinder", "sandwich", "wrap", "panini", "gyro",
	},
	"burgers": {
		"burger", "cheeseburger", "patty",
	},
	"wings": {
		"wing", "wings", "buffalo", "boneless", "drumette",
	},
	"salads": {
		"salad", "garden", "caesar", "antipasto",
	},
	"pasta": {
		"pasta", "spaghetti", "ziti", "penne", "lasagna", "ravioli",
		"alfredo", "carbonara",
	},
	"sides": {
		"fries", "onion rings", "mozzarella sticks", "appetizer",
		"garlic bread", "breadsticks", "poppers",
	},
	"desserts": {
		"dessert", "brownie", "cookie", "cheesecake", "tiramisu",
		"cannoli", "ice cream", "cinnamon",
	},
	"beverages": {
		"soda", "pop", "drink", "juice", "tea", "coffee", "coke",
		"pepsi", "sprite", "root beer", "bottle", "liter",
	},
}

// categoryPriceBands are rough typical price ranges per class, in cents.
var categoryPriceBands = map[string][2]int{
	"pizza":      {799, 3999},
	"calzones":   {899, 2499},
	"sandwiches": {699, 1999},
	"burgers":    {699, 1999},
	"wings":      {699, 2499},
	"salads":     {499, 1599},
	"pasta":      {899, 2499},
	"sides":      {299, 1499},
	"desserts":   {299, 1499},
	"beverages":  {99, 799},
}

// categoryClassAliases resolve heading words to a class key, so both
// "SUBS" and "CLUB SANDWICHES" land on "sandwiches".
var categoryClassAliases = map[string]string{
	"pizza": "pizza", "pizzas": "pizza",
	"calzone": "calzones", "calzones": "calzones", "stromboli": "calzones",
	"sub": "sandwiches", "subs": "sandwiches", "hoagies": "sandwiches",
	"sandwich": "sandwiches", "sandwiches": "sandwiches", "wraps": "sandwiches",
	"burger": "burgers", "burgers": "burgers",
	"wing": "wings", "wings": "wings",
	"salad": "salads", "salads": "salads",
	"pasta": "pasta",
	"side":  "sides", "sides": "sides", "appetizer": "sides", "appetizers": "sides",
	"dessert": "desserts", "desserts": "desserts",
	"beverage": "beverages", "beverages": "beverages", "drinks": "beverages",
}

// CategoryClass resolves a raw category heading to its class key:
// "GOURMET PIZZA" becomes "pizza". Returns "" for headings outside the
// class vocabulary.
func CategoryClass(category string) string {
	for _, w := range strings.Fields(strings.ToLower(category)) {
		w = strings.Trim(w, ".,!:;_-")
		if class, ok := categoryClassAliases[w]; ok {
			return class
		}
	}
	return ""
}

// CategoryKeywordMatches counts the keywords of the category's class that
// appear in the name. Zero for names or categories outside the vocabulary.
func CategoryKeywordMatches(name, category string) int {
	class := CategoryClass(category)
	if class == "" {
		return 0
	}
	low := strings.ToLower(name)
	n := 0
	for _, kw := range categoryKeywords[class] {
		if containsPhrase(low, kw) {
			n++
		}
	}
	return n
}

// InCategoryPriceBand reports whether a price sits inside the category's
// typical range. known is false when the category has no band.
func InCategoryPriceBand(cents int, category string) (fits, known bool) {
	class := CategoryClass(category)
	band, ok := categoryPriceBands[class]
	if !ok || cents <= 0 {
		return false, ok
	}
	return cents >= band[0] && cents <= band[1], true
}
