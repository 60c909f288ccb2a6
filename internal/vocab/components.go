package vocab

import "strings"

// Ingredient vocabularies for component extraction. Matching is lowercase
// and whole-phrase.

var toppings = map[string]bool{
	"pepperoni": true, "sausage": true, "mushrooms": true, "mushroom": true,
	"onions": true, "onion": true, "peppers": true, "green peppers": true,
	"banana peppers": true, "bacon": true, "ham": true, "salami": true,
	"olives": true, "black olives": true, "green olives": true,
	"pineapple": true, "tomatoes": true, "tomato": true, "spinach": true,
	"lettuce": true, "pickles": true, "jalapenos": true, "anchovies": true,
	"cheese": true, "extra cheese": true, "mozzarella": true,
	"provolone": true, "cheddar": true, "feta": true, "parmesan": true,
	"swiss": true, "american cheese": true, "chicken": true,
	"grilled chicken": true, "beef": true, "ground beef": true, "steak": true,
	"meatballs": true, "meatball": true, "garlic": true, "basil": true,
	"broccoli": true, "artichokes": true, "artichoke": true, "eggplant": true,
	"zucchini": true, "cucumbers": true, "cucumber": true, "avocado": true,
	"sprouts": true, "croutons": true, "egg": true, "turkey": true,
	"tuna": true, "shrimp": true, "gyro meat": true,
}

var sauces = []string{
	"marinara", "alfredo", "pesto", "bbq", "buffalo", "ranch",
	"blue cheese", "garlic sauce", "olive oil", "mayo", "mayonnaise",
	"mustard", "honey mustard", "tzatziki", "hot sauce", "teriyaki",
	"sweet chili", "red sauce", "white sauce", "tomato sauce",
}

var preparations = map[string]bool{
	"grilled": true, "fried": true, "crispy": true, "breaded": true,
	"baked": true, "roasted": true, "smoked": true, "blackened": true,
	"sauteed": true, "steamed": true, "toasted": true, "charbroiled": true,
	"deep fried": true, "hand breaded": true,
}

var flavors = map[string]bool{
	"mild": true, "medium": true, "hot": true, "extra hot": true,
	"plain": true, "bbq": true, "honey bbq": true, "garlic parmesan": true,
	"teriyaki": true, "lemon pepper": true, "cajun": true,
	"sweet chili": true, "buffalo": true, "honey garlic": true,
}

// IsTopping reports whether a phrase names a known topping.
func IsTopping(phrase string) bool {
	return toppings[strings.ToLower(strings.TrimSpace(phrase))]
}

// MatchSauce returns the canonical sauce named inside the phrase, or "".
// "Creamy Alfredo Sauce" matches "alfredo". Longer sauce names are tried
// first so "honey mustard" wins over "mustard".
func MatchSauce(phrase string) string {
	p := strings.ToLower(strings.TrimSpace(phrase))
	if p == "" {
		return ""
	}
	best := ""
	for _, s := range sauces {
		if containsPhrase(p, s) && len(s) > len(best) {
			best = s
		}
	}
	return best
}

// MatchPreparation returns the preparation word the phrase starts with, or "".
func MatchPreparation(phrase string) string {
	p := strings.ToLower(strings.TrimSpace(phrase))
	for prep := range preparations {
		if p == prep || strings.HasPrefix(p, prep+" ") {
			return prep
		}
	}
	return ""
}

// IsFlavor reports whether a phrase names a known flavor option.
func IsFlavor(phrase string) bool {
	return flavors[strings.ToLower(strings.TrimSpace(phrase))]
}

// IsKnownWord reports whether the phrase appears in any food vocabulary.
// The line cleaner uses this to protect real words from noise stripping.
func IsKnownWord(phrase string) bool {
	p := strings.ToLower(strings.TrimSpace(phrase))
	if toppings[p] || preparations[p] || flavors[p] || comboFoods[p] {
		return true
	}
	for _, s := range sauces {
		if p == s {
			return true
		}
	}
	return false
}

// containsPhrase reports whether phrase appears in text on word boundaries.
func containsPhrase(text, phrase string) bool {
	idx := strings.Index(text, phrase)
	for idx >= 0 {
		leftOK := idx == 0 || !isLetter(text[idx-1])
		right := idx + len(phrase)
		rightOK := right == len(text) || !isLetter(text[right])
		if leftOK && rightOK {
			return true
		}
		next := strings.Index(text[idx+1:], phrase)
		if next < 0 {
			return false
		}
		idx += 1 + next
	}
	return false
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
