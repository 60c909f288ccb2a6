package grammar

import (
	"regexp"
	"strings"

	"github.com/servline/menuscan/internal/types"
	"github.com/servline/menuscan/internal/vocab"
)

var segmentSplitRe = regexp.MustCompile(`(?i)\s*(?:,|;|&|\band\b)\s*`)

// splitListSegments breaks a description into its list segments on commas,
// semicolons, ampersands, and "and".
func splitListSegments(s string) []string {
	parts := segmentSplitRe.Split(s, -1)
	out := parts[:0]
	for _, p := range parts {
		p = strings.Trim(p, " .")
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ExtractComponents pulls structured ingredients out of a description.
// Every extracted value appears verbatim (case-folded) in the source text;
// the extractor never invents components.
//
// Rules: a segment list made entirely of flavor words is a flavor-option
// list, not toppings. The first sauce mention fills Sauce and later sauces
// demote to toppings. A preparation word prefixing a segment is recorded
// once, with the remainder kept as a topping.
func ExtractComponents(description string) *types.Components {
	segments := splitListSegments(description)
	if len(segments) == 0 {
		return nil
	}

	if len(segments) >= 2 {
		allFlavors := true
		for _, seg := range segments {
			if !vocab.IsFlavor(seg) {
				allFlavors = false
				break
			}
		}
		if allFlavors {
			flavors := make([]string, len(segments))
			for i, seg := range segments {
				flavors[i] = strings.ToLower(seg)
			}
			return &types.Components{FlavorOptions: flavors}
		}
	}

	comp := &types.Components{}
	for _, seg := range segments {
		low := strings.ToLower(seg)

		if sauce := vocab.MatchSauce(seg); sauce != "" {
			if comp.Sauce == "" {
				comp.Sauce = sauce
				continue
			}
			comp.Toppings = append(comp.Toppings, sauce)
			continue
		}

		if prep := vocab.MatchPreparation(seg); prep != "" {
			if comp.Preparation == "" {
				comp.Preparation = prep
			}
			remainder := strings.TrimSpace(strings.TrimPrefix(low, prep))
			if remainder != "" {
				comp.Toppings = append(comp.Toppings, remainder)
			}
			continue
		}

		comp.Toppings = append(comp.Toppings, low)
	}

	if comp.Sauce == "" && comp.Preparation == "" &&
		len(comp.Toppings) == 0 && len(comp.FlavorOptions) == 0 {
		return nil
	}
	return comp
}
