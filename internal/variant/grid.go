// Package variant builds price variants for menu items: size-grid context
// tracking, variant construction from grids and inline mentions, per-item
// price validation, and per-variant confidence scoring.
package variant

import (
	"regexp"
	"strings"

	"github.com/servline/menuscan/internal/types"
	"github.com/servline/menuscan/internal/vocab"
)

// OCR often drops the space after an inch mark (single or doubled
// apostrophe), gluing the size to its qualifier: `10"Mini`.
var attachedInchRe = regexp.MustCompile(`^(\d{1,2}(?:"|''))(\S+)$`)

// gridWords tokenizes a header line, splitting glued inch-qualifier
// tokens back into their two words.
func gridWords(cleaned string) []string {
	var words []string
	for _, w := range strings.Fields(cleaned) {
		if m := attachedInchRe.FindStringSubmatch(w); m != nil {
			words = append(words, m[1], m[2])
			continue
		}
		words = append(words, w)
	}
	return words
}

// Grid is an active size-header context: the ordered column labels that
// price sequences on following item lines align to.
type Grid struct {
	SourceIndex int
	Columns     []string
}

// NormalizedColumn returns the canonical size for a grid column label.
// Qualified inch labels normalize to the inch token: `10" Mini` -> `10"`.
func NormalizedColumn(label string) string {
	if canon := vocab.NormalizeSizeToken(label); canon != "" {
		return canon
	}
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return ""
	}
	return vocab.NormalizeSizeToken(fields[0])
}

// ParseGridColumns tokenizes a size header line into ordered column
// labels. A numeric size followed by a qualifier word coalesces into one
// column (`10"` + `Mini` -> `10" Mini`); two-word size phrases collapse to
// their canonical form (`Family Size` -> `Family`).
func ParseGridColumns(cleaned string) []string {
	words := gridWords(cleaned)
	var cols []string
	for i := 0; i < len(words); i++ {
		w := words[i]

		if i+1 < len(words) {
			if canon := vocab.NormalizeSizeToken(w + " " + words[i+1]); canon != "" {
				cols = append(cols, canon)
				i++
				continue
			}
		}

		canon := vocab.NormalizeSizeToken(w)
		if canon == "" {
			continue
		}
		if strings.HasSuffix(canon, `"`) && i+1 < len(words) {
			next := words[i+1]
			if nc := vocab.NormalizeSizeToken(next); nc != "" && !strings.HasSuffix(nc, `"`) {
				cols = append(cols, canon+" "+next)
				i++
				continue
			}
		}
		cols = append(cols, w)
	}
	return cols
}

// Tracker carries the current grid context through a page walk. A size
// header opens a context; a known section heading closes it.
type Tracker struct {
	current *Grid
}

// Observe updates the tracker from one resolved classification.
func (t *Tracker) Observe(cls *types.Classification) {
	switch cls.Type {
	case types.LineSizeHeader:
		cols := ParseGridColumns(cls.Cleaned)
		if len(cols) >= 2 {
			t.current = &Grid{SourceIndex: cls.Index, Columns: cols}
		}
	case types.LineHeading:
		if vocab.IsKnownSectionHeading(cls.Cleaned) {
			t.current = nil
		}
	}
}

// Current returns the active grid, or nil when no size header applies.
func (t *Tracker) Current() *Grid {
	return t.current
}
