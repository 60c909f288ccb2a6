// Package types defines the core data model shared by every pipeline stage:
// raw OCR lines, their classifications, parsed items, price variants, and
// the document that flows through the pipeline.
package types

// LineType is the closed set of structural roles a raw OCR line can play.
type LineType string

const (
	LineMenuItem        LineType = "menu_item"
	LineHeading         LineType = "heading"
	LineDescriptionOnly LineType = "description_only"
	LineModifier        LineType = "modifier_line"
	LineSizeHeader      LineType = "size_header"
	LineToppingList     LineType = "topping_list"
	LineInfo            LineType = "info_line"
	LinePriceOnly       LineType = "price_only"
	LineMultiColumn     LineType = "multi_column"
	LineUnknown         LineType = "unknown"
)

// Valid reports whether t is one of the defined line types.
func (t LineType) Valid() bool {
	switch t {
	case LineMenuItem, LineHeading, LineDescriptionOnly, LineModifier,
		LineSizeHeader, LineToppingList, LineInfo, LinePriceOnly,
		LineMultiColumn, LineUnknown:
		return true
	}
	return false
}

// Line is a single raw OCR line in page order.
type Line struct {
	Index int    `json:"index"`
	Raw   string `json:"raw"`
}

// Classification is the per-line result of the classify and resolve stages.
// OriginalType preserves the pre-resolution type so reclassification is
// auditable. Columns holds the segments of a multi-column line.
type Classification struct {
	Index        int      `json:"index"`
	Raw          string   `json:"raw"`
	Cleaned      string   `json:"cleaned"`
	Type         LineType `json:"type"`
	OriginalType LineType `json:"original_type"`
	Confidence   float64  `json:"confidence"`
	Reason       string   `json:"reason,omitempty"`
	Columns      []string `json:"columns,omitempty"`
}
