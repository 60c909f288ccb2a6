// Package ingest loads OCR output into the line model the pipeline
// consumes. Input is either plain text with one OCR line per text line, or
// a JSON export from an OCR service.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/servline/menuscan/internal/types"
)

// ReadFile loads OCR lines from a file, dispatching on extension: .json
// parses as a JSON export, everything else reads as plain text.
func ReadFile(path string) ([]types.Line, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FromJSON(data)
	}
	return FromText(string(data)), nil
}

// FromText splits plain text into lines, keeping the source line number as
// the index. Blank lines are dropped; they carry no OCR content.
func FromText(text string) []types.Line {
	var lines []types.Line
	for i, raw := range strings.Split(text, "\n") {
		raw = strings.TrimRight(raw, " \t\r")
		if strings.TrimSpace(raw) == "" {
			continue
		}
		lines = append(lines, types.Line{Index: i, Raw: raw})
	}
	return lines
}

// FromJSON parses an OCR JSON export. Accepted shapes: a top-level array
// of strings, an array of objects with a raw/text/line field (and an
// optional index), or an object wrapping one of those under "lines".
func FromJSON(data []byte) ([]types.Line, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON input")
	}
	root := gjson.ParseBytes(data)
	if root.IsObject() {
		wrapped := root.Get("lines")
		if !wrapped.Exists() {
			return nil, fmt.Errorf("JSON object has no \"lines\" field")
		}
		root = wrapped
	}
	if !root.IsArray() {
		return nil, fmt.Errorf("JSON input is not an array of lines")
	}

	var lines []types.Line
	position := 0
	var parseErr error
	root.ForEach(func(_, value gjson.Result) bool {
		switch value.Type {
		case gjson.String:
			if strings.TrimSpace(value.String()) != "" {
				lines = append(lines, types.Line{Index: position, Raw: value.String()})
			}
		case gjson.JSON:
			raw := firstString(value, "raw", "text", "line")
			if strings.TrimSpace(raw) == "" {
				break
			}
			index := position
			if idx := value.Get("index"); idx.Exists() {
				index = int(idx.Int())
			}
			lines = append(lines, types.Line{Index: index, Raw: raw})
		default:
			parseErr = fmt.Errorf("unsupported line element at position %d", position)
			return false
		}
		position++
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return lines, nil
}

func firstString(value gjson.Result, keys ...string) string {
	for _, k := range keys {
		if v := value.Get(k); v.Type == gjson.String {
			return v.String()
		}
	}
	return ""
}
