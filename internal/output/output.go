// Package output renders analysis results in the configured CLI format.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Format defines the output format for CLI commands.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DefaultFormat is used when an unknown format is requested.
var DefaultFormat = FormatJSON

// globalFormat is set by the root command's --output flag.
var globalFormat = FormatJSON

// SetFormat sets the global output format.
func SetFormat(format string) {
	switch format {
	case "json":
		globalFormat = FormatJSON
	case "yaml":
		globalFormat = FormatYAML
	default:
		globalFormat = DefaultFormat
	}
}

// GetFormat returns the current global output format.
func GetFormat() Format {
	return globalFormat
}

// Write emits data to stdout in the configured format.
func Write(data any) error {
	return WriteTo(os.Stdout, globalFormat, data)
}

// WriteTo emits data to the given writer in the specified format.
func WriteTo(w io.Writer, format Format, data any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case FormatYAML:
		// Round-trip through JSON so yaml output uses the same field
		// names as the json tags.
		raw, err := json.Marshal(data)
		if err != nil {
			return err
		}
		var generic any
		if err := json.Unmarshal(raw, &generic); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(generic)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
