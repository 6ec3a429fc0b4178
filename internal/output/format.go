package output

import (
	"fmt"
	"strings"
)

// OutputFormat specifies how a plan listing is printed.
type OutputFormat string

const (
	// FormatText prints one "Would create ..." line per path.
	FormatText OutputFormat = "text"

	// FormatTable prints a bordered table.
	FormatTable OutputFormat = "table"

	// FormatJSON prints a JSON array.
	FormatJSON OutputFormat = "json"

	// FormatYAML prints a YAML sequence.
	FormatYAML OutputFormat = "yaml"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// Valid checks if the output format is known.
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatText, FormatTable, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses a format name. The empty string means text.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// ValidFormats returns the valid output format names.
func ValidFormats() []string {
	return []string{"text", "table", "json", "yaml"}
}
