package source

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a constant file format.
type Format string

// Supported formats.
const (
	FormatYAML   Format = "yaml"
	FormatJSON   Format = "json"
	FormatDotenv Format = "dotenv"
)

// ErrUnknownFormat is returned for extensions no format claims.
var ErrUnknownFormat = errors.New("unknown constant file format")

// IsValid reports whether f is a supported format.
func (f Format) IsValid() bool {
	switch f {
	case FormatYAML, FormatJSON, FormatDotenv:
		return true
	}
	return false
}

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// DetectFormat maps a file path to its format by extension. The comparison
// is case insensitive.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".env":
		return FormatDotenv, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}
