package source

import (
	"encoding/json"
	"fmt"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DecodeBytes parses data as format into a flat name-to-value map. The top
// level of the document must be a mapping. YAML and JSON values keep their
// decoded types; dotenv values are always strings.
func DecodeBytes(data []byte, format Format) (map[string]any, error) {
	switch format {
	case FormatYAML:
		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		if raw == nil {
			raw = make(map[string]any)
		}
		return raw, nil

	case FormatJSON:
		var raw map[string]any
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		if raw == nil {
			raw = make(map[string]any)
		}
		return raw, nil

	case FormatDotenv:
		pairs, err := godotenv.UnmarshalBytes(data)
		if err != nil {
			return nil, fmt.Errorf("parse dotenv: %w", err)
		}
		raw := make(map[string]any, len(pairs))
		for k, v := range pairs {
			raw[k] = v
		}
		return raw, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
