package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/constkit/constkit/constclass"
)

// Marshal renders the class constants as format. YAML and JSON keep value
// types; dotenv stringifies every value, so a round trip through dotenv
// loses type information.
func Marshal(c *constclass.Class, format Format) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("class is nil")
	}
	m := c.AsMap()

	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		return data, nil

	case FormatJSON:
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal json: %w", err)
		}
		return append(data, '\n'), nil

	case FormatDotenv:
		pairs := make(map[string]string, len(m))
		for k, v := range m {
			pairs[k] = fmt.Sprintf("%v", v)
		}
		out, err := godotenv.Marshal(pairs)
		if err != nil {
			return nil, fmt.Errorf("marshal dotenv: %w", err)
		}
		return []byte(out + "\n"), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// WriteFile renders the class in the format named by the path extension and
// writes it out, creating parent directories as needed.
func WriteFile(c *constclass.Class, path string) error {
	format, err := DetectFormat(path)
	if err != nil {
		return err
	}
	data, err := Marshal(c, format)
	if err != nil {
		return err
	}

	// Ensure parent directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create constants directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write constants file: %w", err)
	}
	return nil
}
