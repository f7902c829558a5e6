package source

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/constkit/constkit/constclass"
	"github.com/constkit/constkit/naming"
)

// LoadOption adjusts how constant files load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	strict bool
	logger *slog.Logger
}

// WithStrictNames makes loading fail on keys that are not constant names
// instead of skipping them.
func WithStrictNames() LoadOption {
	return func(o *loadOptions) {
		o.strict = true
	}
}

// WithLogger sets the logger used to report skipped keys.
func WithLogger(logger *slog.Logger) LoadOption {
	return func(o *loadOptions) {
		o.logger = logger
	}
}

func newLoadOptions(opts []LoadOption) loadOptions {
	o := loadOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// Load reads one constant file into a class named name. The format comes
// from the path extension. Keys that are not constant names are skipped
// and logged at debug level; WithStrictNames turns them into errors.
func Load(name, path string, opts ...LoadOption) (*constclass.Class, error) {
	o := newLoadOptions(opts)

	consts, err := loadMap(path, o)
	if err != nil {
		return nil, err
	}
	return constclass.Declare(name, consts), nil
}

// Reload reads path and swaps its constants into c in one step, reporting
// what changed. The same key filtering as Load applies.
func Reload(c *constclass.Class, path string, opts ...LoadOption) (constclass.Changes, error) {
	o := newLoadOptions(opts)

	consts, err := loadMap(path, o)
	if err != nil {
		return constclass.Changes{}, err
	}
	return c.Replace(consts), nil
}

// loadMap reads, decodes, and name-filters one constant file.
func loadMap(path string, o loadOptions) (map[string]any, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read constants file: %w", err)
	}
	raw, err := DecodeBytes(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	consts := make(map[string]any, len(raw))
	for k, v := range raw {
		if err := naming.Check(k); err != nil {
			if o.strict {
				return nil, fmt.Errorf("%s: key %q: %w", path, k, err)
			}
			o.logger.Debug("Skipping non-constant key",
				"path", path,
				"key", k,
				"reason", err)
			continue
		}
		consts[k] = v
	}
	return consts, nil
}

// ClassNameFromPath derives a class name from a file path: the base name
// with the extension removed. "conf/colors.yaml" becomes "colors"; a bare
// ".env" file becomes "env".
func ClassNameFromPath(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" {
		name = strings.TrimPrefix(base, ".")
	}
	return name
}

// LoadGlob loads every file matching pattern, one class per file, named by
// ClassNameFromPath. Patterns use doublestar syntax, so "conf/**/*.yaml"
// matches recursively. Results are ordered by path.
func LoadGlob(pattern string, opts ...LoadOption) ([]*constclass.Class, error) {
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("expand pattern %q: %w", pattern, err)
	}
	sort.Strings(paths)

	classes := make([]*constclass.Class, 0, len(paths))
	for _, path := range paths {
		c, err := Load(ClassNameFromPath(path), path, opts...)
		if err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, nil
}
