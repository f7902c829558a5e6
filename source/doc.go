// Package source loads constant classes from files and keeps them in sync.
//
// Constants often live in data files next to the code that uses them. This
// package reads those files into constclass.Class values, writes classes
// back out, and can watch a backing file so a class follows edits at
// runtime.
//
// # Formats
//
// Three formats are supported, detected by file extension:
//
//   - YAML (.yaml, .yml)
//   - JSON (.json)
//   - dotenv (.env)
//
// YAML and JSON files must hold a mapping at the top level; values keep
// their decoded types. Dotenv values are always strings.
//
// # Loading
//
// Load reads one file into a class. Keys that are not constant names are
// skipped and logged at debug level; WithStrictNames turns them into
// errors instead:
//
//	colors, err := source.Load("colors", "conf/colors.yaml")
//	limits, err := source.Load("limits", "conf/limits.env",
//	    source.WithStrictNames())
//
// LoadGlob expands a doublestar pattern and loads one class per file,
// named after the file:
//
//	classes, err := source.LoadGlob("conf/**/*.yaml")
//
// # Writing
//
// Marshal renders a class in any supported format; WriteFile picks the
// format from the path and creates parent directories:
//
//	err := source.WriteFile(colors, "conf/colors.yaml")
//
// # Watching
//
// Watcher keeps a class synchronized with its backing file, debouncing
// bursts of filesystem events and reporting each reload on a channel:
//
//	w, err := source.NewWatcher(colors, "conf/colors.yaml", source.WatcherConfig{})
//	if err != nil {
//	    return err
//	}
//	if err := w.Start(ctx); err != nil {
//	    return err
//	}
//	for ev := range w.Events() {
//	    log.Printf("%s: %v", ev.Op, ev.Changes)
//	}
package source
