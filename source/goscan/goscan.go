// Package goscan extracts constant declarations from Go source files.
//
// Scanning is a bootstrap aid: existing Go code that already declares
// ALL_CAPS constants can seed a constclass.Class without restating the
// values. Only declarations with constant names and statically resolvable
// values are collected; basic literals, the predeclared booleans, and
// negated numeric literals resolve, while iota chains and expressions are
// skipped.
package goscan

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/constkit/constkit/constclass"
	"github.com/constkit/constkit/naming"
)

// ScanFile collects the top-level constant declarations in one Go file, in
// source order.
func ScanFile(path string) ([]constclass.Entry, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return ScanSource(path, src)
}

// ScanSource is ScanFile over in-memory source. The filename only labels
// parse errors.
func ScanSource(filename string, src []byte) ([]constclass.Entry, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parse file: %w", err)
	}

	var entries []constclass.Entry
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.CONST {
			continue
		}
		for _, spec := range gen.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok || len(vs.Values) != len(vs.Names) {
				// Specs without their own values repeat the previous
				// expression, which usually means an iota chain.
				continue
			}
			for i, name := range vs.Names {
				if !naming.IsConstName(name.Name) {
					continue
				}
				value, ok := literalValue(vs.Values[i])
				if !ok {
					continue
				}
				entries = append(entries, constclass.Entry{Name: name.Name, Value: value})
			}
		}
	}
	return entries, nil
}

// ScanDir scans every Go file directly inside dir, skipping test files.
// Entries are grouped by file in directory order.
func ScanDir(dir string) ([]constclass.Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var entries []constclass.Entry
	for _, de := range dirEntries {
		name := de.Name()
		if de.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		fileEntries, err := ScanFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		entries = append(entries, fileEntries...)
	}
	return entries, nil
}

// Load scans path, a Go file or a directory of Go files, into a class
// named name. Entries register in sorted name order, as in
// constclass.Declare; on duplicate names the last scanned value wins.
func Load(name, path string) (*constclass.Class, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat: %w", err)
	}

	var entries []constclass.Entry
	if info.IsDir() {
		entries, err = ScanDir(path)
	} else {
		entries, err = ScanFile(path)
	}
	if err != nil {
		return nil, err
	}

	consts := make(map[string]any, len(entries))
	for _, e := range entries {
		consts[e.Name] = e.Value
	}
	return constclass.Declare(name, consts), nil
}

// literalValue resolves an expression when it is a basic literal, a negated
// or explicitly positive numeric literal, or a predeclared boolean.
func literalValue(expr ast.Expr) (any, bool) {
	switch e := expr.(type) {
	case *ast.BasicLit:
		return basicLitValue(e, false)

	case *ast.UnaryExpr:
		lit, ok := e.X.(*ast.BasicLit)
		if !ok || (e.Op != token.SUB && e.Op != token.ADD) {
			return nil, false
		}
		if lit.Kind != token.INT && lit.Kind != token.FLOAT {
			return nil, false
		}
		return basicLitValue(lit, e.Op == token.SUB)

	case *ast.Ident:
		switch e.Name {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return nil, false
}

func basicLitValue(lit *ast.BasicLit, negate bool) (any, bool) {
	switch lit.Kind {
	case token.INT:
		n, err := strconv.ParseInt(lit.Value, 0, 64)
		if err != nil {
			return nil, false
		}
		if negate {
			n = -n
		}
		return n, true

	case token.FLOAT:
		f, err := strconv.ParseFloat(lit.Value, 64)
		if err != nil {
			return nil, false
		}
		if negate {
			f = -f
		}
		return f, true

	case token.STRING:
		s, err := strconv.Unquote(lit.Value)
		if err != nil {
			return nil, false
		}
		return s, true

	case token.CHAR:
		s, err := strconv.Unquote(lit.Value)
		if err != nil || s == "" {
			return nil, false
		}
		return []rune(s)[0], true
	}
	return nil, false
}
