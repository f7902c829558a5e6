package naming

import (
	"errors"
	"unicode"
)

// Rule violations reported by Check, in the order the rules are applied.
var (
	// ErrEmpty means the name has no characters.
	ErrEmpty = errors.New("name is empty")
	// ErrNotIdentifier means the name does not parse as an identifier.
	ErrNotIdentifier = errors.New("not a valid identifier")
	// ErrUnderscorePrefix means the name starts with an underscore.
	ErrUnderscorePrefix = errors.New("starts with an underscore")
	// ErrNotUppercase means the name contains a lowercase or titlecase letter.
	ErrNotUppercase = errors.New("not fully uppercase")
	// ErrNoUppercase means no character in the name carries case at all.
	ErrNoUppercase = errors.New("contains no uppercase letter")
)

// IsIdentifier reports whether s parses as an identifier: the first rune is
// a Unicode letter or underscore, and every later rune is a Unicode letter,
// a Unicode digit, or an underscore.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// IsConstName reports whether name satisfies every constant naming rule.
func IsConstName(name string) bool {
	return Check(name) == nil
}

// Check reports the first constant naming rule that name violates, or nil
// when name is a constant name. The returned errors are the package rule
// sentinels and carry no name context; callers wanting context wrap them.
func Check(name string) error {
	if name == "" {
		return ErrEmpty
	}
	if !IsIdentifier(name) {
		return ErrNotIdentifier
	}
	if name[0] == '_' {
		return ErrUnderscorePrefix
	}

	upper := false
	for _, r := range name {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return ErrNotUppercase
		}
		if unicode.IsUpper(r) {
			upper = true
		}
	}
	if !upper {
		return ErrNoUppercase
	}
	return nil
}
