// Package naming defines the rules a constant name must satisfy.
//
// A constant name is a valid identifier written entirely in uppercase:
//
//   - it parses as an identifier (a Unicode letter or underscore followed by
//     Unicode letters, digits, or underscores)
//   - it contains at least one uppercase letter
//   - it contains no lowercase or titlecase letter
//   - it does not start with an underscore
//
// Underscores and digits are allowed after the first character, so MAX_RETRIES
// and HTTP2 are constant names while maxRetries, _INTERNAL, and 2FA are not.
//
// # Caseless names
//
// Uppercase is a property of cased characters. A name made up only of caseless
// characters, such as digits joined by underscores or ideographic scripts,
// carries no case and is therefore not a constant name. At least one character
// must be an uppercase letter.
//
// # Usage
//
//	import "github.com/constkit/constkit/naming"
//
//	naming.IsConstName("MAX_RETRIES") // true
//	naming.IsConstName("MaxRetries")  // false
//
//	// Check reports which rule failed:
//	if err := naming.Check(key); err != nil {
//	    return fmt.Errorf("key %q: %w", key, err)
//	}
package naming
