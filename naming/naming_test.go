package naming

import (
	"errors"
	"testing"
)

func TestIsConstName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "simple uppercase",
			input:    "CONST",
			expected: true,
		},
		{
			name:     "uppercase with digits",
			input:    "HTTP2",
			expected: true,
		},
		{
			name:     "uppercase with underscores",
			input:    "MAX_RETRY_COUNT",
			expected: true,
		},
		{
			name:     "single letter",
			input:    "A",
			expected: true,
		},
		{
			name:     "trailing underscore",
			input:    "TIMEOUT_",
			expected: true,
		},
		{
			name:     "accented uppercase",
			input:    "CAFÉ",
			expected: true,
		},
		{
			name:     "greek uppercase",
			input:    "ΔΕΛΤΑ",
			expected: true,
		},
		{
			name:     "mixed case",
			input:    "Const",
			expected: false,
		},
		{
			name:     "one lowercase letter",
			input:    "CONSTANt",
			expected: false,
		},
		{
			name:     "all lowercase",
			input:    "const",
			expected: false,
		},
		{
			name:     "leading underscore",
			input:    "_CONST",
			expected: false,
		},
		{
			name:     "leading digit",
			input:    "2FA",
			expected: false,
		},
		{
			name:     "hyphen",
			input:    "MAX-RETRIES",
			expected: false,
		},
		{
			name:     "space",
			input:    "MAX RETRIES",
			expected: false,
		},
		{
			name:     "dotted",
			input:    "NET.PORT",
			expected: false,
		},
		{
			name:     "empty",
			input:    "",
			expected: false,
		},
		{
			name:     "only underscores",
			input:    "_",
			expected: false,
		},
		{
			name:     "underscore and digit after letter",
			input:    "X_1",
			expected: true,
		},
		{
			name:     "caseless ideographs",
			input:    "定数",
			expected: false,
		},
		{
			name:     "ideographs with one uppercase",
			input:    "X定数",
			expected: true,
		},
		{
			name:     "titlecase letter",
			input:    "ǅONE",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsConstName(tt.input)
			if got != tt.expected {
				t.Errorf("IsConstName(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"x", true},
		{"_x", true},
		{"_", true},
		{"x1", true},
		{"HTTP2", true},
		{"snake_case", true},
		{"λ", true},
		{"名前", true},
		{"", false},
		{"1x", false},
		{"x-y", false},
		{"x y", false},
		{"x.y", false},
		{"x!", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := IsIdentifier(tt.input)
			if got != tt.expected {
				t.Errorf("IsIdentifier(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "valid name",
			input:   "RETRIES",
			wantErr: nil,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: ErrEmpty,
		},
		{
			name:    "bad identifier",
			input:   "A-B",
			wantErr: ErrNotIdentifier,
		},
		{
			name:    "underscore prefix",
			input:   "_HIDDEN",
			wantErr: ErrUnderscorePrefix,
		},
		{
			name:    "lowercase letter",
			input:   "Mixed",
			wantErr: ErrNotUppercase,
		},
		{
			name:    "no cased letters",
			input:   "数",
			wantErr: ErrNoUppercase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Check(%q) = %v, want nil", tt.input, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Check(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestCheckAgreesWithIsConstName(t *testing.T) {
	inputs := []string{
		"CONST", "Const", "const", "_CONST", "2FA", "A", "", "MAX_RETRIES",
		"X_1", "定数", "CAFÉ",
	}

	for _, input := range inputs {
		if got, want := IsConstName(input), Check(input) == nil; got != want {
			t.Errorf("IsConstName(%q) = %v but Check(%q) == nil is %v", input, got, input, want)
		}
	}
}
