package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"colors.yaml", FormatYAML},
		{"colors.yml", FormatYAML},
		{"colors.json", FormatJSON},
		{"colors.env", FormatDotenv},
		{".env", FormatDotenv},
		{"conf/COLORS.YAML", FormatYAML},
		{"/abs/path/limits.Json", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat_Unknown(t *testing.T) {
	for _, path := range []string{"colors.toml", "noextension", "archive.tar.gz", ""} {
		t.Run(path, func(t *testing.T) {
			_, err := DetectFormat(path)
			assert.ErrorIs(t, err, ErrUnknownFormat)
		})
	}
}

func TestFormatIsValid(t *testing.T) {
	assert.True(t, FormatYAML.IsValid())
	assert.True(t, FormatJSON.IsValid())
	assert.True(t, FormatDotenv.IsValid())
	assert.False(t, Format("toml").IsValid())
	assert.False(t, Format("").IsValid())
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "dotenv", FormatDotenv.String())
}
