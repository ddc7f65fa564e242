package alternatives

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtractVersion covers the path layouts update-alternatives reports
// for interpreter binaries.
func TestExtractVersion(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"binary suffix", "/usr/bin/php8.3", "8.3"},
		{"older binary", "/usr/bin/php7.4", "7.4"},
		{"directory segment", "/usr/lib/php/8.2/bin/php", "8.2"},
		{"no version", "/usr/bin/php", ""},
		{"unrelated path", "/usr/bin/python3.11", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractVersion(tt.path))
		})
	}
}

// TestBuildVersions verifies label extraction, sorting, active flagging,
// and dropping of unrecognizable paths.
func TestBuildVersions(t *testing.T) {
	paths := []string{
		"/usr/bin/php8.3",
		"/usr/bin/php7.4",
		"/usr/bin/php8.1",
		"/usr/bin/php", // no label — dropped
	}

	versions := BuildVersions(paths, "/usr/bin/php8.1")
	require.Len(t, versions, 3)

	assert.Equal(t, "7.4", versions[0].Label)
	assert.Equal(t, "8.1", versions[1].Label)
	assert.Equal(t, "8.3", versions[2].Label)

	assert.False(t, versions[0].Active)
	assert.True(t, versions[1].Active)
	assert.False(t, versions[2].Active)
}

// TestParseActiveValue parses the Value: line out of real-shaped
// `update-alternatives --query` output.
func TestParseActiveValue(t *testing.T) {
	output := `Name: php
Link: /usr/bin/php
Status: manual
Best: /usr/bin/php8.3
Value: /usr/bin/php8.1

Alternative: /usr/bin/php8.1
Priority: 81

Alternative: /usr/bin/php8.3
Priority: 83
`
	assert.Equal(t, "/usr/bin/php8.1", ParseActiveValue(output))
	assert.Empty(t, ParseActiveValue("Status: auto\n"))
}

// TestFind checks label lookup against the built version list.
func TestFind(t *testing.T) {
	versions := BuildVersions([]string{"/usr/bin/php8.3", "/usr/bin/php8.1"}, "/usr/bin/php8.3")

	found := Find(versions, "8.1")
	require.NotNil(t, found)
	assert.Equal(t, "/usr/bin/php8.1", found.Path)

	assert.Nil(t, Find(versions, "5.6"))
}
