package docserv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidTitle(t *testing.T) {
	tests := []struct {
		title string
		valid bool
	}{
		{"index", true},
		{"Getting_Started-2", true},
		{"_", true},
		{"-", true},
		{"ABCxyz0189", true},
		{"", false},
		{"a b", false},
		{"a.b", false},
		{"../secret", false},
		{"a/b", false},
		{`a\b`, false},
		{"문서", false},
		{"café", false},
		{"tab\t", false},
		{"line\n", false},
		{"index.md", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, IsValidTitle(tt.title), "IsValidTitle(%q)", tt.title)
	}
}

func TestIsValidTitleEveryAllowedByte(t *testing.T) {
	const allowed = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_-"
	assert.True(t, IsValidTitle(allowed))
	for b := 0; b < 128; b++ {
		s := string(rune(b))
		assert.Equal(t, strings.Contains(allowed, s), IsValidTitle(s), "byte %#x", b)
	}
}
