package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{"empty list starts at one", nil, "EMP001"},
		{"increments the max suffix", []string{"EMP001", "EMP007", "EMP003"}, "EMP008"},
		{"ignores other prefixes", []string{"ANM050", "EMP002"}, "EMP003"},
		{"ignores non numeric suffixes", []string{"EMP00X", "EMP-9", "EMP004"}, "EMP005"},
		{"grows past the width", []string{"EMP999"}, "EMP1000"},
		{"prefix match is case insensitive", []string{"emp010"}, "EMP011"},
		{"bare prefix is ignored", []string{"EMP"}, "EMP001"},
		{"ignores suffixes too long to increment", []string{"EMP001", "EMP9223372036854775807"}, "EMP002"},
		{"longest accepted suffix", []string{"EMP999999999"}, "EMP1000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Next("EMP", DefaultWidth, tt.existing))
		})
	}
}

func TestNext_DefaultWidthWhenInvalid(t *testing.T) {
	assert.Equal(t, "ANM001", Next("ANM", 0, nil))
	assert.Equal(t, "ANM00001", Next("ANM", 5, nil))
}

func TestSuffix(t *testing.T) {
	n, ok := Suffix("ANM", " ANM042 ")
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	_, ok = Suffix("ANM", "EMP042")
	assert.False(t, ok)

	_, ok = Suffix("ANM", "ANM0000000001")
	assert.False(t, ok, "more than MaxDigits digits")
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "ANM001", Normalize(" anm001 "))
	assert.Equal(t, "", Normalize("  "))
}
