package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractorFindsAndNormalizesSkills(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			"english cv",
			"Backend developer: Python, Django, PostgreSQL and Docker. Some React on the side.",
			[]string{"django", "docker", "postgresql", "python", "react"},
		},
		{
			"russian transliteration normalized",
			"Опыт: питон, джанго, докер и немного реакт",
			[]string{"django", "docker", "python", "react"},
		},
		{
			"aliases collapse to canonical",
			"golang, k8s, js",
			[]string{"go", "javascript", "kubernetes"},
		},
		{
			"symbol-bearing names",
			"Worked with C++ and next.js daily",
			[]string{"c++", "javascript", "next.js"}, // .js suffix also reads as js
		},
		{
			"empty text",
			"",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Extract(tt.text))
		})
	}
}

func TestExtractorWholeWordOnly(t *testing.T) {
	e := NewExtractor()
	// "got" must not match "go", "gossip" must not match either.
	got := e.Extract("I got into gossip blogs")
	assert.NotContains(t, got, "go")
}

func TestExtractorDeduplicatesAliases(t *testing.T) {
	e := NewExtractor()
	got := e.Extract("python developer, питон, piton")
	assert.Equal(t, []string{"python"}, got)
}

func TestExperienceYears(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"5 years of backend work", 5},
		{"3+ yrs in data", 3},
		{"опыт 7 лет", 7},
		{"2 года разработки", 2},
		{"tajriba: 4 yil", 4},
		{"worked for 100 years", 0}, // implausible values ignored
		{"no numbers here", 0},
		{"2 years then 6 years", 6}, // largest plausible wins
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ExperienceYears(tt.text))
		})
	}
}
