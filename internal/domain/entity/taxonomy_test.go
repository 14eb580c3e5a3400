package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEducationLevel_Valid(t *testing.T) {
	for _, level := range EducationLevels() {
		assert.True(t, level.Valid(), "level %s should be valid", level)
	}
	assert.False(t, EducationLevel("KINDERGARTEN").Valid())
	assert.False(t, EducationLevel("").Valid())
}

func TestEducationLevel_AllowsCategory(t *testing.T) {
	tests := []struct {
		name     string
		level    EducationLevel
		category string
		want     bool
	}{
		{
			name:     "primary mathematics allowed",
			level:    LevelPrimary,
			category: "Mathematics",
			want:     true,
		},
		{
			name:     "primary rejects advanced-only category",
			level:    LevelPrimary,
			category: "Combined Mathematics",
			want:     false,
		},
		{
			name:     "advanced level accepts science stream member",
			level:    LevelAdvanced,
			category: "Biology",
			want:     true,
		},
		{
			name:     "advanced level accepts commerce stream member",
			level:    LevelAdvanced,
			category: "Accounting",
			want:     true,
		},
		{
			name:     "advanced level accepts arts stream member",
			level:    LevelAdvanced,
			category: "Political Science",
			want:     true,
		},
		{
			name:     "advanced level rejects category outside every stream",
			level:    LevelAdvanced,
			category: "Environmental Studies",
			want:     false,
		},
		{
			name:     "higher education uses its own list",
			level:    LevelHigherEducation,
			category: "Computer Science",
			want:     true,
		},
		{
			name:     "higher education rejects school-level category",
			level:    LevelHigherEducation,
			category: "Biology",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.AllowsCategory(tt.category))
		})
	}
}

func TestEducationLevel_Categories_AdvancedUnionDeduplicates(t *testing.T) {
	union := LevelAdvanced.Categories()
	require.NotEmpty(t, union)

	seen := make(map[string]int)
	for _, c := range union {
		seen[c]++
	}
	// ICT appears in both the commerce and science streams but must
	// surface once in the union.
	assert.Equal(t, 1, seen["Information and Communication Technology"])
	for c, n := range seen {
		assert.Equal(t, 1, n, "category %s duplicated in union", c)
	}
}

func TestSubject_ValidateTaxonomy(t *testing.T) {
	s := &Subject{Name: "A/L Biology", EducationLevel: LevelAdvanced, Category: "Biology"}
	field, ok := s.ValidateTaxonomy()
	assert.True(t, ok)
	assert.Empty(t, field)

	s.Category = "Medicine"
	field, ok = s.ValidateTaxonomy()
	assert.False(t, ok)
	assert.Equal(t, "category", field)

	s.EducationLevel = "GRADUATE"
	field, ok = s.ValidateTaxonomy()
	assert.False(t, ok)
	assert.Equal(t, "educationLevel", field)
}
