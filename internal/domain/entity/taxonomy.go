package entity

// EducationLevel is the curriculum stage a subject belongs to.
type EducationLevel string

const (
	LevelPrimary         EducationLevel = "PRIMARY"
	LevelJuniorSecondary EducationLevel = "JUNIOR_SECONDARY"
	LevelSeniorSecondary EducationLevel = "SENIOR_SECONDARY"
	LevelAdvanced        EducationLevel = "ADVANCED_LEVEL"
	LevelHigherEducation EducationLevel = "HIGHER_EDUCATION"
)

// Stream partitions the advanced-level categories. It is informational
// for browsing; validation only cares about the union of all streams.
type Stream string

const (
	StreamArts     Stream = "ARTS"
	StreamCommerce Stream = "COMMERCE"
	StreamScience  Stream = "SCIENCE"
)

var primaryCategories = []string{
	"Mathematics",
	"Sinhala",
	"Tamil",
	"English",
	"Environmental Studies",
	"Religion",
}

var juniorSecondaryCategories = []string{
	"Mathematics",
	"Science",
	"Sinhala",
	"Tamil",
	"English",
	"History",
	"Geography",
	"Civic Education",
	"Health and Physical Education",
	"Religion",
}

var seniorSecondaryCategories = []string{
	"Mathematics",
	"Science",
	"Sinhala",
	"Tamil",
	"English",
	"History",
	"Commerce",
	"Information and Communication Technology",
	"Art",
	"Music",
	"Religion",
}

// advancedStreams holds the stream partition for ADVANCED_LEVEL. The
// valid category set for the level is the union of every stream.
var advancedStreams = map[Stream][]string{
	StreamArts: {
		"Sinhala",
		"Tamil",
		"English Literature",
		"History",
		"Geography",
		"Political Science",
		"Logic and Scientific Method",
		"Media Studies",
		"Drama and Theatre",
	},
	StreamCommerce: {
		"Accounting",
		"Business Studies",
		"Economics",
		"Business Statistics",
		"Information and Communication Technology",
	},
	StreamScience: {
		"Biology",
		"Physics",
		"Chemistry",
		"Combined Mathematics",
		"Agricultural Science",
		"Information and Communication Technology",
	},
}

var higherEducationCategories = []string{
	"Engineering",
	"Medicine",
	"Law",
	"Management",
	"Computer Science",
	"Accounting and Finance",
	"Architecture",
	"Nursing",
	"Quantity Surveying",
}

// EducationLevels lists every valid level in display order.
func EducationLevels() []EducationLevel {
	return []EducationLevel{
		LevelPrimary,
		LevelJuniorSecondary,
		LevelSeniorSecondary,
		LevelAdvanced,
		LevelHigherEducation,
	}
}

// Valid reports whether the level is part of the fixed enumeration.
func (l EducationLevel) Valid() bool {
	switch l {
	case LevelPrimary, LevelJuniorSecondary, LevelSeniorSecondary,
		LevelAdvanced, LevelHigherEducation:
		return true
	default:
		return false
	}
}

// Categories returns the allowed category set for the level. For
// ADVANCED_LEVEL this is the union of the ARTS, COMMERCE and SCIENCE
// streams with duplicates removed.
func (l EducationLevel) Categories() []string {
	switch l {
	case LevelPrimary:
		return append([]string(nil), primaryCategories...)
	case LevelJuniorSecondary:
		return append([]string(nil), juniorSecondaryCategories...)
	case LevelSeniorSecondary:
		return append([]string(nil), seniorSecondaryCategories...)
	case LevelAdvanced:
		seen := make(map[string]struct{})
		var union []string
		for _, stream := range []Stream{StreamArts, StreamCommerce, StreamScience} {
			for _, c := range advancedStreams[stream] {
				if _, ok := seen[c]; ok {
					continue
				}
				seen[c] = struct{}{}
				union = append(union, c)
			}
		}
		return union
	case LevelHigherEducation:
		return append([]string(nil), higherEducationCategories...)
	default:
		return nil
	}
}

// AllowsCategory reports whether the category is valid for the level.
// The same check runs on subject create and update.
func (l EducationLevel) AllowsCategory(category string) bool {
	for _, c := range l.Categories() {
		if c == category {
			return true
		}
	}
	return false
}

// AdvancedStreamCategories returns the categories of one advanced-level
// stream, for stream-scoped browsing.
func AdvancedStreamCategories(s Stream) []string {
	return append([]string(nil), advancedStreams[s]...)
}
