package doctor

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Criteria narrows a doctor list. Zero values match everything.
type Criteria struct {
	Query     string  // case-insensitive substring of the name
	Specialty string  // exact match
	Area      string  // exact match
	MinRating float64 // inclusive lower bound on reviewScore
}

// Match reports whether r satisfies every criterion.
func (c Criteria) Match(r Record) bool {
	if c.Query != "" && !strings.Contains(strings.ToLower(r.Name), strings.ToLower(c.Query)) {
		return false
	}
	if c.Specialty != "" && r.Specialty != c.Specialty {
		return false
	}
	if c.Area != "" && r.Area != c.Area {
		return false
	}
	return r.ReviewScore >= c.MinRating
}

// Filter returns the records matching c, in their original order.
func Filter(records []Record, c Criteria) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if c.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// LastName is the last space-separated word of a name.
func LastName(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

// SortByLastName returns a copy of records ordered by last name. Names are
// compared with an English collator, so "Ávila" sorts before "Baker" instead
// of after "Zhou". Ties keep their input order.
func SortByLastName(records []Record) []Record {
	// Collators keep scratch buffers; one per call keeps this safe for
	// concurrent handlers.
	col := collate.New(language.English)
	keys := make([]string, len(records))
	for i, r := range records {
		keys[i] = LastName(r.Name)
	}
	idx := make([]int, len(records))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return col.CompareString(keys[idx[i]], keys[idx[j]]) < 0
	})

	sorted := make([]Record, len(records))
	for i, k := range idx {
		sorted[i] = records[k]
	}
	return sorted
}

// Facets lists the distinct values a list can be filtered on.
type Facets struct {
	Specialties []string `json:"specialties"`
	Areas       []string `json:"areas"`
}

// CollectFacets returns the distinct non-empty specialties and areas in the
// order they first appear.
func CollectFacets(records []Record) Facets {
	f := Facets{Specialties: []string{}, Areas: []string{}}
	seenSpecialty := make(map[string]bool)
	seenArea := make(map[string]bool)
	for _, r := range records {
		if r.Specialty != "" && !seenSpecialty[r.Specialty] {
			seenSpecialty[r.Specialty] = true
			f.Specialties = append(f.Specialties, r.Specialty)
		}
		if r.Area != "" && !seenArea[r.Area] {
			seenArea[r.Area] = true
			f.Areas = append(f.Areas, r.Area)
		}
	}
	return f
}
