package doctor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	records := loadFixture(t)

	tests := []struct {
		name     string
		criteria Criteria
		want     []int
	}{
		{"zero criteria matches all", Criteria{}, []int{1, 2, 3, 4, 5, 6}},
		{"query is case-insensitive", Criteria{Query: "BAKER"}, []int{3}},
		{"query matches substring", Criteria{Query: "a"}, []int{1, 3, 4, 6}},
		{"specialty", Criteria{Specialty: "Cardiology"}, []int{1, 3, 4, 5}},
		{"area", Criteria{Area: "South"}, []int{2, 3}},
		{"min rating is inclusive", Criteria{MinRating: 4.5}, []int{1, 5}},
		{"combined", Criteria{Specialty: "Cardiology", Area: "North", MinRating: 4}, []int{1, 5}},
		{"no match", Criteria{Specialty: "Neurology"}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(records, tt.criteria)))
		})
	}
}

func TestLastName(t *testing.T) {
	assert.Equal(t, "Ruiz", LastName("Dr. Ana Ruiz"))
	assert.Equal(t, "Osei", LastName("  Ben   Osei "))
	assert.Equal(t, "Cher", LastName("Cher"))
	assert.Equal(t, "", LastName(""))
}

func TestSortByLastName(t *testing.T) {
	records := loadFixture(t)

	sorted := SortByLastName(records)

	// Amari, Ávila, Baker, Osei, Ruiz, Zhou
	assert.Equal(t, []int{6, 4, 3, 2, 1, 5}, ids(sorted))
	// input is untouched
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(records))
}

func TestSortByLastName_StableOnTies(t *testing.T) {
	records := []Record{
		{ID: 1, Name: "Zed Lee"},
		{ID: 2, Name: "Amy Lee"},
		{ID: 3, Name: "Bo Kim"},
	}
	assert.Equal(t, []int{3, 1, 2}, ids(SortByLastName(records)))
}

func TestCollectFacets(t *testing.T) {
	f := CollectFacets(loadFixture(t))
	assert.Equal(t, []string{"Cardiology", "Dermatology"}, f.Specialties)
	assert.Equal(t, []string{"North", "South"}, f.Areas)
}

func TestCollectFacets_Empty(t *testing.T) {
	f := CollectFacets(nil)
	assert.NotNil(t, f.Specialties)
	assert.NotNil(t, f.Areas)
	assert.Empty(t, f.Specialties)
}
