package calc

import "testing"

func TestClassifyTransaction(t *testing.T) {
	cases := []struct {
		name        string
		category    string
		subcategory string
		taxonomy    Taxonomy
		want        bool
	}{
		{"known pair", "materials", "Hardware", ProjectCategories, true},
		{"unknown subcategory", "materials", "Nonexistent", ProjectCategories, false},
		{"unknown category", "nonexistent_category", "X", ProjectCategories, false},
		{"office pair", "vehicle", "Fuel", OfficeCategories, true},
		{"project key against office table", "materials", "Hardware", OfficeCategories, false},
		{"empty inputs", "", "", ProjectCategories, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyTransaction(tc.category, tc.subcategory, tc.taxonomy); got != tc.want {
				t.Errorf("ClassifyTransaction(%q, %q) = %v, want %v", tc.category, tc.subcategory, got, tc.want)
			}
		})
	}
}

// The project and office tables must stay disjoint except for keys that
// genuinely exist in both worlds with different subcategories.
func TestTaxonomiesAreDistinctTables(t *testing.T) {
	if len(ProjectCategories) != 9 {
		t.Errorf("ProjectCategories has %d entries, want 9", len(ProjectCategories))
	}
	if len(OfficeCategories) != 6 {
		t.Errorf("OfficeCategories has %d entries, want 6", len(OfficeCategories))
	}
	// "insurance" appears in both but with different subcategories
	if ClassifyTransaction("insurance", "Builders Risk", OfficeCategories) {
		t.Error("office insurance should not accept the project-side subcategory")
	}
	if ClassifyTransaction("insurance", "Vehicle", ProjectCategories) {
		t.Error("project insurance should not accept the office-side subcategory")
	}
}
