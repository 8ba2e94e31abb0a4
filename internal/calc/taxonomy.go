package calc

// Category is one entry of a two-level classification table.
type Category struct {
	Label         string
	Subcategories []string
}

// Taxonomy maps category keys to their labels and ordered subcategories.
type Taxonomy map[string]Category

// ClassifyTransaction reports whether subcategory is a valid member of
// taxonomy[category]. Unknown categories and subcategories return false
// rather than an error: classification failures never block record
// creation.
func ClassifyTransaction(category, subcategory string, taxonomy Taxonomy) bool {
	entry, ok := taxonomy[category]
	if !ok {
		return false
	}
	for _, sub := range entry.Subcategories {
		if sub == subcategory {
			return true
		}
	}
	return false
}

// ProjectCategories classifies project transactions. Disjoint from
// OfficeCategories; the two tables are kept separate on purpose.
var ProjectCategories = Taxonomy{
	"labor": {
		Label:         "Labor",
		Subcategories: []string{"General Labor", "Skilled Labor", "Supervision"},
	},
	"materials": {
		Label:         "Materials",
		Subcategories: []string{"Building Materials", "Finishes", "Hardware", "Equipment"},
	},
	"construction_documents": {
		Label: "Construction Documents",
		Subcategories: []string{
			"Blueprints",
			"Engineering Plans",
			"Permits",
			"Inspections",
			"Shop Drawings",
			"Specifications",
			"Other",
			"Structural Engineering",
			"Deputy Inspection",
			"Survey",
		},
	},
	"equipment": {
		Label:         "Equipment",
		Subcategories: []string{"Rental", "Purchase", "Maintenance"},
	},
	"permits": {
		Label:         "Permits",
		Subcategories: []string{"Building", "Electrical", "Plumbing", "Mechanical"},
	},
	"insurance": {
		Label:         "Insurance",
		Subcategories: []string{"Liability", "Workers Comp", "Builders Risk"},
	},
	"utilities": {
		Label:         "Utilities",
		Subcategories: []string{"Electricity", "Water", "Gas", "Temporary Services"},
	},
	"subcontractors": {
		Label:         "Subcontractors",
		Subcategories: []string{"Electrical", "Plumbing", "HVAC", "Roofing"},
	},
	"other": {
		Label:         "Other",
		Subcategories: []string{"Miscellaneous", "Administrative", "Professional Services"},
	},
}

// OfficeCategories classifies company-level office expenses.
var OfficeCategories = Taxonomy{
	"insurance": {
		Label:         "Insurance",
		Subcategories: []string{"Liability", "Vehicle", "Workers Comp", "Property"},
	},
	"vehicle": {
		Label:         "Vehicle",
		Subcategories: []string{"Lease", "Maintenance", "Fuel", "Registration"},
	},
	"office": {
		Label:         "Office",
		Subcategories: []string{"Rent", "Utilities", "Maintenance", "Supplies"},
	},
	"professional": {
		Label:         "Professional",
		Subcategories: []string{"Legal", "Accounting", "Consulting"},
	},
	"licenses": {
		Label:         "Licenses & Permits",
		Subcategories: []string{"Business License", "Professional License", "Permits"},
	},
	"software": {
		Label:         "Software & Subscriptions",
		Subcategories: []string{"Project Management", "Accounting", "Communication"},
	},
}
