package domain

// Category is the fixed label set a brief item can carry.
type Category string

const (
	CategoryTechnology Category = "Technology"
	CategoryBusiness   Category = "Business"
	CategoryResearch   Category = "Research"
	CategoryPolicy     Category = "Policy"
	CategoryIndustry   Category = "Industry"
	CategoryInnovation Category = "Innovation"
)

// Categories lists every known category.
var Categories = []Category{
	CategoryTechnology,
	CategoryBusiness,
	CategoryResearch,
	CategoryPolicy,
	CategoryIndustry,
	CategoryInnovation,
}

func (c Category) Known() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
