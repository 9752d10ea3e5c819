package pipeline

import "github.com/aidaily/ai-daily/internal/domain"

// categoryTable maps external category labels to brief item types. The
// mapping is currently the identity, kept as an explicit table so an
// unknown label has a defined fallback instead of leaking through.
var categoryTable = map[domain.Category]domain.Category{
	domain.CategoryTechnology: domain.CategoryTechnology,
	domain.CategoryBusiness:   domain.CategoryBusiness,
	domain.CategoryResearch:   domain.CategoryResearch,
	domain.CategoryPolicy:     domain.CategoryPolicy,
	domain.CategoryIndustry:   domain.CategoryIndustry,
	domain.CategoryInnovation: domain.CategoryInnovation,
}

// MapCategory is total: unknown or missing labels fall back to
// Technology, silently.
func MapCategory(c domain.Category) domain.Category {
	if mapped, ok := categoryTable[c]; ok {
		return mapped
	}
	return domain.CategoryTechnology
}
