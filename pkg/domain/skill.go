package domain

// Category groups skills on the portfolio page.
type Category string

const (
	CategoryFrontend Category = "FRONTEND"
	CategoryBackend  Category = "BACKEND"
	CategoryDatabase Category = "DATABASE"
	CategoryTools    Category = "TOOLS"
)

// Categories lists the valid skill categories in display order.
var Categories = []Category{
	CategoryFrontend,
	CategoryBackend,
	CategoryDatabase,
	CategoryTools,
}

var validCategorySet = func() map[Category]bool {
	m := make(map[Category]bool, len(Categories))
	for _, c := range Categories {
		m[c] = true
	}
	return m
}()

// ValidCategory returns true if c is a known skill category.
func ValidCategory(c Category) bool {
	return validCategorySet[c]
}

// Skill is a single entry in the skills section.
type Skill struct {
	ID       ID       `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Level    *int     `json:"level"` // 0-100, nil when unrated
	IconPath string   `json:"iconPath,omitempty"`
}

// MaxSkillLevel is the upper bound of a skill level percentage.
const MaxSkillLevel = 100
