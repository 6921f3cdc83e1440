package domain

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FallbackColor is used for labels that match no known category
const FallbackColor = "#6b7280"

// Category is a user-defined label with a display color
type Category struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CategoryKind selects which entity family a category list belongs to
type CategoryKind string

const (
	CategoryIdea     CategoryKind = "idea"
	CategoryTask     CategoryKind = "task"
	CategoryShopping CategoryKind = "shopping"
	CategoryHabit    CategoryKind = "habit"
)

// CategoryKinds lists every kind in display order
var CategoryKinds = []CategoryKind{CategoryTask, CategoryShopping, CategoryIdea, CategoryHabit}

// IsValid reports whether k is a known category kind
func (k CategoryKind) IsValid() bool {
	return slices.Contains(CategoryKinds, k)
}

// ParseCategoryKind accepts a kind name, singular or plural
func ParseCategoryKind(s string) (CategoryKind, error) {
	s = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s")
	if k := CategoryKind(s); k.IsValid() {
		return k, nil
	}
	return "", fmt.Errorf("unknown category kind %q", s)
}

var defaultCategories = map[CategoryKind][]Category{
	CategoryIdea: {
		{"personal", "#ec4899"},
		{"work", "#3b82f6"},
		{"study", "#6366f1"},
		{"relationships", "#ec4899"},
		{"creative", "#f59e0b"},
	},
	CategoryTask: {
		{"personal", "#ec4899"},
		{"work", "#3b82f6"},
		{"health", "#22c55e"},
		{"relationship", "#a855f7"},
		{"family", "#f97316"},
	},
	CategoryShopping: {
		{"groceries", "#22c55e"},
		{"household", "#6b7280"},
		{"electronics", "#3b82f6"},
		{"clothing", "#ec4899"},
		{"books", "#8b5cf6"},
	},
	CategoryHabit: {
		{"health", "#22c55e"},
		{"productivity", "#3b82f6"},
		{"personal", "#ec4899"},
		{"learning", "#8b5cf6"},
		{"social", "#f59e0b"},
	},
}

// DefaultCategories returns a copy of the built-in categories of a kind
func DefaultCategories(kind CategoryKind) []Category {
	return slices.Clone(defaultCategories[kind])
}

// IsDefaultCategory reports whether name is a built-in category of kind
func IsDefaultCategory(kind CategoryKind, name string) bool {
	return findCategory(defaultCategories[kind], name) >= 0
}

// CategoryExists checks name against the defaults and the custom list, ignoring case
func CategoryExists(kind CategoryKind, custom []Category, name string) bool {
	return IsDefaultCategory(kind, name) || findCategory(custom, name) >= 0
}

// ColorFor resolves the color of a label, custom categories first
func ColorFor(kind CategoryKind, custom []Category, name string) string {
	if i := findCategory(custom, name); i >= 0 && custom[i].Color != "" {
		return custom[i].Color
	}
	if i := findCategory(defaultCategories[kind], name); i >= 0 {
		return defaultCategories[kind][i].Color
	}
	return FallbackColor
}

var titleCaser = cases.Title(language.English)

// DisplayName title-cases a default category name. Custom names are shown as typed.
func DisplayName(kind CategoryKind, name string) string {
	if IsDefaultCategory(kind, name) {
		return titleCaser.String(name)
	}
	return name
}

func findCategory(list []Category, name string) int {
	return slices.IndexFunc(list, func(c Category) bool {
		return strings.EqualFold(c.Name, name)
	})
}
