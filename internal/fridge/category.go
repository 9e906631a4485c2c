package fridge

import "strings"

// Category is the closed set of ingredient categories used across the
// receipt classifier, the refrigerator and the recipe recommendation flow.
type Category string

const (
	CategoryMeat      Category = "육류"
	CategorySeafood   Category = "해산물"
	CategoryVegetable Category = "채소"
	CategoryFruit     Category = "과일"
	CategoryDairy     Category = "유제품/계란"
	CategoryProcessed Category = "가공식품"
	CategoryEtc       Category = "기타"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{
		CategoryMeat,
		CategorySeafood,
		CategoryVegetable,
		CategoryFruit,
		CategoryDairy,
		CategoryProcessed,
		CategoryEtc,
	}
}

// categoryCodes maps each category to its English wire code. Backends have
// historically sent either spelling, so lookups accept both directions.
var categoryCodes = map[Category]string{
	CategoryMeat:      "MEAT",
	CategorySeafood:   "SEAFOOD",
	CategoryVegetable: "VEGETABLE",
	CategoryFruit:     "FRUIT",
	CategoryDairy:     "DAIRY",
	CategoryProcessed: "PROCESSED",
	CategoryEtc:       "ETC",
}

var categoryAliases = map[string]Category{
	"OTHER": CategoryEtc,
}

// ParseCategory resolves a backend-provided category string to a member of
// the closed enum. Both Korean names and English codes are accepted,
// case-insensitively; anything unrecognized falls back to 기타.
func ParseCategory(s string) Category {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return CategoryEtc
	}

	for _, c := range Categories() {
		if trimmed == string(c) {
			return c
		}
	}

	upper := strings.ToUpper(trimmed)
	for c, code := range categoryCodes {
		if upper == code {
			return c
		}
	}
	if c, ok := categoryAliases[upper]; ok {
		return c
	}

	return CategoryEtc
}

// Code returns the English wire code for the category.
func (c Category) Code() string {
	if code, ok := categoryCodes[c]; ok {
		return code
	}
	return categoryCodes[CategoryEtc]
}

// Valid reports whether c is a member of the closed enum.
func (c Category) Valid() bool {
	_, ok := categoryCodes[c]
	return ok
}
