package client

import (
	"strings"

	"ssakpotato/internal/fridge"
)

// mockRule maps a filename keyword to the items a matching receipt
// "contains".
type mockRule struct {
	keywords []string
	category fridge.Category
	items    []string
}

var mockRules = []mockRule{
	{[]string{"beef", "소고기"}, fridge.CategoryMeat, []string{"소고기"}},
	{[]string{"fish", "생선"}, fridge.CategorySeafood, []string{"연어"}},
	{[]string{"onion", "양파"}, fridge.CategoryVegetable, []string{"양파"}},
	{[]string{"apple", "사과"}, fridge.CategoryFruit, []string{"사과"}},
	{[]string{"milk", "egg", "우유", "계란"}, fridge.CategoryDairy, []string{"우유", "계란"}},
	{[]string{"tofu", "두부"}, fridge.CategoryProcessed, []string{"두부"}},
}

// MockParseReceipt fakes the receipt pipeline for offline development and
// demos: the filename decides what the "receipt" contains, and progress
// runs through the same staged percentages as a real upload. A filename
// matching nothing yields a small default basket.
func MockParseReceipt(filename string, onProgress ProgressFunc) fridge.ClassifiedMap {
	reporter := newProgressReporter(onProgress)
	for _, p := range []int{10, 25, 33, 40, 50, 60, 66, 80, 95, 100} {
		reporter.report(p)
	}

	name := strings.ToLower(filename)
	classified := make(fridge.ClassifiedMap)

	for _, rule := range mockRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(name, keyword) {
				for _, item := range rule.items {
					classified[rule.category] = append(classified[rule.category], fridge.ClassifiedItem{
						Name:     item,
						Quantity: 1,
					})
				}
				break
			}
		}
	}

	if len(classified) == 0 {
		classified[fridge.CategoryVegetable] = []fridge.ClassifiedItem{{Name: "대파", Quantity: 1}}
		classified[fridge.CategoryDairy] = []fridge.ClassifiedItem{{Name: "요거트", Quantity: 1}}
	}

	return classified
}
