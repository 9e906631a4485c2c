package service

import (
	"strings"
	"time"

	"ssakpotato/internal/fridge"

	"go.uber.org/zap"
)

// nonFoodKeywords marks receipt items that should never land in the
// refrigerator (household goods and the like).
var nonFoodKeywords = []string{
	"세제", "비누", "샴푸", "화장지", "티슈", "물티슈", "수건", "칫솔",
	"마스크", "봉투", "쓰레기", "일회용", "테이프", "건전지", "면도기",
	"가글", "탈취제", "방향제", "종이컵", "빨대", "라이터", "양초",
}

type keywordRule struct {
	keyword       string
	category      fridge.Category
	shelfLifeDays int
}

// keywordRules maps product-name keywords to a category and a typical
// shelf life in days. First match wins, so more specific keywords come
// before generic ones within a group.
var keywordRules = []keywordRule{
	// 유제품/계란
	{"우유", fridge.CategoryDairy, 7},
	{"계란", fridge.CategoryDairy, 14},
	{"특란", fridge.CategoryDairy, 14},
	{"치즈", fridge.CategoryDairy, 30},
	{"요거트", fridge.CategoryDairy, 14},
	// 육류
	{"삼겹살", fridge.CategoryMeat, 3},
	{"소고기", fridge.CategoryMeat, 3},
	{"돼지고기", fridge.CategoryMeat, 3},
	{"닭고기", fridge.CategoryMeat, 3},
	{"목우촌", fridge.CategoryMeat, 5},
	// 해산물
	{"생선", fridge.CategorySeafood, 2},
	{"연어", fridge.CategorySeafood, 2},
	{"오징어", fridge.CategorySeafood, 2},
	// 채소
	{"양배추", fridge.CategoryVegetable, 14},
	{"팽이버섯", fridge.CategoryVegetable, 5},
	{"배추", fridge.CategoryVegetable, 14},
	{"양파", fridge.CategoryVegetable, 21},
	{"무", fridge.CategoryVegetable, 21},
	// 과일
	{"사과", fridge.CategoryFruit, 14},
	{"바나나", fridge.CategoryFruit, 5},
	{"토마토", fridge.CategoryFruit, 7},
	// 가공식품
	{"참치", fridge.CategoryProcessed, 365},
	{"두부", fridge.CategoryProcessed, 7},
	{"비빔밥", fridge.CategoryProcessed, 365},
	{"컵반", fridge.CategoryProcessed, 365},
	{"햄", fridge.CategoryProcessed, 30},
}

const fallbackShelfLifeDays = 365

// ClassifierService turns parsed receipt lines into categorized items with
// an estimated expiry date.
type ClassifierService struct {
	logger *zap.Logger
}

func NewClassifierService(logger *zap.Logger) *ClassifierService {
	return &ClassifierService{logger: logger}
}

// IsFood reports whether a parsed product name looks like food. Non-food
// keywords are matched against the lowercased, whitespace-stripped name.
func (s *ClassifierService) IsFood(name string) bool {
	normalized := strings.ReplaceAll(strings.ToLower(name), " ", "")
	if normalized == "" {
		return false
	}
	for _, keyword := range nonFoodKeywords {
		if strings.Contains(normalized, keyword) {
			return false
		}
	}
	return true
}

// ClassifyItem assigns a category and expiry estimate to one parsed line.
// Unknown products fall into 기타 with a one-year shelf life.
func (s *ClassifierService) ClassifyItem(name string, quantity int, receiptDate time.Time) (fridge.Category, fridge.ClassifiedItem) {
	category := fridge.CategoryEtc
	shelfLifeDays := fallbackShelfLifeDays

	for _, rule := range keywordRules {
		if strings.Contains(name, rule.keyword) {
			category = rule.category
			shelfLifeDays = rule.shelfLifeDays
			break
		}
	}

	item := fridge.ClassifiedItem{
		Name:         name,
		Quantity:     quantity,
		PurchaseDate: receiptDate.Format("2006-01-02"),
		ExpireDate:   receiptDate.AddDate(0, 0, shelfLifeDays).Format("2006-01-02"),
	}

	s.logger.Debug("Item classified",
		zap.String("name", name),
		zap.String("category", string(category)),
		zap.Int("shelf_life_days", shelfLifeDays),
	)

	return category, item
}
