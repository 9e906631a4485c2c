package service

import (
	"testing"
	"time"

	"ssakpotato/internal/fridge"

	"go.uber.org/zap"
)

func TestIsFood(t *testing.T) {
	s := NewClassifierService(zap.NewNop())

	tests := []struct {
		name string
		want bool
	}{
		{"서울우유 1L", true},
		{"삼겹살 600g", true},
		{"주방세제", false},
		{"물 티슈", false},
		{"종이컵 50개", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := s.IsFood(tt.name); got != tt.want {
			t.Errorf("IsFood(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestClassifyItem(t *testing.T) {
	s := NewClassifierService(zap.NewNop())
	receiptDate := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		category   fridge.Category
		expireDate string
	}{
		{"서울우유 1L", fridge.CategoryDairy, "2026-03-17"},
		{"한우 소고기", fridge.CategoryMeat, "2026-03-13"},
		{"노르웨이 연어", fridge.CategorySeafood, "2026-03-12"},
		{"깐양파 3개입", fridge.CategoryVegetable, "2026-03-31"},
		{"부사 사과", fridge.CategoryFruit, "2026-03-24"},
		{"국산콩 두부", fridge.CategoryProcessed, "2026-03-17"},
		{"정체불명 상품", fridge.CategoryEtc, "2027-03-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, item := s.ClassifyItem(tt.name, 2, receiptDate)
			if category != tt.category {
				t.Errorf("category = %v, want %v", category, tt.category)
			}
			if item.ExpireDate != tt.expireDate {
				t.Errorf("ExpireDate = %s, want %s", item.ExpireDate, tt.expireDate)
			}
			if item.PurchaseDate != "2026-03-10" {
				t.Errorf("PurchaseDate = %s, want receipt date", item.PurchaseDate)
			}
			if item.Quantity != 2 {
				t.Errorf("Quantity = %d, want 2", item.Quantity)
			}
		})
	}
}

func TestClassifyTextPipeline(t *testing.T) {
	classifier := NewClassifierService(zap.NewNop())
	s := NewReceiptService(nil, classifier, zap.NewNop())
	now := time.Date(2026, time.March, 12, 9, 0, 0, 0, time.UTC)

	text := `이마트
2026-03-10
001 서울우유 1L 1 2,980
002 주방세제 리필 1 4,500
003 국산콩 두부 1 1,980
004 서울우유 1L 1 2,980
합계 12,440`

	classified := s.ClassifyText(text, now)

	dairy := classified[fridge.CategoryDairy]
	if len(dairy) != 1 {
		t.Fatalf("dairy items = %d, want 1 (duplicates merged)", len(dairy))
	}
	if dairy[0].Quantity != 2 {
		t.Errorf("우유 quantity = %d, want 2", dairy[0].Quantity)
	}
	// Dates come from the receipt, not from "now".
	if dairy[0].PurchaseDate != "2026-03-10" {
		t.Errorf("PurchaseDate = %s, want 2026-03-10", dairy[0].PurchaseDate)
	}

	if len(classified[fridge.CategoryProcessed]) != 1 {
		t.Errorf("processed items = %d, want 1", len(classified[fridge.CategoryProcessed]))
	}

	// The detergent is not food and must not appear anywhere.
	for category, items := range classified {
		for _, item := range items {
			if item.Name == "주방세제 리필" {
				t.Errorf("non-food item classified into %v", category)
			}
		}
	}
}

func TestClassifyTextEmpty(t *testing.T) {
	s := NewReceiptService(nil, NewClassifierService(zap.NewNop()), zap.NewNop())

	classified := s.ClassifyText("", time.Now())
	if len(classified) != 0 {
		t.Fatalf("classified = %+v, want empty map", classified)
	}
	if classified == nil {
		t.Fatal("classified is nil, want empty map")
	}
}
