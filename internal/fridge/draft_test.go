package fridge

import (
	"testing"
	"time"
)

func TestMaterializeDrafts(t *testing.T) {
	today := date(2026, time.March, 10)

	m := ClassifiedMap{
		CategoryDairy: {
			{Name: "우유", Quantity: 1, PurchaseDate: "2026-03-08", ExpireDate: "2026-03-15"},
			{Name: "계란", Quantity: 10},
		},
		CategoryMeat: {
			{Name: "소고기", Quantity: 2},
		},
	}

	drafts := MaterializeDrafts(m, today)

	if len(drafts) != 3 {
		t.Fatalf("len(drafts) = %d, want 3", len(drafts))
	}

	// Category order is fixed: 육류 before 유제품/계란.
	if drafts[0].Name != "소고기" {
		t.Errorf("drafts[0].Name = %q, want 소고기", drafts[0].Name)
	}
	if drafts[0].Amount != "2개" {
		t.Errorf("drafts[0].Amount = %q, want 2개", drafts[0].Amount)
	}
	if drafts[0].Storage != StorageFridge {
		t.Errorf("drafts[0].Storage = %q, want 냉장", drafts[0].Storage)
	}
	if drafts[0].PurchaseDate != "2026-03-10" {
		t.Errorf("drafts[0].PurchaseDate = %q, want today", drafts[0].PurchaseDate)
	}
	if drafts[0].ExpireDate != "2026-03-17" {
		t.Errorf("drafts[0].ExpireDate = %q, want today+7d", drafts[0].ExpireDate)
	}

	// Dates from the classifier are kept as is.
	if drafts[1].PurchaseDate != "2026-03-08" || drafts[1].ExpireDate != "2026-03-15" {
		t.Errorf("drafts[1] dates = %q/%q, want classifier dates", drafts[1].PurchaseDate, drafts[1].ExpireDate)
	}
	if drafts[1].Amount != "1개" {
		t.Errorf("drafts[1].Amount = %q, want 1개", drafts[1].Amount)
	}
	if drafts[2].Amount != "10개" {
		t.Errorf("drafts[2].Amount = %q, want 10개", drafts[2].Amount)
	}
}

// Every classified item must become exactly one draft.
func TestMaterializeDraftsLosslessCount(t *testing.T) {
	m := ClassifiedMap{
		CategoryMeat:      {{Name: "a"}, {Name: "b"}},
		CategorySeafood:   {{Name: "c"}},
		CategoryVegetable: {{Name: "d"}, {Name: "e"}, {Name: "f"}},
		CategoryEtc:       {{Name: "g"}},
	}

	total := 0
	for _, items := range m {
		total += len(items)
	}

	drafts := MaterializeDrafts(m, time.Now())
	if len(drafts) != total {
		t.Fatalf("len(drafts) = %d, want %d", len(drafts), total)
	}
}

func TestMaterializeDraftsEmpty(t *testing.T) {
	if drafts := MaterializeDrafts(ClassifiedMap{}, time.Now()); len(drafts) != 0 {
		t.Fatalf("len(drafts) = %d, want 0", len(drafts))
	}
	if drafts := MaterializeDrafts(nil, time.Now()); len(drafts) != 0 {
		t.Fatalf("len(drafts) for nil map = %d, want 0", len(drafts))
	}
}

func TestUpdateDraft(t *testing.T) {
	original := []Draft{
		{Name: "우유", Amount: "1개"},
		{Name: "계란", Amount: "10개"},
	}

	newAmount := "2개"
	newStorage := StorageFreezer
	updated := UpdateDraft(original, 1, DraftPatch{Amount: &newAmount, Storage: &newStorage})

	if updated[1].Amount != "2개" || updated[1].Storage != StorageFreezer {
		t.Errorf("updated[1] = %+v, patch not applied", updated[1])
	}
	if updated[1].Name != "계란" {
		t.Errorf("updated[1].Name = %q, unpatched field changed", updated[1].Name)
	}
	if original[1].Amount != "10개" {
		t.Errorf("original mutated: %+v", original[1])
	}
}

func TestUpdateDraftOutOfRange(t *testing.T) {
	drafts := []Draft{{Name: "우유"}}
	name := "바뀜"

	for _, index := range []int{-1, 1, 99} {
		got := UpdateDraft(drafts, index, DraftPatch{Name: &name})
		if len(got) != 1 || got[0].Name != "우유" {
			t.Errorf("UpdateDraft(index=%d) changed the slice", index)
		}
	}
}

func TestRemoveDraft(t *testing.T) {
	original := []Draft{{Name: "a"}, {Name: "b"}, {Name: "c"}}

	got := RemoveDraft(original, 1)
	if len(got) != 2 || got[0].Name != "a" || got[1].Name != "c" {
		t.Errorf("RemoveDraft = %+v, want [a c]", got)
	}
	if len(original) != 3 {
		t.Errorf("original mutated, len = %d", len(original))
	}

	for _, index := range []int{-1, 3} {
		if got := RemoveDraft(original, index); len(got) != 3 {
			t.Errorf("RemoveDraft(index=%d) changed the slice", index)
		}
	}
}
