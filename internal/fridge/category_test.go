package fridge

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"육류", CategoryMeat},
		{"유제품/계란", CategoryDairy},
		{"MEAT", CategoryMeat},
		{"dairy", CategoryDairy},
		{" VEGETABLE ", CategoryVegetable},
		{"OTHER", CategoryEtc},
		{"other", CategoryEtc},
		{"", CategoryEtc},
		{"무언가모르는값", CategoryEtc},
	}

	for _, tt := range tests {
		if got := ParseCategory(tt.in); got != tt.want {
			t.Errorf("ParseCategory(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// The Korean-to-code mapping must round-trip for every member of the enum.
func TestCategoryRoundTrip(t *testing.T) {
	for _, c := range Categories() {
		if got := ParseCategory(c.Code()); got != c {
			t.Errorf("ParseCategory(%q.Code()) = %v, want %v", c, got, c)
		}
		if got := ParseCategory(string(c)); got != c {
			t.Errorf("ParseCategory(%q) = %v, want %v", c, got, c)
		}
		if !c.Valid() {
			t.Errorf("%v.Valid() = false", c)
		}
	}
}

func TestCategoriesOrderStable(t *testing.T) {
	want := []Category{
		CategoryMeat, CategorySeafood, CategoryVegetable,
		CategoryFruit, CategoryDairy, CategoryProcessed, CategoryEtc,
	}

	got := Categories()
	if len(got) != len(want) {
		t.Fatalf("len(Categories()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseStorageMethod(t *testing.T) {
	tests := []struct {
		in   string
		want StorageMethod
	}{
		{"냉장", StorageFridge},
		{"냉동", StorageFreezer},
		{"실온", StorageRoomTemp},
		{"FRIDGE", StorageFridge},
		{"freezer", StorageFreezer},
		{"ROOM_TEMP", StorageRoomTemp},
		{"", StorageFridge},
		{"whatever", StorageFridge},
	}

	for _, tt := range tests {
		if got := ParseStorageMethod(tt.in); got != tt.want {
			t.Errorf("ParseStorageMethod(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStorageMethodCode(t *testing.T) {
	if got := StorageFreezer.Code(); got != "FREEZER" {
		t.Errorf("Code() = %q, want FREEZER", got)
	}
	if got := StorageMethod("이상한값").Code(); got != "FRIDGE" {
		t.Errorf("Code() for unknown = %q, want FRIDGE", got)
	}
}
