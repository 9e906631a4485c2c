package fridge

import (
	"strconv"
	"time"
)

// ClassifiedItem is one recognized receipt line item, produced by the
// receipt pipeline. Dates are optional: the backend fills them in when the
// receipt carried enough information.
type ClassifiedItem struct {
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	PurchaseDate string `json:"purchaseDate,omitempty"`
	ExpireDate   string `json:"expireDate,omitempty"`
}

// ClassifiedMap groups recognized items by category.
type ClassifiedMap map[Category][]ClassifiedItem

// Draft is a locally-held candidate inventory record awaiting user
// confirmation. Drafts are edited in place and lifted into persisted items
// by a bulk commit.
type Draft struct {
	Name         string
	Category     Category
	Amount       string
	Storage      StorageMethod
	PurchaseDate string
	ExpireDate   string
	Memo         string
}

const (
	defaultAmount = "1개"
	dateLayout    = "2006-01-02"
	// defaultShelfLifeDays is used when the classifier gave no expiry date.
	defaultShelfLifeDays = 7
)

// MaterializeDrafts converts a classification map into one editable draft
// per item. Defaults: storage 냉장, amount "1개" when the quantity is
// unknown, purchase date today and expiry a week out when the OCR result
// carried no dates. Iteration follows the fixed category order so the
// result is deterministic.
func MaterializeDrafts(m ClassifiedMap, today time.Time) []Draft {
	purchaseDefault := today.Format(dateLayout)
	expireDefault := today.AddDate(0, 0, defaultShelfLifeDays).Format(dateLayout)

	var drafts []Draft
	for _, cat := range Categories() {
		for _, item := range m[cat] {
			d := Draft{
				Name:         item.Name,
				Category:     cat,
				Amount:       defaultAmount,
				Storage:      StorageFridge,
				PurchaseDate: item.PurchaseDate,
				ExpireDate:   item.ExpireDate,
			}
			if item.Quantity > 1 {
				d.Amount = formatAmount(item.Quantity)
			}
			if d.PurchaseDate == "" {
				d.PurchaseDate = purchaseDefault
			}
			if d.ExpireDate == "" {
				d.ExpireDate = expireDefault
			}
			drafts = append(drafts, d)
		}
	}
	return drafts
}

func formatAmount(quantity int) string {
	if quantity <= 0 {
		return defaultAmount
	}
	return strconv.Itoa(quantity) + "개"
}

// DraftPatch carries the fields of a draft edit; nil fields are left alone.
type DraftPatch struct {
	Name         *string
	Category     *Category
	Amount       *string
	Storage      *StorageMethod
	PurchaseDate *string
	ExpireDate   *string
	Memo         *string
}

// UpdateDraft returns a new slice with the draft at index patched. The
// input is never mutated; an out-of-range index returns the input as is.
func UpdateDraft(drafts []Draft, index int, patch DraftPatch) []Draft {
	if index < 0 || index >= len(drafts) {
		return drafts
	}

	next := make([]Draft, len(drafts))
	copy(next, drafts)

	d := &next[index]
	if patch.Name != nil {
		d.Name = *patch.Name
	}
	if patch.Category != nil {
		d.Category = *patch.Category
	}
	if patch.Amount != nil {
		d.Amount = *patch.Amount
	}
	if patch.Storage != nil {
		d.Storage = *patch.Storage
	}
	if patch.PurchaseDate != nil {
		d.PurchaseDate = *patch.PurchaseDate
	}
	if patch.ExpireDate != nil {
		d.ExpireDate = *patch.ExpireDate
	}
	if patch.Memo != nil {
		d.Memo = *patch.Memo
	}

	return next
}

// RemoveDraft returns a new slice without the draft at index. The input is
// never mutated; an out-of-range index returns the input as is.
func RemoveDraft(drafts []Draft, index int) []Draft {
	if index < 0 || index >= len(drafts) {
		return drafts
	}
	next := make([]Draft, 0, len(drafts)-1)
	next = append(next, drafts[:index]...)
	next = append(next, drafts[index+1:]...)
	return next
}
