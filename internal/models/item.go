package models

import (
	"time"

	"ssakpotato/internal/fridge"

	"github.com/google/uuid"
)

// FridgeItem is a persisted refrigerator item. Category is stored by its
// Korean name and the storage method by its English wire code; Status is
// derived from the expiration date on read and never written to the
// database.
type FridgeItem struct {
	ID             uuid.UUID  `db:"id"`
	UserID         uuid.UUID  `db:"user_id"`
	IngredientName string     `db:"ingredient_name"`
	Quantity       string     `db:"quantity"`
	StorageMethod  string     `db:"storage_method"`
	Category       string     `db:"category"`
	PurchaseDate   *time.Time `db:"purchase_date"`
	ExpirationDate *time.Time `db:"expiration_date"`
	Memo           string     `db:"memo"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`

	Status fridge.ItemStatus `db:"-"`
}
