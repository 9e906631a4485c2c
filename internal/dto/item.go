package dto

// ItemRequest is the body of POST/PUT /api/refrigerator/items. Storage
// method arrives as its English wire code (FRIDGE, FREEZER, ROOM_TEMP) and
// dates as YYYY-MM-DD strings.
type ItemRequest struct {
	IngredientName string `json:"ingredientName" validate:"required"`
	Quantity       string `json:"quantity" validate:"required"`
	StorageMethod  string `json:"storageMethod" validate:"required,oneof=FRIDGE FREEZER ROOM_TEMP"`
	Category       string `json:"category,omitempty"`
	PurchaseDate   string `json:"purchaseDate,omitempty"`
	ExpirationDate string `json:"expirationDate,omitempty"`
	Memo           string `json:"memo,omitempty"`
}

type ItemResponse struct {
	ItemID         string `json:"itemId"`
	IngredientName string `json:"ingredientName"`
	Quantity       string `json:"quantity"`
	StorageMethod  string `json:"storageMethod"`
	Category       string `json:"category,omitempty"`
	PurchaseDate   string `json:"purchaseDate,omitempty"`
	ExpirationDate string `json:"expirationDate,omitempty"`
	Memo           string `json:"memo,omitempty"`
	Status         string `json:"status"`
}

type ExpiringItemResponse struct {
	ItemID         string `json:"itemId"`
	IngredientName string `json:"ingredientName"`
	ExpirationDate string `json:"expirationDate"`
}

// DashboardResponse is the status aggregation shown on the home screen.
type DashboardResponse struct {
	TotalItems    int                    `json:"totalItems"`
	FreshCount    int                    `json:"freshCount"`
	WarningCount  int                    `json:"warningCount"`
	ExpiredCount  int                    `json:"expiredCount"`
	ExpiringItems []ExpiringItemResponse `json:"expiringItems"`
}
