package dto

// Wire types for the ai-service recipe generation endpoint. These are
// shared by the service, its fiber handler and the SDK client.

type GenerateRecipeRequest struct {
	Ingredients            []RecipeIngredient `json:"ingredients"`
	UserPreferences        *UserPreferences   `json:"user_preferences,omitempty"`
	AdditionalRequirements string             `json:"additional_requirements,omitempty"`
}

type RecipeIngredient struct {
	Name            string `json:"name"`
	Amount          string `json:"amount,omitempty"`
	PriorityScore   int    `json:"priority_score,omitempty"`
	DaysUntilExpiry int    `json:"days_until_expiry,omitempty"`
}

type UserPreferences struct {
	ServingSize   int      `json:"serving_size,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
	MaxCookingMin int      `json:"max_cooking_time,omitempty"`
	Dislikes      []string `json:"dislikes,omitempty"`
}

// GenerateRecipeResponse is the envelope returned for every generation
// request. On failure Success is false and FallbackSuggestions is always
// populated: the endpoint never returns a bare error.
type GenerateRecipeResponse struct {
	Success             bool                 `json:"success"`
	Recipe              *Recipe              `json:"recipe,omitempty"`
	UsageStats          *UsageStats          `json:"usage_stats,omitempty"`
	Error               *GenerationError     `json:"error,omitempty"`
	FallbackSuggestions []FallbackSuggestion `json:"fallback_suggestions,omitempty"`
}

type GenerationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type FallbackSuggestion struct {
	MenuName    string   `json:"menu_name"`
	Reason      string   `json:"reason"`
	Ingredients []string `json:"ingredients"`
}

type Recipe struct {
	MenuName              string                 `json:"menu_name"`
	Description           string                 `json:"description"`
	EstimatedCookingTime  int                    `json:"estimated_cooking_time"`
	Difficulty            string                 `json:"difficulty"`
	ServingSize           int                    `json:"serving_size"`
	IngredientsUsed       []UsedIngredient       `json:"ingredients_used"`
	AdditionalIngredients []AdditionalIngredient `json:"additional_ingredients,omitempty"`
	CookingSteps          []CookingStep          `json:"cooking_steps"`
	NutritionalInfo       *NutritionalInfo       `json:"nutritional_info,omitempty"`
	Tips                  []string               `json:"tips,omitempty"`
	SafetyWarnings        []string               `json:"safety_warnings,omitempty"`
}

type UsedIngredient struct {
	Name        string `json:"name"`
	Amount      string `json:"amount"`
	Preparation string `json:"preparation,omitempty"`
}

type AdditionalIngredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Note   string `json:"note,omitempty"`
}

type CookingStep struct {
	Step        int    `json:"step"`
	Instruction string `json:"instruction"`
	TimeMinutes int    `json:"time_minutes,omitempty"`
}

type NutritionalInfo struct {
	CaloriesPerServing int    `json:"calories_per_serving"`
	Protein            string `json:"protein"`
	Carbohydrates      string `json:"carbohydrates"`
	Fat                string `json:"fat"`
}

type UsageStats struct {
	PriorityIngredientsUsed   int `json:"priority_ingredients_used"`
	TotalIngredientsAvailable int `json:"total_ingredients_available"`
	WasteReductionScore       int `json:"waste_reduction_score"`
}
