package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"ssakpotato/internal/dto"
	"ssakpotato/pkg/config"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// RecipeGenerator is what the recipe handler depends on.
type RecipeGenerator interface {
	GenerateRecipe(ctx context.Context, req *dto.GenerateRecipeRequest) *dto.GenerateRecipeResponse
}

// jsonGenerator is the slice of GeminiService the recipe service needs.
type jsonGenerator interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// RecipeService turns a list of expiring ingredients into a cooked recipe.
// Generation failures of any kind (model down, open breaker, unparseable
// output) produce a fallback response instead of an error, so callers always
// get something to show the user.
type RecipeService struct {
	generator jsonGenerator
	breaker   *gobreaker.CircuitBreaker[string]
	logger    *zap.Logger
}

func NewRecipeService(generator jsonGenerator, cfg *config.AIServiceConfig, logger *zap.Logger) *RecipeService {
	s := &RecipeService{
		generator: generator,
		logger:    logger,
	}

	if cfg.BreakerEnabled {
		s.breaker = gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
			Name:    "gemini-recipe",
			Timeout: cfg.BreakerTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("Circuit breaker state changed",
					zap.String("breaker", name),
					zap.String("from", from.String()),
					zap.String("to", to.String()),
				)
			},
		})
	}

	return s
}

func (s *RecipeService) GenerateRecipe(ctx context.Context, req *dto.GenerateRecipeRequest) *dto.GenerateRecipeResponse {
	if len(req.Ingredients) == 0 {
		return s.fallbackResponse("no ingredients provided")
	}

	prompt := buildRecipePrompt(req)

	raw, err := s.generate(ctx, prompt)
	if err != nil {
		s.logger.Error("Recipe generation failed", zap.Error(err))
		return s.fallbackResponse(err.Error())
	}

	var recipe dto.Recipe
	if err := json.Unmarshal([]byte(raw), &recipe); err != nil {
		s.logger.Error("Failed to parse recipe JSON",
			zap.Error(err),
			zap.Int("response_length", len(raw)),
		)
		return s.fallbackResponse("model returned unparseable output")
	}

	if recipe.MenuName == "" || len(recipe.CookingSteps) == 0 {
		s.logger.Error("Recipe response is incomplete",
			zap.String("menu_name", recipe.MenuName),
			zap.Int("cooking_steps", len(recipe.CookingSteps)),
		)
		return s.fallbackResponse("model returned an incomplete recipe")
	}

	s.logger.Info("Recipe generated",
		zap.String("menu_name", recipe.MenuName),
		zap.Int("ingredients_used", len(recipe.IngredientsUsed)),
	)

	return &dto.GenerateRecipeResponse{
		Success:    true,
		Recipe:     &recipe,
		UsageStats: usageStats(req, &recipe),
	}
}

func (s *RecipeService) generate(ctx context.Context, prompt string) (string, error) {
	if s.breaker == nil {
		return s.generator.GenerateJSON(ctx, prompt)
	}
	return s.breaker.Execute(func() (string, error) {
		return s.generator.GenerateJSON(ctx, prompt)
	})
}

// fallbackResponse is the fixed answer returned whenever a recipe cannot be
// generated. It always carries at least one cookable suggestion.
func (s *RecipeService) fallbackResponse(details string) *dto.GenerateRecipeResponse {
	return &dto.GenerateRecipeResponse{
		Success: false,
		Error: &dto.GenerationError{
			Code:    "GENERATION_FAILED",
			Message: "레시피 생성에 실패했습니다. 잠시 후 다시 시도해주세요.",
			Details: details,
		},
		FallbackSuggestions: []dto.FallbackSuggestion{
			{
				MenuName:    "달걀프라이와 간장계란밥",
				Reason:      "대부분의 냉장고에 있는 재료로 빠르게 만들 수 있어요",
				Ingredients: []string{"달걀", "밥", "간장", "참기름"},
			},
		},
	}
}

func buildRecipePrompt(req *dto.GenerateRecipeRequest) string {
	// Soonest-expiring ingredients first so the model prioritizes them.
	ingredients := make([]dto.RecipeIngredient, len(req.Ingredients))
	copy(ingredients, req.Ingredients)
	sort.SliceStable(ingredients, func(i, j int) bool {
		if ingredients[i].PriorityScore != ingredients[j].PriorityScore {
			return ingredients[i].PriorityScore > ingredients[j].PriorityScore
		}
		return ingredients[i].DaysUntilExpiry < ingredients[j].DaysUntilExpiry
	})

	var b strings.Builder
	b.WriteString("당신은 한국 가정식 전문 요리사입니다. 냉장고 재료로 음식물 쓰레기를 줄이는 레시피를 만들어주세요.\n\n")
	b.WriteString("## 사용 가능한 재료 (유통기한 임박 순서)\n")
	for _, ing := range ingredients {
		fmt.Fprintf(&b, "- %s", ing.Name)
		if ing.Amount != "" {
			fmt.Fprintf(&b, " (%s)", ing.Amount)
		}
		if ing.DaysUntilExpiry > 0 {
			fmt.Fprintf(&b, " - 유통기한 %d일 남음", ing.DaysUntilExpiry)
		} else if ing.DaysUntilExpiry == 0 {
			b.WriteString(" - 오늘까지")
		}
		b.WriteString("\n")
	}

	if prefs := req.UserPreferences; prefs != nil {
		b.WriteString("\n## 요리 조건\n")
		if prefs.ServingSize > 0 {
			fmt.Fprintf(&b, "- 인분: %d인분\n", prefs.ServingSize)
		}
		if prefs.Difficulty != "" {
			fmt.Fprintf(&b, "- 난이도: %s\n", prefs.Difficulty)
		}
		if prefs.MaxCookingMin > 0 {
			fmt.Fprintf(&b, "- 최대 조리 시간: %d분\n", prefs.MaxCookingMin)
		}
		if len(prefs.Dislikes) > 0 {
			fmt.Fprintf(&b, "- 제외할 재료: %s\n", strings.Join(prefs.Dislikes, ", "))
		}
	}

	if req.AdditionalRequirements != "" {
		fmt.Fprintf(&b, "\n## 추가 요청사항\n%s\n", req.AdditionalRequirements)
	}

	b.WriteString(`
## 응답 형식
반드시 아래 JSON 형식으로만 응답하세요. 다른 텍스트는 포함하지 마세요.

{
  "menu_name": "요리 이름",
  "description": "요리 설명 (1-2문장)",
  "estimated_cooking_time": 조리시간(분, 숫자),
  "difficulty": "쉬움|보통|어려움",
  "serving_size": 인분수(숫자),
  "ingredients_used": [{"name": "재료명", "amount": "분량", "preparation": "손질법"}],
  "additional_ingredients": [{"name": "재료명", "amount": "분량", "note": "비고"}],
  "cooking_steps": [{"step": 1, "instruction": "조리 방법", "time_minutes": 소요시간}],
  "nutritional_info": {"calories_per_serving": 칼로리, "protein": "단백질", "carbohydrates": "탄수화물", "fat": "지방"},
  "tips": ["요리 팁"],
  "safety_warnings": ["유통기한 임박 재료 관련 주의사항"]
}

## 규칙
- 유통기한이 임박한 재료를 우선 사용하세요
- 목록에 없는 재료는 additional_ingredients에 넣으세요
- 유통기한이 지난 재료 사용 시 safety_warnings에 주의사항을 적으세요`)

	return b.String()
}

// usageStats measures how many of the expiring ingredients the recipe
// actually used.
func usageStats(req *dto.GenerateRecipeRequest, recipe *dto.Recipe) *dto.UsageStats {
	used := make(map[string]bool, len(recipe.IngredientsUsed))
	for _, ing := range recipe.IngredientsUsed {
		used[strings.TrimSpace(ing.Name)] = true
	}

	priorityUsed := 0
	for _, ing := range req.Ingredients {
		if used[strings.TrimSpace(ing.Name)] {
			priorityUsed++
		}
	}

	total := len(req.Ingredients)
	score := 0
	if total > 0 {
		score = priorityUsed * 100 / total
	}

	return &dto.UsageStats{
		PriorityIngredientsUsed:   priorityUsed,
		TotalIngredientsAvailable: total,
		WasteReductionScore:       score,
	}
}
