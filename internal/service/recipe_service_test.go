package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ssakpotato/internal/dto"
	"ssakpotato/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGenerator struct {
	response string
	err      error
	calls    int
}

func (s *stubGenerator) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	s.calls++
	return s.response, s.err
}

const validRecipeJSON = `{
	"menu_name": "두부 김치찌개",
	"description": "유통기한 임박 두부를 살리는 찌개",
	"estimated_cooking_time": 25,
	"difficulty": "쉬움",
	"serving_size": 2,
	"ingredients_used": [
		{"name": "두부", "amount": "1모"},
		{"name": "우유", "amount": "반 컵"}
	],
	"cooking_steps": [
		{"step": 1, "instruction": "두부를 썬다", "time_minutes": 5},
		{"step": 2, "instruction": "끓인다", "time_minutes": 20}
	]
}`

func newTestRecipeService(gen jsonGenerator, breakerEnabled bool) *RecipeService {
	return NewRecipeService(gen, &config.AIServiceConfig{
		BreakerEnabled: breakerEnabled,
	}, zap.NewNop())
}

func ingredients(names ...string) []dto.RecipeIngredient {
	var out []dto.RecipeIngredient
	for _, n := range names {
		out = append(out, dto.RecipeIngredient{Name: n})
	}
	return out
}

func TestGenerateRecipeSuccess(t *testing.T) {
	gen := &stubGenerator{response: validRecipeJSON}
	s := newTestRecipeService(gen, false)

	resp := s.GenerateRecipe(context.Background(), &dto.GenerateRecipeRequest{
		Ingredients: ingredients("두부", "우유", "양파"),
	})

	require.True(t, resp.Success, "error = %+v", resp.Error)
	require.NotNil(t, resp.Recipe)
	assert.Equal(t, "두부 김치찌개", resp.Recipe.MenuName)
	assert.Len(t, resp.Recipe.CookingSteps, 2)

	stats := resp.UsageStats
	require.NotNil(t, stats)
	assert.Equal(t, 2, stats.PriorityIngredientsUsed)
	assert.Equal(t, 3, stats.TotalIngredientsAvailable)
	assert.Equal(t, 66, stats.WasteReductionScore)
}

func TestGenerateRecipeStripsFences(t *testing.T) {
	gen := &stubGenerator{response: "```json\n" + validRecipeJSON + "\n```"}
	s := newTestRecipeService(gen, false)

	// The fence stripping happens in the generator normally; here we verify
	// the helper directly and the service end to end with pre-fenced input.
	require.Equal(t, byte('{'), StripMarkdownFences(gen.response)[0], "fence left in place")

	gen.response = StripMarkdownFences(gen.response)
	resp := s.GenerateRecipe(context.Background(), &dto.GenerateRecipeRequest{
		Ingredients: ingredients("두부"),
	})
	require.True(t, resp.Success, "error = %+v", resp.Error)
}

func TestStripMarkdownFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"chatter around object", "Here you go:\n{\"a\":1}\nEnjoy!", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripMarkdownFences(tt.in))
		})
	}
}

// Every failure mode must resolve to the fallback envelope: success=false,
// a GENERATION_FAILED error and at least one cookable suggestion. Never a
// bare error.
func TestGenerateRecipeFallback(t *testing.T) {
	tests := []struct {
		name string
		gen  *stubGenerator
		req  *dto.GenerateRecipeRequest
	}{
		{
			"upstream error",
			&stubGenerator{err: errors.New("model unavailable")},
			&dto.GenerateRecipeRequest{Ingredients: ingredients("두부")},
		},
		{
			"unparseable output",
			&stubGenerator{response: "죄송하지만 레시피를 만들 수 없습니다"},
			&dto.GenerateRecipeRequest{Ingredients: ingredients("두부")},
		},
		{
			"incomplete recipe",
			&stubGenerator{response: `{"menu_name":"","cooking_steps":[]}`},
			&dto.GenerateRecipeRequest{Ingredients: ingredients("두부")},
		},
		{
			"no ingredients",
			&stubGenerator{response: validRecipeJSON},
			&dto.GenerateRecipeRequest{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestRecipeService(tt.gen, false)
			resp := s.GenerateRecipe(context.Background(), tt.req)

			require.False(t, resp.Success, "want fallback")
			require.NotNil(t, resp.Error)
			assert.Equal(t, "GENERATION_FAILED", resp.Error.Code)
			assert.NotEmpty(t, resp.Error.Message)
			require.NotEmpty(t, resp.FallbackSuggestions)

			fb := resp.FallbackSuggestions[0]
			assert.Equal(t, "달걀프라이와 간장계란밥", fb.MenuName)
			assert.NotEmpty(t, fb.Ingredients)
		})
	}
}

// After three consecutive failures the breaker opens: the generator is no
// longer called and the caller still receives the fallback envelope.
func TestGenerateRecipeBreakerOpens(t *testing.T) {
	gen := &stubGenerator{err: errors.New("timeout")}
	s := newTestRecipeService(gen, true)
	req := &dto.GenerateRecipeRequest{Ingredients: ingredients("두부")}

	for i := 0; i < 3; i++ {
		resp := s.GenerateRecipe(context.Background(), req)
		require.False(t, resp.Success, "call %d: want fallback", i)
	}
	callsBeforeOpen := gen.calls

	resp := s.GenerateRecipe(context.Background(), req)
	require.False(t, resp.Success, "want fallback with open breaker")
	require.NotEmpty(t, resp.FallbackSuggestions)
	assert.Equal(t, callsBeforeOpen, gen.calls, "generator must not be called once the breaker is open")
}

func TestBuildRecipePromptOrdersByPriority(t *testing.T) {
	req := &dto.GenerateRecipeRequest{
		Ingredients: []dto.RecipeIngredient{
			{Name: "양파", PriorityScore: 1, DaysUntilExpiry: 10},
			{Name: "두부", PriorityScore: 9, DaysUntilExpiry: 0},
			{Name: "우유", PriorityScore: 5, DaysUntilExpiry: 2},
		},
		UserPreferences: &dto.UserPreferences{ServingSize: 2, Dislikes: []string{"오이"}},
	}

	prompt := buildRecipePrompt(req)

	tofu := strings.Index(prompt, "두부")
	milk := strings.Index(prompt, "우유")
	onion := strings.Index(prompt, "양파")
	assert.True(t, tofu < milk && milk < onion,
		"ingredient order wrong: 두부@%d 우유@%d 양파@%d", tofu, milk, onion)
	assert.Contains(t, prompt, "오이", "dislikes missing from prompt")
	assert.Contains(t, prompt, "2인분", "serving size missing from prompt")
}
