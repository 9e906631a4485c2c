package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ssakpotato/internal/dto"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type stubRecipeGenerator struct {
	resp *dto.GenerateRecipeResponse
}

func (s *stubRecipeGenerator) GenerateRecipe(ctx context.Context, req *dto.GenerateRecipeRequest) *dto.GenerateRecipeResponse {
	return s.resp
}

func newRecipeApp(resp *dto.GenerateRecipeResponse) *fiber.App {
	app := fiber.New()
	handler := NewRecipeHandler(&stubRecipeGenerator{resp: resp}, zap.NewNop())
	app.Post("/api/generate-recipe", handler.Generate)
	return app
}

func TestRecipeHandlerSuccess(t *testing.T) {
	app := newRecipeApp(&dto.GenerateRecipeResponse{
		Success: true,
		Recipe:  &dto.Recipe{MenuName: "두부조림"},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/generate-recipe",
		strings.NewReader(`{"ingredients":[{"name":"두부"}]}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body dto.GenerateRecipeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if !body.Success || body.Recipe == nil || body.Recipe.MenuName != "두부조림" {
		t.Errorf("body = %+v, want successful envelope", body)
	}
}

// A failed generation still answers 200 with the fallback envelope.
func TestRecipeHandlerFallbackEnvelope(t *testing.T) {
	app := newRecipeApp(&dto.GenerateRecipeResponse{
		Success: false,
		Error:   &dto.GenerationError{Code: "GENERATION_FAILED", Message: "실패"},
		FallbackSuggestions: []dto.FallbackSuggestion{
			{MenuName: "달걀프라이와 간장계란밥", Ingredients: []string{"달걀", "밥"}},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/generate-recipe",
		strings.NewReader(`{"ingredients":[{"name":"두부"}]}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 even on generation failure", resp.StatusCode)
	}

	var body dto.GenerateRecipeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Success {
		t.Error("Success = true, want false")
	}
	if len(body.FallbackSuggestions) == 0 {
		t.Error("fallback suggestions missing from envelope")
	}
}

func TestRecipeHandlerBadBody(t *testing.T) {
	app := newRecipeApp(&dto.GenerateRecipeResponse{Success: true})

	req := httptest.NewRequest(http.MethodPost, "/api/generate-recipe",
		strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
