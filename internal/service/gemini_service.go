package service

import (
	"context"
	"fmt"
	"strings"

	"ssakpotato/pkg/config"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// GeminiService wraps the Gemini API for the two tasks that need a model:
// reading receipt images (vision) and generating recipes (text, JSON output).
type GeminiService struct {
	client      *genai.Client
	recipeModel *genai.GenerativeModel
	visionModel *genai.GenerativeModel
	logger      *zap.Logger
}

const receiptVisionPrompt = `이 영수증 이미지에서 모든 텍스트를 추출해주세요.

요구사항:
1. 이미지에 보이는 텍스트만 그대로 반환하세요
2. 설명이나 주석을 추가하지 마세요
3. 상품명, 수량, 금액, 날짜를 빠짐없이 포함하세요
4. 줄 구조를 유지하세요 (한 줄에 하나의 항목)
5. 텍스트를 읽을 수 없으면 빈 문자열을 반환하세요`

func NewGeminiService(cfg *config.GeminiConfig, logger *zap.Logger) (*GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	recipeModel := client.GenerativeModel(cfg.RecipeModel)
	recipeModel.ResponseMIMEType = "application/json"
	temperature := float32(0.7)
	recipeModel.Temperature = &temperature

	visionModel := client.GenerativeModel(cfg.VisionModel)

	logger.Info("Gemini client initialized",
		zap.String("recipe_model", cfg.RecipeModel),
		zap.String("vision_model", cfg.VisionModel),
	)

	return &GeminiService{
		client:      client,
		recipeModel: recipeModel,
		visionModel: visionModel,
		logger:      logger,
	}, nil
}

// ExtractTextFromImage sends a receipt image to the vision model and returns
// the raw text it reads. An unreadable image yields an empty string, not an
// error, so the caller can respond with an empty item list.
func (s *GeminiService) ExtractTextFromImage(ctx context.Context, imageData []byte, format string) (string, error) {
	parts := []genai.Part{
		genai.ImageData(format, imageData),
		genai.Text(receiptVisionPrompt),
	}

	resp, err := s.visionModel.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from image: %w", err)
	}

	text := strings.TrimSpace(responseText(resp))
	s.logger.Info("Receipt text extracted",
		zap.Int("text_length", len(text)),
	)
	return sanitizeUTF8(text), nil
}

// GenerateJSON runs a text prompt against the recipe model and returns the
// response with markdown fences stripped, ready for json.Unmarshal.
func (s *GeminiService) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	resp, err := s.recipeModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("no response from gemini")
	}

	return StripMarkdownFences(text), nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var builder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			builder.WriteString(string(text))
		}
	}
	return builder.String()
}

// StripMarkdownFences removes a ```json ... ``` wrapper the model sometimes
// adds around its output, then trims to the outermost JSON object.
func StripMarkdownFences(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1]
	}
	return text
}

func (s *GeminiService) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
