package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
	"go.uber.org/zap"
)

type OCRService struct {
	geminiService *GeminiService
	logger        *zap.Logger
}

// NewOCRService creates an OCR service that reads receipts from images and
// PDF files. PDFs are read directly with go-fitz; images go through the
// Gemini vision model.
func NewOCRService(geminiService *GeminiService, logger *zap.Logger) *OCRService {
	return &OCRService{
		geminiService: geminiService,
		logger:        logger,
	}
}

// ExtractText extracts receipt text from a file on disk.
// Supported formats: .jpg, .jpeg, .png, .pdf
func (s *OCRService) ExtractText(ctx context.Context, filePath string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	var text string
	var err error

	switch ext {
	case ".pdf":
		text, err = s.extractTextFromPDF(filePath)
	case ".jpg", ".jpeg", ".png":
		text, err = s.extractTextFromImage(ctx, filePath, ext)
	default:
		return "", fmt.Errorf("unsupported file format: %s (supported: jpg, jpeg, png, pdf)", ext)
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)

	s.logger.Info("OCR extraction completed",
		zap.String("file", filepath.Base(filePath)),
		zap.String("method", s.extractionMethod(ext)),
		zap.Int("text_length", len(text)),
	)

	return text, nil
}

func (s *OCRService) extractTextFromImage(ctx context.Context, imagePath, ext string) (string, error) {
	imageData, err := os.ReadFile(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	format := "jpeg"
	if ext == ".png" {
		format = "png"
	}

	text, err := s.geminiService.ExtractTextFromImage(ctx, imageData, format)
	if err != nil {
		return "", fmt.Errorf("failed to extract text with gemini vision: %w", err)
	}
	return text, nil
}

// extractTextFromPDF extracts text from PDF using the go-fitz library.
func (s *OCRService) extractTextFromPDF(pdfPath string) (string, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var textBuilder strings.Builder

	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			s.logger.Warn("Failed to extract text from page",
				zap.Int("page", i+1),
				zap.Error(err),
			)
			continue
		}

		if pageText != "" {
			textBuilder.WriteString(pageText)
			textBuilder.WriteString("\n")
		}
	}

	return sanitizeUTF8(textBuilder.String()), nil
}

func (s *OCRService) extractionMethod(ext string) string {
	if ext == ".pdf" {
		return "go-fitz"
	}
	return "gemini-vision"
}

// ExtractTextFromReader spools an uploaded receipt to a temp file and runs
// extraction on it. The format is the request Content-Type.
func (s *OCRService) ExtractTextFromReader(ctx context.Context, reader io.Reader, format string) (string, error) {
	ext := ".jpg"
	switch format {
	case "image/png":
		ext = ".png"
	case "application/pdf":
		ext = ".pdf"
	case "image/jpeg", "image/jpg":
		ext = ".jpg"
	}

	tmpFile, err := os.CreateTemp("", "receipt-*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := io.Copy(tmpFile, reader); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("failed to copy file data: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	return s.ExtractText(ctx, tmpFile.Name())
}
