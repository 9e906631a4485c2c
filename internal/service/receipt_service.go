package service

import (
	"context"
	"io"
	"time"

	"ssakpotato/internal/fridge"

	"go.uber.org/zap"
)

// ReceiptService runs the receipt pipeline: OCR the uploaded file, parse the
// product lines, drop non-food items and classify what remains into draft
// fridge items grouped by category.
type ReceiptService struct {
	ocrService *OCRService
	classifier *ClassifierService
	logger     *zap.Logger
}

func NewReceiptService(ocrService *OCRService, classifier *ClassifierService, logger *zap.Logger) *ReceiptService {
	return &ReceiptService{
		ocrService: ocrService,
		classifier: classifier,
		logger:     logger,
	}
}

// ParseReceipt processes one uploaded receipt. A receipt with no readable
// text or no recognizable food items returns an empty map, not an error.
func (s *ReceiptService) ParseReceipt(ctx context.Context, reader io.Reader, contentType string) (fridge.ClassifiedMap, error) {
	text, err := s.ocrService.ExtractTextFromReader(ctx, reader, contentType)
	if err != nil {
		return nil, err
	}

	return s.ClassifyText(text, time.Now()), nil
}

// ClassifyText turns raw OCR text into classified draft items.
func (s *ReceiptService) ClassifyText(ocrText string, now time.Time) fridge.ClassifiedMap {
	classified := make(fridge.ClassifiedMap)

	lines := MergeDuplicates(ParseReceiptText(ocrText))
	if len(lines) == 0 {
		s.logger.Info("No product lines recognized on receipt")
		return classified
	}

	receiptDate := ExtractReceiptDate(ocrText, now)

	kept := 0
	for _, line := range lines {
		if !s.classifier.IsFood(line.Name) {
			s.logger.Debug("Skipping non-food item", zap.String("name", line.Name))
			continue
		}

		category, item := s.classifier.ClassifyItem(line.Name, line.Quantity, receiptDate)
		classified[category] = append(classified[category], item)
		kept++
	}

	s.logger.Info("Receipt classified",
		zap.Int("parsed_lines", len(lines)),
		zap.Int("food_items", kept),
		zap.Time("receipt_date", receiptDate),
	)

	return classified
}
