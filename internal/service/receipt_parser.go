package service

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParsedLine is one product line recognized on a receipt.
type ParsedLine struct {
	Name     string
	Quantity int
	Price    int
}

var (
	barcodeLine     = regexp.MustCompile(`^\d{10,}$`)
	itemLinePattern = regexp.MustCompile(`^(\d{3})\s+(.+)$`)
	pricePattern    = regexp.MustCompile(`^\d{1,3}(,\d{3})+$`)
	quantityPattern = regexp.MustCompile(`^\d{1,2}$`)
	nameCleaner     = regexp.MustCompile(`[^가-힣a-zA-Z0-9\s]`)
	spaceCollapser  = regexp.MustCompile(`\s+`)
	wonSuffix       = regexp.MustCompile(`원+$`)

	receiptDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d{4})[-./](\d{1,2})[-./](\d{1,2})`),
		regexp.MustCompile(`(\d{4})년\s*(\d{1,2})월\s*(\d{1,2})일`),
	}
)

// summary markers end the item section of a receipt: everything after the
// totals block is payment noise, not products.
var summaryMarkers = []string{
	"상품금액", "할인금액", "결제대상", "합계", "총액", "결제", "과세", "면세", "부가세",
}

// ParseReceiptText extracts product lines from OCR text. Lines look like
// "001 * 서울우유 1L 1 2,980 원": a three-digit item number, the product
// name, an optional quantity and a comma-grouped price. Barcode and
// discount lines are skipped; the first summary marker stops parsing.
func ParseReceiptText(ocrText string) []ParsedLine {
	var results []ParsedLine
	if strings.TrimSpace(ocrText) == "" {
		return results
	}

lines:
	for _, rawLine := range strings.Split(ocrText, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || barcodeLine.MatchString(line) {
			continue
		}
		if strings.Contains(line, "할인") || strings.Contains(line, "쿠폰") {
			continue
		}
		for _, marker := range summaryMarkers {
			if strings.Contains(line, marker) {
				break lines
			}
		}

		match := itemLinePattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		parsed, ok := parseItemLine(match[2])
		if ok {
			results = append(results, parsed)
		}
	}

	return results
}

func parseItemLine(rest string) (ParsedLine, bool) {
	parts := strings.Fields(rest)
	if len(parts) < 3 {
		return ParsedLine{}, false
	}

	var nameParts []string
	quantity := 0
	price := 0

	// Walk backwards: the price and quantity sit at the end of the line,
	// everything left over is the product name.
	for i := len(parts) - 1; i >= 0; i-- {
		part := parts[i]

		if price == 0 && pricePattern.MatchString(part) {
			price, _ = strconv.Atoi(strings.ReplaceAll(part, ",", ""))
			continue
		}
		if quantity == 0 && quantityPattern.MatchString(part) {
			if qty, err := strconv.Atoi(part); err == nil && qty >= 1 && qty <= 99 {
				quantity = qty
				continue
			}
		}

		nameParts = append([]string{part}, nameParts...)
	}

	if price == 0 {
		return ParsedLine{}, false
	}
	if quantity == 0 {
		quantity = 1
	}

	name := strings.Join(nameParts, " ")
	name = nameCleaner.ReplaceAllString(name, "")
	name = spaceCollapser.ReplaceAllString(strings.TrimSpace(name), " ")
	name = wonSuffix.ReplaceAllString(name, "")

	if len([]rune(name)) < 2 {
		return ParsedLine{}, false
	}

	return ParsedLine{Name: name, Quantity: quantity, Price: price}, true
}

// ExtractReceiptDate scans the OCR text for a purchase date. When no date
// is recognized the current date is returned, matching the behavior of the
// downstream expiry estimates.
func ExtractReceiptDate(ocrText string, now time.Time) time.Time {
	for _, pattern := range receiptDatePatterns {
		match := pattern.FindStringSubmatch(ocrText)
		if match == nil {
			continue
		}
		year, _ := strconv.Atoi(match[1])
		month, _ := strconv.Atoi(match[2])
		day, _ := strconv.Atoi(match[3])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			continue
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
	}
	return now
}

// MergeDuplicates combines lines with the same product name, summing
// quantities while keeping first-seen order.
func MergeDuplicates(lines []ParsedLine) []ParsedLine {
	index := make(map[string]int)
	var merged []ParsedLine

	for _, line := range lines {
		if i, ok := index[line.Name]; ok {
			merged[i].Quantity += line.Quantity
			continue
		}
		index[line.Name] = len(merged)
		merged = append(merged, line)
	}
	return merged
}
