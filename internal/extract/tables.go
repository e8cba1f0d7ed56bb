package extract

import (
	"strconv"
	"strings"

	"invoiceflow/internal/models"
)

// TableExtractor supplies zero or more invoice line items per document.
// Finding no table is a valid result, not an error.
type TableExtractor interface {
	ExtractLineItems(text string) []models.LineItem
}

// LineTableExtractor parses line items out of extracted invoice text. PDF
// text extraction flattens tables into lines, so this works line-oriented:
// it looks for a header row naming description/quantity/amount columns, then
// reads data rows with trailing numeric columns until the items block ends.
type LineTableExtractor struct{}

var headerWords = []string{"description", "item", "product"}
var amountWords = []string{"amount", "total", "price", "qty", "quantity", "rate"}

// summaryWords end the items block; those rows belong to the invoice footer.
var summaryWords = []string{"subtotal", "sub-total", "total", "tax", "gst", "vat", "balance", "discount", "grand"}

func (LineTableExtractor) ExtractLineItems(text string) []models.LineItem {
	lines := strings.Split(text, "\n")
	start := -1
	for i, line := range lines {
		if isHeaderLine(line) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	items := make([]models.LineItem, 0)
	for _, line := range lines[start:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(items) > 0 {
				break
			}
			continue
		}
		if isSummaryLine(trimmed) {
			break
		}
		item, ok := parseItemRow(trimmed)
		if !ok {
			continue
		}
		item.LineNo = len(items) + 1
		items = append(items, item)
	}
	return items
}

// parseItemRow splits a row into a leading description and trailing numeric
// columns. One number is the row total; two are quantity and total; three or
// more are read as quantity, unit price, total.
func parseItemRow(line string) (models.LineItem, bool) {
	fields := strings.Fields(line)
	nums := make([]float64, 0, 3)
	end := len(fields)
	for end > 0 {
		n, ok := parseAmount(fields[end-1])
		if !ok {
			break
		}
		nums = append([]float64{n}, nums...)
		end--
	}
	desc := strings.Join(fields[:end], " ")
	if desc == "" || len(nums) == 0 {
		return models.LineItem{}, false
	}
	item := models.LineItem{Description: desc, Total: nums[len(nums)-1]}
	switch {
	case len(nums) >= 3:
		item.Quantity = nums[len(nums)-3]
		item.UnitPrice = nums[len(nums)-2]
	case len(nums) == 2:
		item.Quantity = nums[0]
	}
	return item, true
}

// parseAmount reads a numeric column value, tolerating currency symbols and
// thousands separators ("$1,299.00", "₹450").
func parseAmount(s string) (float64, bool) {
	s = strings.Trim(s, "$€£₹")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isHeaderLine(line string) bool {
	low := strings.ToLower(line)
	if !containsAny(low, headerWords) {
		return false
	}
	return containsAny(low, amountWords)
}

func isSummaryLine(line string) bool {
	low := strings.ToLower(line)
	first := low
	if i := strings.IndexAny(low, " \t:"); i > 0 {
		first = low[:i]
	}
	for _, w := range summaryWords {
		if strings.HasPrefix(first, w) {
			return true
		}
	}
	return false
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
