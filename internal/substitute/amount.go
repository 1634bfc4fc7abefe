package substitute

import (
	"strconv"
	"strings"

	"github.com/aikawa-legal/saikengen/internal/core/domain"
	"github.com/aikawa-legal/saikengen/internal/logger"
)

// parseAmount reads a claim amount string, tolerating thousands
// separators. Empty or unparseable amounts count as zero so one bad
// record never aborts a render.
func parseAmount(raw string) float64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if cleaned == "" {
		return 0
	}

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		logger.Warn("unparseable claim amount %q, treating as 0", raw)
		return 0
	}
	return amount
}

// sumAmounts totals the claim amounts of the first n records.
func sumAmounts(records []domain.CreditorRecord, n int) float64 {
	if n > len(records) {
		n = len(records)
	}

	var total float64
	for _, r := range records[:n] {
		total += parseAmount(r.ClaimAmount)
	}
	return total
}

// formatAmount renders an amount as a thousands-grouped integer string.
// Fractions are truncated, matching the form's yen figures.
func formatAmount(amount float64) string {
	return groupThousands(int64(amount))
}

// groupThousands inserts comma separators into an integer.
func groupThousands(n int64) string {
	digits := strconv.FormatInt(n, 10)

	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign = "-"
		digits = digits[1:]
	}

	var b strings.Builder
	b.WriteString(sign)
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteString(",")
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteString(",")
		}
	}
	return b.String()
}
