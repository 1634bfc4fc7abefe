package domain

import "strings"

// claimCodes maps claim names to the single-letter codes printed on the
// Tokyo District Court bankruptcy form.
var claimCodes = map[string]string{
	"貸付金": "A",
	"立替金": "B",
	"保証金": "C",
	"その他": "D",
}

// defaultClaimCode is used for any claim name outside the table.
const defaultClaimCode = "D"

// ClaimCode converts a claim name to its form code. Unknown names,
// including the empty string, map to the default code. Total function.
func ClaimCode(claimName string) string {
	if code, ok := claimCodes[strings.TrimSpace(claimName)]; ok {
		return code
	}
	return defaultClaimCode
}
