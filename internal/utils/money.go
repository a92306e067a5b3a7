package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PlatformFee returns the commission retained from a payment amount at the
// given rate, rounded to the nearest rupee.
func PlatformFee(amount int64, rate float64) int64 {
	return int64(math.Round(float64(amount) * rate))
}

// FormatINR renders an integer rupee amount with Indian digit grouping,
// e.g. 1234567 -> "Rs 12,34,567".
func FormatINR(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%sRs %s", sign, groupIndian(amount))
}

// ParseINRToInt parses "Rs 1,00,000", "₹1000" or "1000" into whole rupees.
func ParseINRToInt(s string) (int64, error) {
	s = strings.TrimSpace(s)
	low := strings.ToLower(s)
	switch {
	case strings.HasPrefix(low, "rs."):
		s = s[3:]
	case strings.HasPrefix(low, "rs"):
		s = s[2:]
	default:
		s = strings.TrimPrefix(s, "₹")
	}
	replacer := strings.NewReplacer(",", "", " ", "")
	s = replacer.Replace(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("invalid rupee amount")
	}
	return strconv.ParseInt(s, 10, 64)
}

// groupIndian inserts separators in the 3-2-2 pattern: 12,34,567.
func groupIndian(n int64) string {
	str := strconv.FormatInt(n, 10)
	if len(str) <= 3 {
		return str
	}
	head := str[:len(str)-3]
	tail := str[len(str)-3:]
	var out strings.Builder
	for i, c := range head {
		if i != 0 && (len(head)-i)%2 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	out.WriteByte(',')
	out.WriteString(tail)
	return out.String()
}
