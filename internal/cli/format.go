// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatShare formats an integer vote share or allocation, e.g. "35%".
func FormatShare(n int) string {
	return strconv.Itoa(n) + "%"
}

// FormatRate formats a tax rate with one decimal, e.g. "21.5%".
func FormatRate(r float64) string {
	return fmt.Sprintf("%.1f%%", r)
}

// FormatScore formats a 0-100 security score.
func FormatScore(s float64) string {
	return fmt.Sprintf("%.1f/100", s)
}

// FormatLean formats a weighted lean, or "n/a" without a coalition.
func FormatLean(lean float64, ok bool) string {
	if !ok {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", lean)
}

// FormatSigned formats a change with an explicit sign, e.g. "+5", "-3", "0".
func FormatSigned(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatAgo formats the time since t, e.g. "3h ago", "2d ago".
func FormatAgo(t, now time.Time) string {
	secs := int64(now.Sub(t).Seconds())
	switch {
	case secs < 60:
		return "just now"
	case secs < 3600:
		return fmt.Sprintf("%dm ago", secs/60)
	case secs < 86400:
		return fmt.Sprintf("%dh ago", secs/3600)
	default:
		return fmt.Sprintf("%dd ago", secs/86400)
	}
}

// ShortID trims a journal ID for display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
