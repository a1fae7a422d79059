package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCurrency is the canonical display currency. Amounts are stored as
// whole UGX decimals; conversion to other currencies happens upstream of
// formatting, never inside it.
const DefaultCurrency = "UGX"

// message printers are not safe for concurrent use.
var (
	printerMu sync.Mutex
	printer   = message.NewPrinter(language.English)
)

// FormatNumberWithComma renders n with locale digit grouping:
// 1234567 -> "1,234,567".
func FormatNumberWithComma(n int64) string {
	printerMu.Lock()
	defer printerMu.Unlock()
	return printer.Sprintf("%d", n)
}

// FormatOptionalNumber is the nil-tolerant variant used where the source
// value may be absent; it returns an empty string instead of formatting
// a zero.
func FormatOptionalNumber(n *int64) string {
	if n == nil {
		return ""
	}
	return FormatNumberWithComma(*n)
}

// FormatDecimalWithComma groups the integer digits of d and keeps any
// fractional part verbatim: 1234567.5 -> "1,234,567.5".
func FormatDecimalWithComma(d decimal.Decimal) string {
	neg := d.IsNegative()
	abs := d.Abs()
	intPart := abs.Truncate(0)
	out := FormatNumberWithComma(intPart.IntPart())
	if frac := abs.Sub(intPart); !frac.IsZero() {
		out += strings.TrimPrefix(frac.String(), "0")
	}
	if neg {
		out = "-" + out
	}
	return out
}

// FormatCurrency renders an amount as "{code} {grouped amount}". An empty
// code falls back to DefaultCurrency: FormatCurrency(5000, "") -> "UGX 5,000".
func FormatCurrency(amount decimal.Decimal, code string) string {
	if code == "" {
		code = DefaultCurrency
	}
	return code + " " + FormatDecimalWithComma(amount)
}

// FormatPercentage renders v with a fixed number of decimals and a percent
// suffix. Negative decimals fall back to one.
func FormatPercentage(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 1
	}
	return fmt.Sprintf("%.*f%%", decimals, v)
}

// AbbreviateNumber shortens large magnitudes to one decimal with an M or K
// suffix; smaller values are returned unchanged.
func AbbreviateNumber(n float64) string {
	switch {
	case math.Abs(n) >= 1e6:
		return fmt.Sprintf("%.1fM", n/1e6)
	case math.Abs(n) >= 1e3:
		return fmt.Sprintf("%.1fK", n/1e3)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// FormatDate renders a timestamp the way detail panes show it:
// "Nov 8, 2024, 10:30 AM".
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006, 3:04 PM")
}

// FormatDateShort renders just month and day: "Nov 8".
func FormatDateShort(t time.Time) string {
	return t.Format("Jan 2")
}

// RelativeTime buckets the time elapsed since t for feed and notification
// rows. See RelativeTimeAt for the bucket boundaries.
func RelativeTime(t time.Time) string {
	return RelativeTimeAt(t, time.Now())
}

// RelativeTimeAt is RelativeTime with an explicit reference instant:
// under a minute is "Just now", then minute/hour/day buckets, and anything
// over seven days falls back to the short absolute date.
func RelativeTimeAt(t, now time.Time) string {
	diff := now.Sub(t)
	if diff < 0 {
		diff = 0
	}
	minutes := int(diff.Minutes())
	hours := int(diff.Hours())
	days := hours / 24
	switch {
	case days > 7:
		return FormatDateShort(t)
	case days > 0:
		return fmt.Sprintf("%dd ago", days)
	case hours > 0:
		return fmt.Sprintf("%dh ago", hours)
	case minutes > 0:
		return fmt.Sprintf("%dm ago", minutes)
	}
	return "Just now"
}
