// ABOUTME: Display formatting for money and activity timestamps
// ABOUTME: Shared by the CLI, TUI and dashboard renderers
package models

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatCurrency renders d with thousands separators and only as many
// decimals as it needs, e.g. "$2,500" or "$1,234.5".
func FormatCurrency(d decimal.Decimal) string {
	f, _ := d.Float64()
	if f < 0 {
		return "-$" + humanize.Commaf(-f)
	}
	return "$" + humanize.Commaf(f)
}

// FormatMoney renders d with two decimals, e.g. "$200.00".
func FormatMoney(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	if f < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -f)
	}
	return "$" + humanize.FormatFloat("#,###.##", f)
}

// RelativeTime describes t relative to now for the activity feed.
func RelativeTime(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < time.Hour:
		return "Just now"
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 48*time.Hour:
		return "Yesterday"
	default:
		return t.Local().Format("Jan 2, 2006")
	}
}
