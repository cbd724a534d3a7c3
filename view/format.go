// Package view turns provider records into display rows for the dashboard
// templates. Everything here is pure: no I/O, no shared state.
package view

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"stockdash/model"
)

// Change classes used by the templates for colouring.
const (
	Increase = "increase"
	Decrease = "decrease"
	Neutral  = "neutral"
)

// Classify returns Increase for v > 0, Decrease for v < 0, Neutral otherwise.
// Non-finite values are Neutral.
func Classify(v float64) string {
	switch {
	case !finite(v):
		return Neutral
	case v > 0:
		return Increase
	case v < 0:
		return Decrease
	default:
		return Neutral
	}
}

// FormatCurrency formats a price as $X.XX, "$N/A" when not finite.
func FormatCurrency(v float64) string {
	if !finite(v) {
		return "$" + model.Unavailable
	}
	return "$" + decimal.NewFromFloat(v).StringFixed(2)
}

// FormatOptionalCurrency formats a possibly missing price, "$N/A" when nil.
func FormatOptionalCurrency(v *float64) string {
	if v == nil {
		return "$" + model.Unavailable
	}
	return FormatCurrency(*v)
}

// FormatSignedChange formats an absolute change as "+X.XX" / "-X.XX".
func FormatSignedChange(v float64) string {
	if !finite(v) {
		return model.Unavailable
	}
	d := decimal.NewFromFloat(v)
	if d.IsPositive() {
		return "+" + d.StringFixed(2)
	}
	return d.StringFixed(2)
}

func FormatPercent(v float64) string {
	if !finite(v) {
		return model.Unavailable
	}
	return decimal.NewFromFloat(v).StringFixed(2) + "%"
}

// FormatVolume formats a share count with grouping separators.
func FormatVolume(v int64) string {
	return humanize.Comma(v)
}

// PercentChange is (last - open) / open * 100, or 0 when open is 0.
func PercentChange(open, last float64) float64 {
	if open == 0 {
		return 0
	}
	return (last - open) / open * 100
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "s"
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
