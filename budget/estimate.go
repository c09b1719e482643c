// Package budget estimates trip costs for the supported cities from
// static per-style base rates and per-city cost multipliers.
package budget

import (
	"fmt"
	"strings"

	"github.com/marhaba-travel/marhaba/core"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Style is a travel style with a fixed base daily cost.
type Style string

const (
	StyleBudget   Style = "budget"
	StyleStandard Style = "standard"
	StyleLuxury   Style = "luxury"
)

// AEDPerUSD is the fixed conversion rate behind the USD estimate.
const AEDPerUSD = 3.67

// Base daily costs in AED.
var baseCosts = map[Style]float64{
	StyleBudget:   150,
	StyleStandard: 400,
	StyleLuxury:   1000,
}

// City cost multipliers, dimensionless.
var multipliers = map[string]float64{
	"dubai":          1.2,
	"abu dhabi":      1.1,
	"sharjah":        0.9,
	"ajman":          0.8,
	"ras al khaimah": 0.85,
	"fujairah":       0.8,
	"umm al quwain":  0.75,
}

// inclusions describes what each style's daily rate covers.
var inclusions = map[Style][]string{
	StyleBudget: {
		"Hostel or budget hotel stay",
		"Public transport and shared taxis",
		"Street food and casual dining",
		"Free and low-cost attractions",
	},
	StyleStandard: {
		"3-4 star hotel stay",
		"Mix of taxis and public transport",
		"Mid-range restaurants",
		"Entry to major paid attractions",
	},
	StyleLuxury: {
		"5-star hotel or resort stay",
		"Private transfers and chauffeured cars",
		"Fine dining",
		"Premium experiences and private tours",
	},
}

// ParseStyle validates a travel style string. Matching is
// case-insensitive; anything outside the three styles fails with
// core.ErrInvalidStyle.
func ParseStyle(s string) (Style, error) {
	style := Style(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := baseCosts[style]; !ok {
		return "", fmt.Errorf("%w: %q (expected budget, standard, or luxury)", core.ErrInvalidStyle, s)
	}
	return style, nil
}

// Styles returns the valid styles in ascending cost order.
func Styles() []Style {
	return []Style{StyleBudget, StyleStandard, StyleLuxury}
}

// Estimate is the itemized cost breakdown for a trip.
type Estimate struct {
	City       string
	Days       int
	Style      Style
	BaseDaily  float64 // AED, before the city multiplier
	Multiplier float64
	DailyTotal float64 // AED
	TripTotal  float64 // AED
	USDTotal   float64
	Inclusions []string
}

// Calculate validates its inputs and produces the cost breakdown.
// Validation order: style, then days, then city.
func Calculate(city string, days int, style Style) (*Estimate, error) {
	base, ok := baseCosts[style]
	if !ok {
		return nil, fmt.Errorf("%w: %q (expected budget, standard, or luxury)", core.ErrInvalidStyle, string(style))
	}
	if days < 1 {
		return nil, fmt.Errorf("%w: %d days (must be at least 1)", core.ErrInvalidDuration, days)
	}
	key := core.NormalizeCity(city)
	mult, ok := multipliers[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownCity, city)
	}

	daily := base * mult
	trip := daily * float64(days)

	return &Estimate{
		City:       key,
		Days:       days,
		Style:      style,
		BaseDaily:  base,
		Multiplier: mult,
		DailyTotal: daily,
		TripTotal:  trip,
		USDTotal:   trip / AEDPerUSD,
		Inclusions: inclusions[style],
	}, nil
}

var (
	enPrinter = message.NewPrinter(language.English)
	aed       = currency.MustParseISO("AED")
	usd       = currency.MustParseISO("USD")
)

// FormatAED renders an AED amount with its ISO code and English digit
// grouping.
func FormatAED(amount float64) string {
	return enPrinter.Sprintf("%v %v", aed, number.Decimal(amount, number.MaxFractionDigits(2)))
}

// FormatUSD renders a USD amount the same way.
func FormatUSD(amount float64) string {
	return enPrinter.Sprintf("%v %v", usd, number.Decimal(amount, number.MaxFractionDigits(2)))
}
