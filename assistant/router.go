package assistant

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/marhaba-travel/marhaba/budget"
	"github.com/marhaba-travel/marhaba/core"
)

// Intent classifies what a user query is asking for.
type Intent string

const (
	IntentPrayer    Intent = "prayer"
	IntentBudget    Intent = "budget"
	IntentKnowledge Intent = "knowledge"
	IntentTripPlan  Intent = "trip_plan"
	IntentUnknown   Intent = "unknown"
)

// Keyword sets checked by substring containment on the lowered query.
var (
	prayerKeywords = []string{
		"prayer", "salah", "salat", "namaz",
		"fajr", "dhuhr", "asr", "maghrib", "isha",
	}
	budgetKeywords = []string{
		"budget", "cost", "price", "expense", "how much", "afford", "spend", "cheap",
	}
	knowledgeKeywords = []string{
		"attraction", "things to do", "what to see", "landmark",
		"culture", "cultural", "tips", "etiquette", "ramadan",
		"activities", "weather", "climate", "temperature", "best time",
	}
	tripPlanKeywords = []string{
		"plan", "itinerary", "trip", "visit", "travel",
		"recommend", "suggest", "schedule", "day by day",
	}
)

// rule pairs a pure predicate over the lowered query with the intent
// it selects.
type rule struct {
	intent  Intent
	matches func(lowered string) bool
}

// rules run in fixed priority order. Specific lookup keywords outrank
// generic planning words, so "plan a budget trip to Dubai" stays a
// budget query even though it also says "plan" and "trip".
var rules = []rule{
	{IntentPrayer, func(q string) bool { return containsAny(q, prayerKeywords) }},
	{IntentBudget, func(q string) bool { return containsAny(q, budgetKeywords) }},
	{IntentKnowledge, func(q string) bool { return containsAny(q, knowledgeKeywords) }},
	{IntentTripPlan, func(q string) bool { return containsAny(q, tripPlanKeywords) }},
}

// Classify assigns a query to the first matching intent.
func Classify(text string) Intent {
	lowered := strings.ToLower(text)
	for _, r := range rules {
		if r.matches(lowered) {
			return r.intent
		}
	}
	return IntentUnknown
}

func containsAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// resolveCity finds a city in the query, falling back to the session's
// last mentioned city for follow-ups like "and prayer times there?".
func resolveCity(lowered string, session *Session) (string, bool) {
	if city, _, ok := core.FindCityIn(lowered); ok {
		return city, true
	}
	if session != nil && session.LastCity != "" {
		return session.LastCity, true
	}
	return "", false
}

var daysPattern = regexp.MustCompile(`(\d+)\s*-?\s*(?:day|night)`)

// extractDays pulls a trip length like "5 days" or "3-day" from the
// query. Returns 0 when no length is mentioned.
func extractDays(lowered string) int {
	m := daysPattern.FindStringSubmatch(lowered)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// extractStyle reads a travel style from the query, accepting the
// style names plus a few common synonyms.
func extractStyle(lowered string) (budget.Style, bool) {
	for _, style := range budget.Styles() {
		if strings.Contains(lowered, string(style)) {
			return style, true
		}
	}
	switch {
	case containsAny(lowered, []string{"cheap", "backpack", "low cost", "low-cost"}):
		return budget.StyleBudget, true
	case containsAny(lowered, []string{"five star", "5 star", "5-star", "premium", "high end", "high-end"}):
		return budget.StyleLuxury, true
	case containsAny(lowered, []string{"mid range", "mid-range", "moderate"}):
		return budget.StyleStandard, true
	}
	return "", false
}

var datePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// extractDate pulls an ISO date from the query, empty when absent.
func extractDate(text string) string {
	return datePattern.FindString(text)
}
