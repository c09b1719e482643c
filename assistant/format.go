package assistant

import (
	"fmt"
	"sort"
	"strings"

	"github.com/marhaba-travel/marhaba/budget"
	"github.com/marhaba-travel/marhaba/core"
	"github.com/marhaba-travel/marhaba/knowledge"
	"github.com/marhaba-travel/marhaba/prayer"
)

// formatSearch renders a knowledge result as reply text.
func formatSearch(result knowledge.Result) string {
	if result.Empty() {
		return "I couldn't find anything about that in my UAE knowledge base. " + capabilitiesHint
	}
	sections := make([]string, 0, len(result.Matches))
	for _, m := range result.Matches {
		sections = append(sections, formatMatch(m))
	}
	return strings.TrimRight(strings.Join(sections, "\n"), "\n")
}

func formatMatch(m knowledge.Match) string {
	var sb strings.Builder
	display := core.DisplayName(m.City)
	for _, topic := range m.Topics {
		switch topic {
		case knowledge.TopicOverview:
			fmt.Fprintf(&sb, "**%s**\n%s\n\nTop attractions:\n", display, m.Record.Description)
			writeAttractions(&sb, m.Record.Attractions)
			fmt.Fprintf(&sb, "\nBest time to visit: %s\n", m.Record.BestTime)
		case knowledge.TopicAttractions:
			fmt.Fprintf(&sb, "**Attractions in %s:**\n", display)
			writeAttractions(&sb, m.Record.Attractions)
		case knowledge.TopicCulture:
			fmt.Fprintf(&sb, "**Cultural tips for %s:**\n", display)
			for _, tip := range m.Record.CulturalTips {
				fmt.Fprintf(&sb, "- %s\n", tip)
			}
		case knowledge.TopicActivities:
			fmt.Fprintf(&sb, "**Activities in %s:**\n", display)
			for _, category := range sortedCategories(m.Record.Activities) {
				fmt.Fprintf(&sb, "- %s: %s\n", category, strings.Join(m.Record.Activities[category], ", "))
			}
		case knowledge.TopicWeather:
			fmt.Fprintf(&sb, "**Weather in %s:** winter %s, summer %s\n",
				display, m.Record.TemperatureWinter, m.Record.TemperatureSummer)
		case knowledge.TopicBestTime:
			fmt.Fprintf(&sb, "**Best time to visit %s:** %s\n", display, m.Record.BestTime)
		}
	}
	return sb.String()
}

func writeAttractions(sb *strings.Builder, attractions []knowledge.Attraction) {
	for _, a := range attractions {
		fmt.Fprintf(sb, "- %s: %s\n", a.Name, a.Description)
	}
}

func sortedCategories(activities map[string][]string) []string {
	categories := make([]string, 0, len(activities))
	for category := range activities {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// formatSchedule renders a day's prayer times.
func formatSchedule(sched *prayer.Schedule) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**Prayer Times for %s (%s):**\n",
		core.DisplayName(sched.City), sched.Date.Format(prayer.DateLayout))
	for _, e := range sched.Entries {
		fmt.Fprintf(&sb, "- %s: %s\n", e.Name, e.Time)
	}
	sb.WriteString("\n*Times are approximate. Please check locally for exact times.*")
	return sb.String()
}

// formatEstimate renders a trip budget breakdown.
func formatEstimate(est *budget.Estimate) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**Trip Budget Estimate for %s**\n", core.DisplayName(est.City))
	fmt.Fprintf(&sb, "Style: %s | Duration: %d days\n\n", est.Style, est.Days)
	fmt.Fprintf(&sb, "- Base daily cost: %s\n", budget.FormatAED(est.BaseDaily))
	fmt.Fprintf(&sb, "- City multiplier: x%.2f\n", est.Multiplier)
	fmt.Fprintf(&sb, "- Daily total: %s\n", budget.FormatAED(est.DailyTotal))
	fmt.Fprintf(&sb, "- Trip total: %s (about %s)\n\n", budget.FormatAED(est.TripTotal), budget.FormatUSD(est.USDTotal))
	fmt.Fprintf(&sb, "Included in the %s style:\n", est.Style)
	for _, item := range est.Inclusions {
		fmt.Fprintf(&sb, "- %s\n", item)
	}
	sb.WriteString("\n*This is a rough estimate. Actual costs vary by season and booking choices.*")
	return sb.String()
}
