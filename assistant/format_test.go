package assistant

import (
	"testing"

	"github.com/marhaba-travel/marhaba/budget"
	"github.com/marhaba-travel/marhaba/knowledge"
	"github.com/marhaba-travel/marhaba/prayer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() knowledge.CityRecord {
	return knowledge.CityRecord{
		Description:       "The UAE's most visited emirate.",
		Attractions:       []knowledge.Attraction{{Name: "Burj Khalifa", Description: "World's tallest building"}},
		BestTime:          "November to March",
		TemperatureWinter: "14-25C",
		TemperatureSummer: "30-45C",
		CulturalTips:      []string{"Dress modestly in public places"},
		Activities:        map[string][]string{"desert safari": {"Dune bashing", "Camel rides"}},
	}
}

func TestFormatSearch_Attractions(t *testing.T) {
	result := knowledge.Result{
		Query: "things to do in dubai",
		Matches: []knowledge.Match{
			{City: "dubai", Record: sampleRecord(), Topics: []knowledge.Topic{knowledge.TopicAttractions}},
		},
	}

	text := formatSearch(result)
	assert.Contains(t, text, "**Attractions in Dubai:**")
	assert.Contains(t, text, "- Burj Khalifa: World's tallest building")
}

func TestFormatSearch_Overview(t *testing.T) {
	result := knowledge.Result{
		Matches: []knowledge.Match{
			{City: "dubai", Record: sampleRecord(), Topics: []knowledge.Topic{knowledge.TopicOverview}},
		},
	}

	text := formatSearch(result)
	assert.Contains(t, text, "**Dubai**")
	assert.Contains(t, text, "The UAE's most visited emirate.")
	assert.Contains(t, text, "Top attractions:")
	assert.Contains(t, text, "Best time to visit: November to March")
}

func TestFormatSearch_MultipleTopics(t *testing.T) {
	result := knowledge.Result{
		Matches: []knowledge.Match{
			{
				City:   "dubai",
				Record: sampleRecord(),
				Topics: []knowledge.Topic{knowledge.TopicWeather, knowledge.TopicBestTime},
			},
		},
	}

	text := formatSearch(result)
	assert.Contains(t, text, "**Weather in Dubai:** winter 14-25C, summer 30-45C")
	assert.Contains(t, text, "**Best time to visit Dubai:** November to March")
}

func TestFormatSearch_Activities(t *testing.T) {
	result := knowledge.Result{
		Matches: []knowledge.Match{
			{City: "dubai", Record: sampleRecord(), Topics: []knowledge.Topic{knowledge.TopicActivities}},
		},
	}

	text := formatSearch(result)
	assert.Contains(t, text, "**Activities in Dubai:**")
	assert.Contains(t, text, "- desert safari: Dune bashing, Camel rides")
}

func TestFormatSearch_Empty(t *testing.T) {
	text := formatSearch(knowledge.Result{Query: "quantum physics"})
	assert.Contains(t, text, "couldn't find anything")
	assert.Contains(t, text, "prayer times")
}

func TestFormatSchedule(t *testing.T) {
	sched, err := prayer.Lookup("dubai", "2026-03-15")
	require.NoError(t, err)

	text := formatSchedule(sched)
	assert.Contains(t, text, "**Prayer Times for Dubai (2026-03-15):**")
	assert.Contains(t, text, "- Fajr: 05:30")
	assert.Contains(t, text, "- Isha: 20:00")
	assert.Contains(t, text, "Times are approximate")
}

func TestFormatEstimate(t *testing.T) {
	est, err := budget.Calculate("dubai", 5, budget.StyleStandard)
	require.NoError(t, err)

	text := formatEstimate(est)
	assert.Contains(t, text, "**Trip Budget Estimate for Dubai**")
	assert.Contains(t, text, "Style: standard | Duration: 5 days")
	assert.Contains(t, text, "x1.20")
	assert.Contains(t, text, "2,400")
	assert.Contains(t, text, "Included in the standard style:")
	assert.Contains(t, text, "3-4 star hotel stay")
}
