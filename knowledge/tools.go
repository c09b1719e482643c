package knowledge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/marhaba-travel/marhaba/core"
	"github.com/marhaba-travel/marhaba/log"
	toolspkg "github.com/marhaba-travel/marhaba/tools"
)

// --- Knowledge Search Tool ---

type SearchInput struct {
	Query string `json:"query" description:"Free-text question about UAE cities, attractions, culture, activities, weather, or the best time to visit"`
}

// SearchMatch carries one city's answer, projected to the topics the
// query asked about.
type SearchMatch struct {
	City              string              `json:"city"`
	Topics            []string            `json:"topics"`
	Description       string              `json:"description,omitempty"`
	Attractions       []Attraction        `json:"attractions,omitempty"`
	BestTime          string              `json:"best_time,omitempty"`
	TemperatureWinter string              `json:"temperature_winter,omitempty"`
	TemperatureSummer string              `json:"temperature_summer,omitempty"`
	CulturalTips      []string            `json:"cultural_tips,omitempty"`
	Activities        map[string][]string `json:"activities,omitempty"`
}

type SearchOutput struct {
	Query   string        `json:"query"`
	Matches []SearchMatch `json:"matches"`
	Count   int           `json:"count"`
}

type SearchTool struct {
	store *Store
}

func NewSearchTool(store *Store, gk *genkit.Genkit, registry *toolspkg.Registry) *SearchTool {
	t := &SearchTool{store: store}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*SearchInput, *SearchOutput](
		gk,
		"uae_knowledge_search",
		"Searches the UAE knowledge base for city overviews, attractions, cultural tips, activities, weather, and best visiting times.",
		func(ctx *ai.ToolContext, input *SearchInput) (*SearchOutput, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		b, _ := json.Marshal(args)
		var input SearchInput
		if err := json.Unmarshal(b, &input); err != nil {
			return nil, fmt.Errorf("failed to parse arguments: %w", err)
		}
		return t.Execute(ctx, &input)
	})
	return t
}

func (t *SearchTool) Execute(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	log.Debugf(ctx, "SearchTool executing with query: %q", input.Query)

	if t.store == nil {
		return nil, fmt.Errorf("knowledge store not initialized")
	}
	if input.Query == "" {
		return nil, fmt.Errorf("query is required")
	}

	result := t.store.Search(input.Query)

	out := &SearchOutput{Query: input.Query}
	for _, m := range result.Matches {
		out.Matches = append(out.Matches, newSearchMatch(m))
	}
	out.Count = len(out.Matches)

	log.Debugf(ctx, "SearchTool completed. Found %d matches.", out.Count)
	return out, nil
}

// newSearchMatch projects a match onto the wire shape, copying only the
// record slices the matched topics cover.
func newSearchMatch(m Match) SearchMatch {
	sm := SearchMatch{City: core.DisplayName(m.City)}
	for _, topic := range m.Topics {
		sm.Topics = append(sm.Topics, string(topic))
		switch topic {
		case TopicOverview:
			sm.Description = m.Record.Description
			sm.Attractions = m.Record.Attractions
			sm.BestTime = m.Record.BestTime
		case TopicAttractions:
			sm.Attractions = m.Record.Attractions
		case TopicCulture:
			sm.CulturalTips = m.Record.CulturalTips
		case TopicActivities:
			sm.Activities = m.Record.Activities
		case TopicWeather:
			sm.TemperatureWinter = m.Record.TemperatureWinter
			sm.TemperatureSummer = m.Record.TemperatureSummer
		case TopicBestTime:
			sm.BestTime = m.Record.BestTime
		}
	}
	return sm
}
