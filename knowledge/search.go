package knowledge

import (
	"sort"
	"strings"

	"github.com/marhaba-travel/marhaba/core"
)

// Topic identifies a queryable slice of a city record.
type Topic string

const (
	TopicOverview    Topic = "overview"
	TopicAttractions Topic = "attractions"
	TopicCulture     Topic = "culture"
	TopicActivities  Topic = "activities"
	TopicWeather     Topic = "weather"
	TopicBestTime    Topic = "best_time"
)

// Match pairs a city with the topics the query asked about.
type Match struct {
	City   string
	Record CityRecord
	Topics []Topic
}

// Result is the outcome of a knowledge search. An unmatched query
// yields an empty result, never an error.
type Result struct {
	Query   string
	Matches []Match
}

// Empty reports whether the search matched nothing.
func (r Result) Empty() bool {
	return len(r.Matches) == 0
}

// Topic keyword buckets. Containment checks only, no ranking.
var topicKeywords = map[Topic][]string{
	TopicAttractions: {"attraction", "landmark", "sight", "must visit", "must-visit", "places to", "things to do", "what to see"},
	TopicCulture:     {"culture", "cultural", "etiquette", "custom", "tradition", "tips", "dress code", "ramadan"},
	TopicActivities:  {"activities", "activity", "adventure", "experience"},
	TopicWeather:     {"weather", "climate", "temperature", "how hot", "how cold"},
	TopicBestTime:    {"best time", "when to visit", "when should i visit", "which month"},
}

// detectTopics returns the topics whose keywords appear in the lowered
// query, in a stable order.
func detectTopics(lowered string) []Topic {
	ordered := []Topic{TopicAttractions, TopicCulture, TopicActivities, TopicWeather, TopicBestTime}
	var found []Topic
	for _, topic := range ordered {
		for _, kw := range topicKeywords[topic] {
			if strings.Contains(lowered, kw) {
				found = append(found, topic)
				break
			}
		}
	}
	return found
}

// activityCategoriesIn returns the record's activity category names that
// appear verbatim in the lowered query.
func activityCategoriesIn(lowered string, rec CityRecord) []string {
	var found []string
	for category := range rec.Activities {
		if strings.Contains(lowered, strings.ToLower(category)) {
			found = append(found, category)
		}
	}
	sort.Strings(found)
	return found
}

// Search matches a free-text query against city names, topic keywords,
// and activity-category names. The earliest city named in the query
// wins over topic keywords; with no city named the topic is answered
// across all cities.
func (s *Store) Search(query string) Result {
	result := Result{Query: query}
	lowered := strings.ToLower(query)
	if strings.TrimSpace(lowered) == "" {
		return result
	}

	topics := detectTopics(lowered)

	if city, _, ok := core.FindCityIn(lowered); ok {
		rec := s.records[city]
		cityTopics := topics
		if len(activityCategoriesIn(lowered, rec)) > 0 {
			cityTopics = appendTopic(cityTopics, TopicActivities)
		}
		if len(cityTopics) == 0 {
			cityTopics = []Topic{TopicOverview}
		}
		result.Matches = append(result.Matches, Match{City: city, Record: rec, Topics: cityTopics})
		return result
	}

	// No city named: answer the topic across all cities. Activity
	// category mentions pull in the cities offering that category.
	for _, city := range s.Cities() {
		rec := s.records[city]
		cityTopics := topics
		if len(activityCategoriesIn(lowered, rec)) > 0 {
			cityTopics = appendTopic(cityTopics, TopicActivities)
		}
		if len(cityTopics) == 0 {
			continue
		}
		result.Matches = append(result.Matches, Match{City: city, Record: rec, Topics: cityTopics})
	}
	return result
}

func appendTopic(topics []Topic, t Topic) []Topic {
	for _, existing := range topics {
		if existing == t {
			return topics
		}
	}
	out := make([]Topic, len(topics), len(topics)+1)
	copy(out, topics)
	return append(out, t)
}
