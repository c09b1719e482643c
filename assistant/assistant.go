package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/marhaba-travel/marhaba/budget"
	"github.com/marhaba-travel/marhaba/core"
	"github.com/marhaba-travel/marhaba/knowledge"
	"github.com/marhaba-travel/marhaba/log"
	"github.com/marhaba-travel/marhaba/prayer"
)

const capabilitiesHint = "I can help with UAE attractions, culture, activities, weather, prayer times, and trip budgets. " +
	`Try "things to do in Dubai", "prayer times in Sharjah", or "budget for 5 days in Abu Dhabi".`

// Default trip shape when the user doesn't say how long or in what
// style they are travelling.
const (
	defaultTripDays = 3
	defaultStyle    = budget.StyleStandard
)

// Assistant is the main orchestrator: it classifies each query, runs
// the matching lookup or the planner flow, and renders the reply.
type Assistant struct {
	store   *knowledge.Store
	planner *Planner
}

// New creates an Assistant over the knowledge store and planner.
func New(store *knowledge.Store, planner *Planner) *Assistant {
	return &Assistant{
		store:   store,
		planner: planner,
	}
}

// Respond handles one user turn against the session. Recoverable
// problems become clarification text, so the caller always has
// something to show.
func (a *Assistant) Respond(ctx context.Context, session *Session, text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return capabilitiesHint
	}
	session.AddTurn(RoleUser, trimmed)

	lowered := strings.ToLower(trimmed)
	intent := Classify(trimmed)
	log.Infof(ctx, "Classified query as %s", intent)

	var reply string
	switch intent {
	case IntentPrayer:
		reply = a.prayerReply(session, lowered)
	case IntentBudget:
		reply = a.budgetReply(session, lowered)
	case IntentKnowledge:
		reply = a.knowledgeReply(trimmed)
	case IntentTripPlan:
		reply = a.tripPlanReply(ctx, session, trimmed)
	default:
		reply = capabilitiesHint
	}

	session.AddTurn(RoleAssistant, reply)
	if city, _, ok := core.FindCityIn(lowered); ok {
		session.LastCity = city
	}
	return reply
}

func (a *Assistant) prayerReply(session *Session, lowered string) string {
	city, ok := resolveCity(lowered, session)
	if !ok {
		return "Which city's prayer times would you like? I cover " + core.CityList() + "."
	}
	sched, err := prayer.Lookup(city, extractDate(lowered))
	if err != nil {
		return clarify(err)
	}
	return formatSchedule(sched)
}

func (a *Assistant) budgetReply(session *Session, lowered string) string {
	city, ok := resolveCity(lowered, session)
	if !ok {
		return "Which city should I budget for? I cover " + core.CityList() + "."
	}
	days := extractDays(lowered)
	if days == 0 {
		days = defaultTripDays
	}
	style, ok := extractStyle(lowered)
	if !ok {
		style = defaultStyle
	}
	est, err := budget.Calculate(city, days, style)
	if err != nil {
		return clarify(err)
	}
	return formatEstimate(est)
}

func (a *Assistant) knowledgeReply(text string) string {
	return formatSearch(a.store.Search(text))
}

// tripPlanReply runs the planner flow, prefetching city facts so the
// model has grounded material even before its first tool call. A
// planner failure degrades to a store-backed recommendation.
func (a *Assistant) tripPlanReply(ctx context.Context, session *Session, text string) string {
	city, haveCity := resolveCity(strings.ToLower(text), session)

	contextInfo := ""
	if haveCity {
		contextInfo = formatSearch(a.store.Search("attractions in " + core.DisplayName(city)))
	}

	reply, err := a.planner.Plan(ctx, &PlanInput{
		Query:   text,
		History: session.History(),
		Context: contextInfo,
	})
	if err != nil {
		log.Errorf(ctx, "Planner failed, falling back to store: %v", err)
		return a.fallbackRecommendation(city, haveCity)
	}
	return reply
}

// fallbackRecommendation answers a planning query from the store alone
// when the LLM is unreachable.
func (a *Assistant) fallbackRecommendation(city string, haveCity bool) string {
	if !haveCity {
		return "I couldn't reach the itinerary service right now. Tell me which city you're visiting (" +
			core.CityList() + ") and I'll list its highlights."
	}
	rec, err := a.store.City(city)
	if err != nil {
		return capabilitiesHint
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "I couldn't reach the itinerary service right now, but here are the highlights of %s:\n",
		core.DisplayName(city))
	writeAttractions(&sb, rec.Attractions)
	fmt.Fprintf(&sb, "\nBest time to visit: %s", rec.BestTime)
	return sb.String()
}

// clarify converts a recoverable lookup error into a short
// clarification prompt.
func clarify(err error) string {
	switch {
	case errors.Is(err, core.ErrUnknownCity):
		return "I don't have data for that city yet. Try one of: " + core.CityList() + "."
	case errors.Is(err, core.ErrInvalidDate):
		return "I couldn't read that date. Please use YYYY-MM-DD, for example 2026-03-15."
	case errors.Is(err, core.ErrInvalidDuration):
		return "A trip needs at least 1 day. How many days are you planning?"
	case errors.Is(err, core.ErrInvalidStyle):
		return "I know three travel styles: budget, standard, and luxury. Which one fits your plans?"
	default:
		return capabilitiesHint
	}
}
