package prayer

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

// --- Prayer Times Tool ---

type TimesInput struct {
	City string `json:"city" description:"UAE city name, e.g. 'Dubai' or 'Sharjah'"`
	Date string `json:"date,omitempty" description:"Optional date in YYYY-MM-DD format; defaults to today"`
}

type PrayerTime struct {
	Name string `json:"name"`
	Time string `json:"time"`
}

type TimesOutput struct {
	City  string       `json:"city"`
	Date  string       `json:"date"`
	Times []PrayerTime `json:"times"`
	Note  string       `json:"note"`
}

type TimesTool struct{}

func NewTimesTool(gk *genkit.Genkit, registry *toolspkg.Registry) *TimesTool {
	t := &TimesTool{}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*TimesInput, *TimesOutput](
		gk,
		"prayer_times",
		"Returns the five daily prayer times (Fajr, Dhuhr, Asr, Maghrib, Isha) for a UAE city, optionally for a specific date.",
		func(ctx *ai.ToolContext, input *TimesInput) (*TimesOutput, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		b, _ := json.Marshal(args)
		var input TimesInput
		if err := json.Unmarshal(b, &input); err != nil {
			return nil, fmt.Errorf("failed to parse arguments: %w", err)
		}
		return t.Execute(ctx, &input)
	})
	return t
}

func (t *TimesTool) Execute(ctx context.Context, input *TimesInput) (*TimesOutput, error) {
	log.Debugf(ctx, "TimesTool executing for city %q date %q", input.City, input.Date)

	if input.City == "" {
		return nil, fmt.Errorf("city is required")
	}

	sched, err := Lookup(input.City, input.Date)
	if err != nil {
		log.Errorf(ctx, "TimesTool failed: %v", err)
		return nil, err
	}

	out := &TimesOutput{
		City: core.DisplayName(sched.City),
		Date: sched.Date.Format(DateLayout),
		Note: "Times are approximate. Please check locally for exact times.",
	}
	for _, e := range sched.Entries {
		out.Times = append(out.Times, PrayerTime{Name: e.Name, Time: e.Time})
	}

	log.Debugf(ctx, "TimesTool completed for %s", out.City)
	return out, nil
}
