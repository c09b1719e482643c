package budget

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

// --- Trip Budget Tool ---

type EstimateInput struct {
	City  string `json:"city" description:"UAE city name"`
	Days  int    `json:"days" description:"Trip length in days, at least 1"`
	Style string `json:"style" description:"Travel style: budget, standard, or luxury"`
}

type EstimateOutput struct {
	City       string   `json:"city"`
	Days       int      `json:"days"`
	Style      string   `json:"style"`
	BaseDaily  float64  `json:"base_daily_aed"`
	Multiplier float64  `json:"city_multiplier"`
	DailyTotal float64  `json:"daily_total_aed"`
	TripTotal  float64  `json:"trip_total_aed"`
	USDTotal   float64  `json:"trip_total_usd"`
	Inclusions []string `json:"inclusions"`
	Note       string   `json:"note"`
}

type EstimateTool struct{}

func NewEstimateTool(gk *genkit.Genkit, registry *toolspkg.Registry) *EstimateTool {
	t := &EstimateTool{}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*EstimateInput, *EstimateOutput](
		gk,
		"trip_budget_planner",
		"Estimates daily and total trip costs in AED (with a USD estimate) for a UAE city, trip length, and travel style.",
		func(ctx *ai.ToolContext, input *EstimateInput) (*EstimateOutput, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		b, _ := json.Marshal(args)
		var input EstimateInput
		if err := json.Unmarshal(b, &input); err != nil {
			return nil, fmt.Errorf("failed to parse arguments: %w", err)
		}
		// Defaults for omitted arguments; explicit bad values still fail
		if input.Days == 0 {
			input.Days = 3
		}
		if input.Style == "" {
			input.Style = string(StyleStandard)
		}
		return t.Execute(ctx, &input)
	})
	return t
}

func (t *EstimateTool) Execute(ctx context.Context, input *EstimateInput) (*EstimateOutput, error) {
	log.Debugf(ctx, "EstimateTool executing for city %q days %d style %q", input.City, input.Days, input.Style)

	if input.City == "" {
		return nil, fmt.Errorf("city is required")
	}

	style, err := ParseStyle(input.Style)
	if err != nil {
		log.Errorf(ctx, "EstimateTool failed: %v", err)
		return nil, err
	}

	est, err := Calculate(input.City, input.Days, style)
	if err != nil {
		log.Errorf(ctx, "EstimateTool failed: %v", err)
		return nil, err
	}

	log.Debugf(ctx, "EstimateTool completed: %s for %d days, %.2f AED", est.City, est.Days, est.TripTotal)
	return &EstimateOutput{
		City:       core.DisplayName(est.City),
		Days:       est.Days,
		Style:      string(est.Style),
		BaseDaily:  est.BaseDaily,
		Multiplier: est.Multiplier,
		DailyTotal: est.DailyTotal,
		TripTotal:  est.TripTotal,
		USDTotal:   est.USDTotal,
		Inclusions: est.Inclusions,
		Note:       "This is an estimate. Actual costs vary by season and booking choices.",
	}, nil
}
