package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/firebase/genkit/go/genkit"

	"github.com/marhaba-travel/marhaba/log"
	"github.com/marhaba-travel/marhaba/tools"
)

// LLMClient is the language-model capability the planner needs.
type LLMClient interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

const SystemPromptTemplate = `You are Marhaba, a friendly travel assistant for the United Arab Emirates. You have access to the following tools:

%s

Protocol:
1. To call a tool, output ONLY a JSON object in this format: {"tool": "toolName", "input": {...}}
2. Do not add any text before or after the JSON when calling a tool.
3. When you receive a Tool Result, use it to proceed.
4. If you have the final answer, output the text directly (no JSON).

Ground recommendations in tool results and cover only the UAE.

Current Date: %s
Conversation so far:
%s
City facts:
%s
User Query: %s`

// maxPlannerSteps bounds the tool-call loop for one query.
const maxPlannerSteps = 5

// ToolCallResult stores the result of one tool call in a planning run
type ToolCallResult struct {
	ToolName  string      `json:"tool_name"`
	Input     interface{} `json:"input"`
	Output    interface{} `json:"output"`
	Error     string      `json:"error,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// PlanTrace stores everything collected while answering one query
type PlanTrace struct {
	Query     string           `json:"query"`
	ToolCalls []ToolCallResult `json:"tool_calls"`
	CreatedAt time.Time        `json:"created_at"`
}

// ToJSON exports the trace as JSON
func (pt *PlanTrace) ToJSON() ([]byte, error) {
	return json.MarshalIndent(pt, "", "  ")
}

// PlanInput carries one trip-planning request into the flow.
type PlanInput struct {
	Query   string `json:"query"`
	History string `json:"history,omitempty"`
	Context string `json:"context,omitempty"`
}

// FlowRunner defines the interface for running the planning flow
type FlowRunner interface {
	Run(ctx context.Context, input *PlanInput) (string, error)
}

// Planner drives the LLM tool-call loop over the registered lookup tools
type Planner struct {
	flow  FlowRunner
	trace *PlanTrace
	llm   LLMClient
}

// Plan executes the trip planning flow for one query
func (p *Planner) Plan(ctx context.Context, input *PlanInput) (string, error) {
	p.trace = &PlanTrace{
		Query:     input.Query,
		CreatedAt: time.Now(),
	}
	return p.flow.Run(ctx, input)
}

// GetTrace returns the trace of the most recent Plan call
func (p *Planner) GetTrace() *PlanTrace {
	return p.trace
}

// NewPlanner creates a Planner on the provided Genkit instance and Registry
func NewPlanner(gk *genkit.Genkit, registry *tools.Registry, llm LLMClient) (*Planner, error) {
	planner := &Planner{
		trace: nil,
		llm:   llm,
	}

	// Capture tools to auto-generate system prompt descriptions
	registeredTools := registry.GetTools()

	flow := genkit.DefineFlow(
		gk,
		"planTripFlow",
		func(ctx context.Context, input *PlanInput) (string, error) {
			log.Debugf(ctx, "Starting planTripFlow with query: %q", input.Query)

			// Auto-generate tool definitions
			var toolDefsBuilder strings.Builder
			for _, t := range registeredTools {
				def := t.Definition()
				schemaBytes, _ := json.Marshal(def.InputSchema)
				fmt.Fprintf(
					&toolDefsBuilder,
					"Tool: %s\nDescription: %s\nInput Schema: %s\n\n",
					def.Name,
					def.Description,
					string(schemaBytes),
				)
			}
			toolDefs := toolDefsBuilder.String()

			// System Prompt defining tools and behavioral contract
			systemPrompt := fmt.Sprintf(
				SystemPromptTemplate,
				toolDefs,
				time.Now().Format("2006-01-02"),
				input.History,
				input.Context,
				input.Query,
			)

			history := systemPrompt

			for i := 0; i < maxPlannerSteps; i++ {
				// Check for context cancellation
				select {
				case <-ctx.Done():
					return "", ctx.Err()
				default:
				}

				log.Debugf(ctx, "Step %d/%d: prompting LLM", i+1, maxPlannerSteps)

				resp, err := planner.llm.GenerateContent(ctx, history)
				if err != nil {
					log.Errorf(ctx, "LLM generation failed: %v", err)
					return "", fmt.Errorf("llm generation failed: %v", err)
				}

				// Scan for the first '{' and last '}' to handle markdown
				// blocks or preamble around the tool-call JSON
				start := strings.Index(resp, "{")
				end := strings.LastIndex(resp, "}")

				isToolCall := false
				var toolCall struct {
					Tool  string                 `json:"tool"`
					Input map[string]interface{} `json:"input"`
				}

				if start != -1 && end != -1 && end > start {
					potentialJSON := resp[start : end+1]
					if err := json.Unmarshal([]byte(potentialJSON), &toolCall); err == nil {
						// Double check required fields to avoid false positives on random JSON in text
						if toolCall.Tool != "" {
							isToolCall = true
							// Append the model's own request to history so it
							// remembers that IT asked for this tool.
							history += fmt.Sprintf("\nModel Response: %s\n", resp)
						}
					}
				}

				if isToolCall {
					log.Debugf(ctx, "Tool call: %s with input: %+v", toolCall.Tool, toolCall.Input)

					toolRes, toolErr := registry.ExecuteTool(ctx, toolCall.Tool, toolCall.Input)

					result := ToolCallResult{
						ToolName:  toolCall.Tool,
						Input:     toolCall.Input,
						Timestamp: time.Now(),
					}

					if toolErr != nil {
						log.Errorf(ctx, "Tool execution failed: %v", toolErr)
						result.Error = toolErr.Error()
						history += fmt.Sprintf("\nTool '%s' Error: %v\n", toolCall.Tool, toolErr)
					} else {
						result.Output = toolRes
						history += fmt.Sprintf("\nTool '%s' Output: %v\n", toolCall.Tool, toolRes)
					}

					if planner.trace != nil {
						planner.trace.ToolCalls = append(planner.trace.ToolCalls, result)
					}
					continue // Loop again to get next step or final answer
				}

				// Not a tool call, so this is the final answer text
				log.Debugf(ctx, "Returning final answer after %d steps", i+1)
				return resp, nil
			}

			log.Warnf(ctx, "Max steps exceeded in planning loop")
			return "", fmt.Errorf("max steps exceeded")
		},
	)

	planner.flow = flow
	return planner, nil
}
