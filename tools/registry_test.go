package tools_test

import (
	"context"
	"testing"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/marhaba-travel/marhaba/tools"
	"github.com/stretchr/testify/assert"
)

type echoInput struct {
	Text string `json:"text"`
}

func TestNewRegistry(t *testing.T) {
	reg := tools.NewRegistry()
	assert.NotNil(t, reg)
	assert.Empty(t, reg.GetTools())
	assert.Empty(t, reg.Names())
}

func TestRegistry_Register(t *testing.T) {
	ctx := context.Background()
	gk := genkit.Init(ctx)
	reg := tools.NewRegistry()

	// Register a dummy tool
	reg.Register(genkit.DefineTool[*echoInput, string](
		gk,
		"echoTool",
		"Echoes its input back",
		func(ctx *ai.ToolContext, input *echoInput) (string, error) {
			return input.Text, nil
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		text, _ := args["text"].(string)
		return text, nil
	})

	registered := reg.GetTools()
	assert.Len(t, registered, 1)
	assert.Equal(t, "echoTool", registered[0].Definition().Name)
	assert.Equal(t, []string{"echoTool"}, reg.Names())
}

func TestRegistry_ExecuteTool(t *testing.T) {
	ctx := context.Background()
	gk := genkit.Init(ctx)
	reg := tools.NewRegistry()

	reg.Register(genkit.DefineTool[*echoInput, string](
		gk,
		"echoTool",
		"Echoes its input back",
		func(ctx *ai.ToolContext, input *echoInput) (string, error) {
			return input.Text, nil
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		text, _ := args["text"].(string)
		return text, nil
	})

	res, err := reg.ExecuteTool(ctx, "echoTool", map[string]interface{}{"text": "marhaba"})
	assert.NoError(t, err)
	assert.Equal(t, "marhaba", res)
}

func TestRegistry_ExecuteTool_NotFound(t *testing.T) {
	reg := tools.NewRegistry()

	_, err := reg.ExecuteTool(context.Background(), "missing", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "tool not found")
}
