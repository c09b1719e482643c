package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/firebase/genkit/go/genkit"
	"github.com/joho/godotenv"

	"github.com/marhaba-travel/marhaba/assistant"
	"github.com/marhaba-travel/marhaba/budget"
	"github.com/marhaba-travel/marhaba/knowledge"
	"github.com/marhaba-travel/marhaba/prayer"
	"github.com/marhaba-travel/marhaba/providers/openai"
	"github.com/marhaba-travel/marhaba/tools"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	log.Println("Testing planner trace storage...")

	// 1. Load the knowledge base
	knowledgeFile := os.Getenv("KNOWLEDGE_FILE")
	if knowledgeFile == "" {
		knowledgeFile = "data/uae_knowledge.json"
	}

	store, err := knowledge.Load(knowledgeFile)
	if err != nil {
		log.Fatalf("Failed to load knowledge base: %v", err)
	}

	// 2. Setup OpenAI client
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("Error: OPENAI_API_KEY must be set")
	}

	llm, err := openai.NewClient(apiKey, os.Getenv("OPENAI_MODEL"))
	if err != nil {
		log.Fatalf("Failed to create OpenAI client: %v", err)
	}

	// 3. Register tools and init the planner
	log.Println("Initializing planner...")
	gk := genkit.Init(context.Background())
	registry := tools.NewRegistry()
	knowledge.NewSearchTool(store, gk, registry)
	prayer.NewTimesTool(gk, registry)
	budget.NewEstimateTool(gk, registry)

	planner, err := assistant.NewPlanner(gk, registry, llm)
	if err != nil {
		log.Fatalf("Failed to initialize planner: %v", err)
	}

	// 4. Run a query that will trigger multiple tool calls
	query := "plan a 3 day standard trip to Dubai around the prayer times"
	log.Printf("Running Plan with query: %q", query)

	ctx := context.Background()
	result, err := planner.Plan(ctx, &assistant.PlanInput{Query: query})
	if err != nil {
		log.Fatalf("Plan failed: %v", err)
	}

	log.Println("\n---------------------------------------------------")
	log.Println("Planner Response:")
	log.Println(result)
	log.Println("---------------------------------------------------")

	// 5. Access the stored trace
	log.Println("\n=== PLAN TRACE ===")

	trace := planner.GetTrace()
	if trace != nil {
		log.Printf("Query: %s", trace.Query)
		log.Printf("Created At: %s", trace.CreatedAt.Format(time.RFC3339))

		log.Printf("Tool calls: %d", len(trace.ToolCalls))
		for i, call := range trace.ToolCalls {
			log.Printf("  Call %d: %s (error=%q)", i+1, call.ToolName, call.Error)
		}

		if b, err := trace.ToJSON(); err == nil {
			log.Printf("Trace JSON:\n%s", string(b))
		}
	}
}
