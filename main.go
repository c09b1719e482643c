package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/marhaba-travel/marhaba/assistant"
	"github.com/marhaba-travel/marhaba/bootstrap"
	"github.com/marhaba-travel/marhaba/config"
	marhabactx "github.com/marhaba-travel/marhaba/context"
	"github.com/marhaba-travel/marhaba/core"
	"github.com/marhaba-travel/marhaba/log"
)

func main() {
	// Load .env if present; real environment variables still win
	_ = godotenv.Load()

	// Initialize logging
	log.Init()

	// Setup signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle Ctrl+C (SIGINT)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT)
	go func() {
		<-sigChan
		fmt.Println("\nMa'a salama! Safe travels.")
		cancel()
		os.Exit(0)
	}()

	// 0. Load Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf(context.Background(), "Failed to load config: %v", err)
	}

	// 1-4. Init App Components using Bootstrap
	app, err := bootstrap.Setup(ctx, cfg)
	if err != nil {
		log.Fatalf(context.Background(), "Setup failed: %v", err)
	}

	// 5. Run the conversation loop
	session := assistant.NewSession()
	ctx = marhabactx.WithSessionID(ctx, session.ID)

	printBanner(app.Provider)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("\nYou: ")
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			fmt.Print("You: ")
			continue
		}

		switch strings.ToLower(input) {
		case "quit", "exit", "q":
			fmt.Println("Ma'a salama! Safe travels.")
			return
		case "clear":
			session.Clear()
			fmt.Println("Conversation cleared.")
			fmt.Print("\nYou: ")
			continue
		}

		// Each query gets its own turn ID for log correlation
		turnCtx := marhabactx.WithTurnID(ctx, marhabactx.NewID())
		reply := app.Assistant.Respond(turnCtx, session, input)

		fmt.Printf("\nMarhaba: %s\n", reply)
		fmt.Print("\nYou: ")
	}

	if err := scanner.Err(); err != nil {
		log.Errorf(ctx, "Input error: %v", err)
	}
}

func printBanner(provider string) {
	fmt.Println("Marhaba! I'm your UAE travel assistant.")
	fmt.Printf("LLM provider: %s\n", provider)
	fmt.Println()
	fmt.Println("Ask me about attractions, culture, activities, weather, prayer times, or trip budgets.")
	fmt.Println("Cities I cover:", core.CityList())
	fmt.Println(`Type "clear" to start over, "quit" to exit.`)
}
