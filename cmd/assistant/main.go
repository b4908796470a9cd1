package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"vaul-ai-be/pkg/assistantview"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// Terminal chat client against a running backend. Requires an access token;
// obtain one via POST /api/auth/login.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	baseURL := os.Getenv("ASSISTANT_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	token := os.Getenv("ASSISTANT_TOKEN")
	if token == "" {
		log.Fatal("Error: ASSISTANT_TOKEN is not set")
	}

	ctx := context.Background()
	view := assistantview.New(assistantview.NewClient(baseURL, token))

	promptColor := color.New(color.FgCyan, color.Bold)
	responseColor := color.New(color.FgGreen)
	errorColor := color.New(color.FgRed)

	view.Notify = func(msg string) {
		errorColor.Println(msg)
	}

	view.LoadHistory(ctx)
	for _, turn := range view.Transcript() {
		promptColor.Println("You: " + turn.Prompt)
		responseColor.Println("Assistant: " + turn.Response)
	}

	fmt.Println("Type a message and press Enter. Ctrl+D to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		promptColor.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		before := len(view.Transcript())
		view.SetCompose(line)
		view.Submit(ctx)

		transcript := view.Transcript()
		if len(transcript) > before {
			responseColor.Println("Assistant: " + transcript[len(transcript)-1].Response)
		}
	}
}
