// grounded-search asks a hosted chat model the same question twice, once
// plain and once with web grounding enabled, and prints the plain answer
// versus the answer annotated with inline source citations.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/deepnoodle-ai/banner/grounding"
	"github.com/deepnoodle-ai/banner/slogger"
	"github.com/fatih/color"
	"google.golang.org/genai"
)

const (
	question    = "Search Google Trends for the latest trends for January 2026. Top 10 topics."
	readTimeout = 3600 * time.Second
)

func main() {
	logger := slogger.New(slogger.LevelInfo)
	ctx := context.Background()

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPClient: &http.Client{Timeout: readTimeout},
	})
	if err != nil {
		logger.Error("unexpected error", "error", err)
		return
	}

	client, err := grounding.New(grounding.Options{
		Client: genaiClient,
		Logger: logger,
	})
	if err != nil {
		logger.Error("unexpected error", "error", err)
		return
	}

	header := color.New(color.FgCyan, color.Bold)

	header.Println("Without Web Grounding")
	fmt.Println(strings.Repeat("=", 50))
	answer, err := client.Ask(ctx, question)
	if err != nil {
		logger.Error("query failed", "error", err)
		return
	}
	printRaw(answer.Raw)

	fmt.Println()
	header.Println("With Web Grounding")
	fmt.Println(strings.Repeat("=", 50))
	grounded, err := client.AskGrounded(ctx, question)
	if err != nil {
		logger.Error("grounded query failed", "error", err)
		return
	}
	fmt.Println(grounded.AnnotatedText())

	fmt.Println()
	header.Println("Full Response")
	fmt.Println(strings.Repeat("=", 50))
	printRaw(grounded.Raw)
}

func printRaw(response *genai.GenerateContentResponse) {
	data, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		fmt.Printf("error marshaling response: %v\n", err)
		return
	}
	fmt.Println(string(data))
}
