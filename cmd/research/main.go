// Command research runs a single research query from the terminal and
// writes the structured report as a JSON artifact.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spetersoncode/scribe"
	"github.com/spetersoncode/scribe/agent"
	"github.com/spetersoncode/scribe/client"
	"github.com/spetersoncode/scribe/research"
	"github.com/spetersoncode/scribe/tool"
)

func main() {
	godotenv.Load()

	providerName := flag.String("provider", envOr("SCRIBE_PROVIDER", "google"), "model provider: google, openai, or anthropic")
	model := flag.String("model", os.Getenv("SCRIBE_MODEL"), "model override (provider default if empty)")
	maxSteps := flag.Int("max-steps", 8, "maximum model round trips")
	outDir := flag.String("out", ".", "directory for the JSON artifact")
	flag.Parse()

	query := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if query == "" {
		fmt.Fprintln(os.Stderr, "usage: research [flags] <query>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(context.Background(), *providerName, *model, *maxSteps, *outDir, query); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, providerName, model string, maxSteps int, outDir, query string) error {
	provider, err := client.New(ctx, client.Config{
		Provider: scribe.Provider(providerName),
		APIKey:   apiKeyFor(providerName),
		Model:    model,
	})
	if err != nil {
		return err
	}

	registry := tool.NewRegistry().Add(tool.ResearchTools()...)
	a := agent.New(provider, registry)

	schema := research.NewSchema()
	messages := research.Assemble(query, schema.Describe(), nil)

	result, err := a.Run(ctx, messages, agent.WithMaxSteps(maxSteps))
	if err != nil {
		return err
	}

	report, err := research.Reconcile(schema, result)
	if err != nil {
		var mismatch *research.SchemaMismatchError
		if errors.As(err, &mismatch) {
			fmt.Fprintln(os.Stderr, "raw model output:")
			fmt.Fprintln(os.Stderr, mismatch.Raw)
		}
		return err
	}

	path, err := research.Save(outDir, report)
	if err != nil {
		return err
	}

	fmt.Printf("Topic:   %s\n", report.Topic)
	fmt.Printf("Summary: %s\n", report.Summary)
	fmt.Println("Sources:")
	for _, src := range report.Sources {
		fmt.Printf("  - %s\n", src)
	}
	if len(report.ToolsUsed) > 0 {
		fmt.Printf("Tools:   %s\n", strings.Join(report.ToolsUsed, ", "))
	}
	fmt.Printf("Saved:   %s (%d steps, %d tool calls)\n", path, result.Steps, len(result.Trace))
	return nil
}

func apiKeyFor(providerName string) string {
	switch scribe.Provider(providerName) {
	case scribe.ProviderAnthropic:
		return os.Getenv("ANTHROPIC_API_KEY")
	case scribe.ProviderOpenAI:
		return os.Getenv("OPENAI_API_KEY")
	default:
		return os.Getenv("GOOGLE_API_KEY")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
