// Package scribe provides the core types for a structured research assistant
// built on tool-calling language models.
//
// The root package is provider-neutral: it defines conversation messages,
// tool definitions, chat options, and the [ChatProvider] interface that the
// provider subpackages (provider/google, provider/openai, provider/anthropic)
// implement. Higher-level behavior lives in dedicated packages:
//
//   - [github.com/spetersoncode/scribe/agent]: the synchronous tool-calling loop
//   - [github.com/spetersoncode/scribe/tool]: the tool registry and built-in research tools
//   - [github.com/spetersoncode/scribe/research]: output schema, prompt assembly, and reconciliation
//   - [github.com/spetersoncode/scribe/client]: provider selection from configuration
//
// # Basic Usage
//
// Build a provider, register the research tools, and run a query:
//
//	provider, err := google.New(ctx, os.Getenv("GOOGLE_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	registry := tool.NewRegistry().Add(tool.ResearchTools()...)
//	a := agent.New(provider, registry)
//
//	schema := research.NewSchema()
//	messages := research.Assemble("History of the transistor", schema.Describe(), nil)
//
//	result, err := a.Run(ctx, messages, agent.WithMaxSteps(8))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	response, err := research.Reconcile(schema, result)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(response.Topic, response.Summary)
package scribe
