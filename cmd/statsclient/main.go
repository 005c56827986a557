package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/vacancy-stats/internal/config"
)

func main() {
	endpoint := flag.String("endpoint", "http://localhost:8080/mcp/stream", "MCP streamable HTTP endpoint")
	languages := flag.String("languages", "", "comma separated languages; server defaults when empty")
	providers := flag.String("providers", "", "comma separated provider names; all when empty")
	export := flag.Bool("export", false, "ask the server to write the reports to its sinks")
	list := flag.Bool("list", false, "only list the server tools")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall call timeout")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "vacancy-stats-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: *endpoint}, nil)
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("connected to server (session ID: %s)", session.ID())

	if *list {
		listTools(ctx, session)
		return
	}

	args := map[string]any{"export": *export}
	if v := config.SplitList(*languages); len(v) > 0 {
		args["languages"] = v
	}
	if v := config.SplitList(*providers); len(v) > 0 {
		args["providers"] = v
	}

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "language_salary_stats",
		Arguments: args,
	})
	if err != nil {
		log.Fatalf("language_salary_stats failed: %v", err)
	}

	printResult(result)
	if result.IsError {
		os.Exit(1)
	}
}

func listTools(ctx context.Context, session *mcp.ClientSession) {
	res, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		log.Fatalf("list tools: %v", err)
	}
	for _, tool := range res.Tools {
		fmt.Printf("%s\t%s\n", tool.Name, tool.Description)
	}
}

func printResult(result *mcp.CallToolResult) {
	for _, content := range result.Content {
		if text, ok := content.(*mcp.TextContent); ok {
			fmt.Println(text.Text)
		}
	}
}
