package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "daybook/internal/adapters/mcp"
	"daybook/internal/app"
	"daybook/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "config file")
	flag.Parse()

	a, err := app.Start(context.Background(), config.New(*configFlag), false)
	if err != nil {
		log.Fatalf("daybook-mcp: %v", err)
	}
	defer a.Close()

	mcpServer := server.NewMCPServer(
		"daybook-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, a.Session)
	mcpadapter.RegisterWriteTools(mcpServer, a.Session)

	a.Logger.Info("serving MCP over stdio", "user", a.Session.UserID())
	if err := server.ServeStdio(mcpServer); err != nil {
		a.Logger.Error("mcp server stopped", "error", err)
		a.Close()
		log.Fatalf("daybook-mcp: %v", err)
	}
}
