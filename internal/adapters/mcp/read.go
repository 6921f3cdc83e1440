package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"daybook/internal/adapters/format"
	"daybook/internal/application"
	"daybook/internal/application/commands"
)

// RegisterReadTools adds all read-only organizer tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, session *application.Session) {
	s.AddTool(agendaTool(), agendaHandler(session))
	s.AddTool(monthTool(), monthHandler(session))
	s.AddTool(habitsTool(), habitsHandler(session))
	s.AddTool(searchTool(), searchHandler(session))
}

// --- agenda ---

func agendaTool() mcp.Tool {
	return mcp.NewTool("agenda",
		mcp.WithDescription("Show everything scheduled on a day: events, dated tasks, routines and habits with their completion."),
		mcp.WithString("date",
			mcp.Description("Day as YYYY-MM-DD. Omit for today."),
		),
		mcp.WithString("format",
			mcp.Description("Output format: text (default) or json"),
		),
	)
}

func agendaHandler(session *application.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		agenda, err := commands.NewAgendaCommand(session, req.GetString("date", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if req.GetString("format", "text") == "json" {
			return jsonResult(agenda)
		}
		return mcp.NewToolResultText(format.Agenda(agenda)), nil
	}
}

// --- month ---

func monthTool() mcp.Tool {
	return mcp.NewTool("month",
		mcp.WithDescription("List the days of a month that have activity and which kinds are active (events, tasks, habits, routines)."),
		mcp.WithNumber("year",
			mcp.Description("Year, e.g. 2024. Omit for the current year."),
		),
		mcp.WithNumber("month",
			mcp.Description("Month 1-12. Omit for the current month."),
		),
	)
}

func monthHandler(session *application.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewMonthCommand(session, req.GetInt("year", 0), req.GetInt("month", 0))
		days, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(format.Month(days)), nil
	}
}

// --- habits ---

func habitsTool() mcp.Tool {
	return mcp.NewTool("habits",
		mcp.WithDescription("List habits with schedule, current streak, completion rate and the last 7 days (● done, ○ missed, · not scheduled)."),
		mcp.WithString("category",
			mcp.Description("Filter by category name, 'no-category', or omit for all"),
		),
	)
}

func habitsHandler(session *application.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		stats, err := commands.NewHabitStatsCommand(session, req.GetString("category", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(format.HabitStats(stats)), nil
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Fuzzy search across tasks, shopping, ideas, notes, events, habits and routines. Returns kind, ID and title."),
		mcp.WithString("query",
			mcp.Description("Search query (at least 2 characters)"),
			mcp.Required(),
		),
	)
}

func searchHandler(session *application.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		hits, err := commands.NewSearchCommand(session, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(hits) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, h := range hits {
			fmt.Fprintf(&sb, "%s  %s  %s\n", h.Kind, h.ID, h.Title)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(string(body)), nil
}

// splitList parses a comma separated argument
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
