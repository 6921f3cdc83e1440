package mcp

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"daybook/internal/application"
	"daybook/internal/application/commands"
)

// RegisterWriteTools adds all mutating organizer tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, session *application.Session) {
	s.AddTool(addTaskTool(), addTaskHandler(session))
	s.AddTool(toggleTaskTool(), toggleTaskHandler(session))
	s.AddTool(toggleHabitTool(), toggleHabitHandler(session))
	s.AddTool(toggleSubHabitTool(), toggleSubHabitHandler(session))
	s.AddTool(addRoutineTool(), addRoutineHandler(session))
	s.AddTool(deleteRoutineTool(), deleteRoutineHandler(session))
}

// --- add_task ---

func addTaskTool() mcp.Tool {
	return mcp.NewTool("add_task",
		mcp.WithDescription("Add a task, optionally dated and categorized."),
		mcp.WithString("text",
			mcp.Description("Task text"),
			mcp.Required(),
		),
		mcp.WithString("date",
			mcp.Description("Due day as YYYY-MM-DD"),
		),
		mcp.WithString("category",
			mcp.Description("Category name"),
		),
	)
}

func addTaskHandler(session *application.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAddTaskCommand(session,
			req.GetString("text", ""),
			req.GetString("date", ""),
			req.GetString("category", ""),
		)
		return resultText(cmd.Execute(ctx))
	}
}

// --- toggle_task ---

func toggleTaskTool() mcp.Tool {
	return mcp.NewTool("toggle_task",
		mcp.WithDescription("Flip the completed flag of a task."),
		mcp.WithString("id",
			mcp.Description("Task ID"),
			mcp.Required(),
		),
	)
}

func toggleTaskHandler(session *application.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return resultText(commands.NewToggleTaskCommand(session, req.GetString("id", "")).Execute(ctx))
	}
}

// --- toggle_habit ---

func toggleHabitTool() mcp.Tool {
	return mcp.NewTool("toggle_habit",
		mcp.WithDescription("Mark or unmark a habit as done on a day. Days outside the habit's weekdays are rejected."),
		mcp.WithString("id",
			mcp.Description("Habit ID"),
			mcp.Required(),
		),
		mcp.WithString("date",
			mcp.Description("Day as YYYY-MM-DD. Omit for today."),
		),
	)
}

func toggleHabitHandler(session *application.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewToggleHabitDayCommand(session, req.GetString("id", ""), req.GetString("date", ""))
		return resultText(cmd.Execute(ctx))
	}
}

// --- toggle_sub_habit ---

func toggleSubHabitTool() mcp.Tool {
	return mcp.NewTool("toggle_sub_habit",
		mcp.WithDescription("Check or uncheck one sub-habit on a day. The day counts as done once every sub-habit is checked."),
		mcp.WithString("id",
			mcp.Description("Habit ID"),
			mcp.Required(),
		),
		mcp.WithNumber("index",
			mcp.Description("Zero-based sub-habit index"),
			mcp.Required(),
		),
		mcp.WithString("date",
			mcp.Description("Day as YYYY-MM-DD. Omit for today."),
		),
	)
}

func toggleSubHabitHandler(session *application.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewToggleSubHabitCommand(session,
			req.GetString("id", ""),
			req.GetString("date", ""),
			req.GetInt("index", -1),
		)
		return resultText(cmd.Execute(ctx))
	}
}

// --- add_routine ---

func addRoutineTool() mcp.Tool {
	return mcp.NewTool("add_routine",
		mcp.WithDescription("Add a recurring time block."),
		mcp.WithString("text",
			mcp.Description("Routine text"),
			mcp.Required(),
		),
		mcp.WithString("start",
			mcp.Description("Start time HH:MM"),
			mcp.Required(),
		),
		mcp.WithString("end",
			mcp.Description("End time HH:MM"),
			mcp.Required(),
		),
		mcp.WithString("frequency",
			mcp.Description("everyday, weekdays, weekends or specific"),
			mcp.Required(),
		),
		mcp.WithString("days",
			mcp.Description("Comma separated weekdays for specific, e.g. mon,wed,fri"),
		),
	)
}

func addRoutineHandler(session *application.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAddRoutineCommand(session,
			req.GetString("text", ""),
			req.GetString("start", ""),
			req.GetString("end", ""),
			req.GetString("frequency", ""),
			splitList(req.GetString("days", "")),
		)
		return resultText(cmd.Execute(ctx))
	}
}

// --- delete_routine ---

func deleteRoutineTool() mcp.Tool {
	return mcp.NewTool("delete_routine",
		mcp.WithDescription("Delete a routine. With a day only that weekday is removed; the routine goes away once no days remain."),
		mcp.WithString("id",
			mcp.Description("Routine ID"),
			mcp.Required(),
		),
		mcp.WithString("day",
			mcp.Description("Weekday to remove, e.g. sat. Omit to delete on every day."),
		),
	)
}

func deleteRoutineHandler(session *application.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if day := req.GetString("day", ""); day != "" {
			return resultText(commands.NewDeleteRoutineOccurrenceCommand(session, id, day).Execute(ctx))
		}
		return resultText(commands.NewDeleteRoutineCommand(session, id).Execute(ctx))
	}
}

// resultText reports a command outcome. A persistence failure after the
// change was applied is reported as an error that keeps the message.
func resultText(result *commands.Result, err error) (*mcp.CallToolResult, error) {
	var persistErr *application.PersistError
	if errors.As(err, &persistErr) && result != nil {
		return mcp.NewToolResultError(result.Message + " (not saved: " + err.Error() + ")"), nil
	}
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}
