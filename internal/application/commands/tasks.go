package commands

import (
	"context"
	"fmt"
	"strings"

	"daybook/internal/application"
	"daybook/internal/domain"
)

// AddTaskCommand creates a task
type AddTaskCommand struct {
	session  *application.Session
	Text     string
	Date     string
	Category string
}

// NewAddTaskCommand creates a new AddTaskCommand. Date and category may be empty.
func NewAddTaskCommand(session *application.Session, text, date, category string) *AddTaskCommand {
	return &AddTaskCommand{
		session:  session,
		Text:     text,
		Date:     date,
		Category: category,
	}
}

// Validate checks if the task can be created
func (c *AddTaskCommand) Validate() error {
	if err := application.ValidateRequired("text", c.Text); err != nil {
		return err
	}
	return application.ValidateOptionalDate("date", c.Date)
}

// Execute runs the add task command
func (c *AddTaskCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	task := domain.Task{
		ID:        c.session.NewID(),
		Text:      strings.TrimSpace(c.Text),
		Date:      domain.TaskDate(strings.TrimSpace(c.Date)),
		Category:  strings.TrimSpace(c.Category),
		CreatedAt: c.session.Now(),
	}
	_, err := c.session.Mutate(ctx, "add task", func(data *domain.Aggregate) (bool, error) {
		data.Tasks = append(data.Tasks, task)
		return true, nil
	})

	return &Result{ID: task.ID, Changed: true, Message: fmt.Sprintf("Added task: %s", task.Text)}, err
}

// EditTaskCommand replaces the editable fields of a task
type EditTaskCommand struct {
	session  *application.Session
	ID       string
	Text     string
	Date     string
	Category string
}

// NewEditTaskCommand creates a new EditTaskCommand
func NewEditTaskCommand(session *application.Session, id, text, date, category string) *EditTaskCommand {
	return &EditTaskCommand{
		session:  session,
		ID:       id,
		Text:     text,
		Date:     date,
		Category: category,
	}
}

// Validate checks if the edit is valid
func (c *EditTaskCommand) Validate() error {
	if err := requireID(c.ID); err != nil {
		return err
	}
	if err := application.ValidateRequired("text", c.Text); err != nil {
		return err
	}
	return application.ValidateOptionalDate("date", c.Date)
}

// Execute runs the edit task command
func (c *EditTaskCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	changed, err := c.session.Mutate(ctx, "edit task", func(data *domain.Aggregate) (bool, error) {
		i := domain.IndexByID(data.Tasks, c.ID)
		if i < 0 {
			return false, nil
		}
		t := &data.Tasks[i]
		t.Text = strings.TrimSpace(c.Text)
		t.Date = domain.TaskDate(strings.TrimSpace(c.Date))
		t.Category = strings.TrimSpace(c.Category)
		return true, nil
	})
	if !changed {
		return unchanged("task", c.ID), err
	}
	return &Result{ID: c.ID, Changed: true, Message: "Updated task"}, err
}

// ToggleTaskCommand flips the completed flag of a task
type ToggleTaskCommand struct {
	session *application.Session
	ID      string
}

// NewToggleTaskCommand creates a new ToggleTaskCommand
func NewToggleTaskCommand(session *application.Session, id string) *ToggleTaskCommand {
	return &ToggleTaskCommand{session: session, ID: id}
}

// Validate checks if the toggle is valid
func (c *ToggleTaskCommand) Validate() error {
	return requireID(c.ID)
}

// Execute runs the toggle task command
func (c *ToggleTaskCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var done bool
	changed, err := c.session.Mutate(ctx, "toggle task", func(data *domain.Aggregate) (bool, error) {
		i := domain.IndexByID(data.Tasks, c.ID)
		if i < 0 {
			return false, nil
		}
		data.Tasks[i].Completed = !data.Tasks[i].Completed
		done = data.Tasks[i].Completed
		return true, nil
	})
	if !changed {
		return unchanged("task", c.ID), err
	}

	msg := "Task reopened"
	if done {
		msg = "Task completed"
	}
	return &Result{ID: c.ID, Changed: true, Message: msg}, err
}

// DeleteTaskCommand removes a task
type DeleteTaskCommand struct {
	session *application.Session
	ID      string
}

// NewDeleteTaskCommand creates a new DeleteTaskCommand
func NewDeleteTaskCommand(session *application.Session, id string) *DeleteTaskCommand {
	return &DeleteTaskCommand{session: session, ID: id}
}

// Validate checks if the delete is valid
func (c *DeleteTaskCommand) Validate() error {
	return requireID(c.ID)
}

// Execute runs the delete task command
func (c *DeleteTaskCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	changed, err := c.session.Mutate(ctx, "delete task", func(data *domain.Aggregate) (bool, error) {
		var removed bool
		data.Tasks, removed = domain.RemoveByID(data.Tasks, c.ID)
		return removed, nil
	})
	if !changed {
		return unchanged("task", c.ID), err
	}
	return &Result{ID: c.ID, Changed: true, Message: "Deleted task"}, err
}

// ListTasksCommand returns tasks newest first, filtered by category
type ListTasksCommand struct {
	session  *application.Session
	Category string
}

// NewListTasksCommand creates a new ListTasksCommand
func NewListTasksCommand(session *application.Session, category string) *ListTasksCommand {
	return &ListTasksCommand{session: session, Category: category}
}

// Execute runs the list tasks command
func (c *ListTasksCommand) Execute(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	c.session.View(func(data *domain.Aggregate) {
		for _, t := range data.Tasks {
			if domain.MatchesCategory(t.Category, c.Category) {
				tasks = append(tasks, t)
			}
		}
	})
	domain.SortByCreated(tasks, domain.NewestFirst)
	return tasks, nil
}
