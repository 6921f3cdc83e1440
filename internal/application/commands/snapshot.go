package commands

import (
	"context"
	"fmt"
	"io"

	"daybook/internal/application"
	"daybook/internal/domain"
	"daybook/internal/ports"
)

// ExportCommand writes the whole aggregate with a codec
type ExportCommand struct {
	session *application.Session
	codec   ports.SnapshotCodec
	w       io.Writer
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(session *application.Session, codec ports.SnapshotCodec, w io.Writer) *ExportCommand {
	return &ExportCommand{session: session, codec: codec, w: w}
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context) error {
	var err error
	c.session.View(func(data *domain.Aggregate) {
		err = c.codec.Encode(c.w, data)
	})
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}
	return nil
}

// ImportCommand replaces the aggregate with a decoded snapshot
type ImportCommand struct {
	session *application.Session
	codec   ports.SnapshotCodec
	r       io.Reader
}

// NewImportCommand creates a new ImportCommand
func NewImportCommand(session *application.Session, codec ports.SnapshotCodec, r io.Reader) *ImportCommand {
	return &ImportCommand{session: session, codec: codec, r: r}
}

// Execute runs the import command
func (c *ImportCommand) Execute(ctx context.Context) (*Result, error) {
	data, err := c.codec.Decode(c.r)
	if err != nil {
		return nil, &application.ValidationError{Field: "snapshot", Message: err.Error()}
	}

	err = c.session.Replace(ctx, data)
	return &Result{
		Changed: true,
		Message: fmt.Sprintf("Imported %d tasks, %d habits, %d routines", len(data.Tasks), len(data.Habits), len(data.Routines)),
	}, err
}
