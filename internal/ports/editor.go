package ports

import (
	"context"
	"os/exec"
)

// TextEditor hands text to the user's external editor
type TextEditor interface {
	// Command returns the editor process for a file, for use with
	// bubbletea's ExecProcess
	Command(path string) (*exec.Cmd, error)

	// EditText edits initial in a temporary file and returns the saved text
	EditText(ctx context.Context, initial string) (string, error)
}
