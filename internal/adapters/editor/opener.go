package editor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"daybook/internal/ports"
)

// Opener implements ports.TextEditor
type Opener struct {
	getenv func(string) string
}

var _ ports.TextEditor = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{getenv: os.Getenv}
}

// Command returns an exec.Cmd for opening a file in the editor.
// This is useful for integrating with bubbletea's ExecProcess.
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	return o.command(context.Background(), path)
}

// EditText writes initial to a temporary markdown file, opens it in the
// editor and returns the saved content without its trailing newline
func (o *Opener) EditText(ctx context.Context, initial string) (string, error) {
	tmp, err := os.CreateTemp("", "daybook-*.md")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(initial); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}

	cmd, err := o.command(ctx, tmp.Name())
	if err != nil {
		return "", err
	}
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor exited with error: %w", err)
	}

	content, err := os.ReadFile(tmp.Name())
	if err != nil {
		return "", fmt.Errorf("failed to read edited file: %w", err)
	}
	return strings.TrimRight(string(content), "\n"), nil
}

func (o *Opener) command(ctx context.Context, path string) (*exec.Cmd, error) {
	editor := o.findEditor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	// $EDITOR may carry flags, e.g. "code --wait"
	parts := strings.Fields(editor)
	args := append(parts[1:], path)

	cmd := exec.CommandContext(ctx, parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// findEditor returns the editor to use
func (o *Opener) findEditor() string {
	if editor := strings.TrimSpace(o.getenv("EDITOR")); editor != "" {
		return editor
	}
	if visual := strings.TrimSpace(o.getenv("VISUAL")); visual != "" {
		return visual
	}

	for _, editor := range []string{"nvim", "vim", "vi", "nano"} {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}
	return ""
}
