package editor

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func envOpener(env map[string]string) *Opener {
	return &Opener{getenv: func(k string) string { return env[k] }}
}

func TestFindEditor_Precedence(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"editor wins", map[string]string{"EDITOR": "hx", "VISUAL": "code"}, "hx"},
		{"visual fallback", map[string]string{"VISUAL": "code --wait"}, "code --wait"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := envOpener(tt.env).findEditor(); got != tt.want {
				t.Errorf("findEditor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommand_SplitsEditorFlags(t *testing.T) {
	o := envOpener(map[string]string{"EDITOR": "code --wait"})

	cmd, err := o.Command("/tmp/note.md")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	args := cmd.Args
	if len(args) != 3 || args[1] != "--wait" || args[2] != "/tmp/note.md" {
		t.Errorf("Args = %v", args)
	}
}

func TestEditText(t *testing.T) {
	script := filepath.Join(t.TempDir(), "fake-editor")
	body := "#!/bin/sh\nprintf '\\nedited\\n' >> \"$1\"\n"
	if err := os.WriteFile(script, []byte(body), 0755); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}

	o := envOpener(map[string]string{"EDITOR": script})
	got, err := o.EditText(context.Background(), "original")
	if err != nil {
		t.Fatalf("EditText failed: %v", err)
	}
	if got != "original\nedited" {
		t.Errorf("EditText() = %q", got)
	}
}

func TestEditText_EditorFailure(t *testing.T) {
	o := envOpener(map[string]string{"EDITOR": "false"})

	if _, err := o.EditText(context.Background(), "x"); err == nil {
		t.Error("expected error when the editor fails")
	}
}
