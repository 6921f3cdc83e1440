package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"daybook/internal/adapters/tui/styles"
	"daybook/internal/domain"
)

// screen accumulates the body of a view between its heading and footer.
type screen struct {
	b      strings.Builder
	groups int
}

func newScreen(title, subtitle string) *screen {
	s := &screen{}
	s.b.WriteString(styles.Title.Render(title))
	s.b.WriteString("\n")
	if subtitle != "" {
		s.b.WriteString(styles.Subtitle.Render(subtitle))
		s.b.WriteString("\n\n")
	}
	return s
}

func (s *screen) line(text string) *screen {
	s.b.WriteString(text)
	s.b.WriteString("\n")
	return s
}

func (s *screen) note(text string) *screen {
	return s.line(styles.MutedText.Render(text))
}

// group starts a labelled block of items, separated from the previous one.
func (s *screen) group(kind domain.ActivityKind, label string) *screen {
	if s.groups > 0 {
		s.b.WriteString("\n")
	}
	s.groups++
	return s.line(styles.KindLabel(kind, label))
}

// item writes an indented row. The cursor row wins over the done style.
func (s *screen) item(text string, selected, done bool) *screen {
	style := styles.Row
	if done {
		style = styles.RowDone
	}
	if selected {
		style = styles.RowSelected
	}
	return s.line("  " + style.Render(text))
}

// render closes the screen with the status message, if any, and the key help.
func (s *screen) render(status string, isErr bool, bindings ...key.Binding) string {
	if status != "" {
		style := styles.Success
		if isErr {
			style = styles.ErrorMsg
		}
		s.b.WriteString("\n" + style.Render(status) + "\n")
	}
	if len(bindings) > 0 {
		parts := make([]string, len(bindings))
		for i, b := range bindings {
			h := b.Help()
			parts[i] = styles.HelpKey.Render(h.Key) + " " + styles.HelpDesc.Render(h.Desc)
		}
		s.b.WriteString("\n" + strings.Join(parts, styles.HelpSeparator.String()))
	}
	return styles.App.Render(s.b.String())
}
