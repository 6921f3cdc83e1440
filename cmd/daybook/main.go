package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"daybook/internal/adapters/editor"
	"daybook/internal/adapters/tui"
	"daybook/internal/app"
	"daybook/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "config file")
	flag.Parse()

	a, err := app.Start(context.Background(), config.New(*configFlag), false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	p := tea.NewProgram(tui.NewApp(a.Session, editor.NewOpener()), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		a.Logger.Error("tui exited", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		a.Close()
		os.Exit(1)
	}
}
