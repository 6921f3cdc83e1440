package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"daybook/internal/application/commands"
)

// printResult prints a command message. A failed save after the change was
// applied still prints the message before returning the error.
func printResult(result *commands.Result, err error) error {
	if result != nil {
		fmt.Println(result.Message)
	}
	return err
}

// printJSON writes v as indented JSON to stdout
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// splitList parses a comma separated flag value
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
