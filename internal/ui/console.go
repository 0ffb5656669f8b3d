// Where: internal/ui/console.go
// What: Console output helpers for consistent CLI UX.
// Why: Standardize emojis, indentation, and structure across commands.
package ui

import (
	"fmt"
	"io"
)

// Console writes formatted status lines for the commands.
type Console struct {
	Out io.Writer
}

func New(out io.Writer) *Console {
	return &Console{Out: out}
}

// Header opens a section, e.g. "🧱 Compiling stacks:".
func (c *Console) Header(emoji, title string) {
	fmt.Fprintf(c.Out, "%s %s\n", emoji, title)
}

// Item prints an aligned key-value line under a header.
func (c *Console) Item(key string, value any) {
	fmt.Fprintf(c.Out, "   %-18s %v\n", key+":", value)
}

// ItemPlain prints an indented line without key alignment.
func (c *Console) ItemPlain(msg string) {
	fmt.Fprintf(c.Out, "   %s\n", msg)
}

// Success prints a completion line with a checkmark.
func (c *Console) Success(msg string) {
	fmt.Fprintf(c.Out, "✅ %s\n", msg)
}

// Info prints a neutral status line.
func (c *Console) Info(msg string) {
	fmt.Fprintf(c.Out, "➜ %s\n", msg)
}
