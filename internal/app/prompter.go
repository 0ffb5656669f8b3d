// Where: internal/app/prompter.go
// What: Interactive confirmation using the huh library.
// Why: Creating cloud resources deserves an explicit yes.
package app

import (
	"github.com/charmbracelet/huh"
)

// Prompter asks the user for confirmation before destructive or
// resource-creating operations.
type Prompter interface {
	Confirm(title string) (bool, error)
}

// HuhPrompter implements Prompter using the huh TUI library.
type HuhPrompter struct{}

func (p HuhPrompter) Confirm(title string) (bool, error) {
	var confirmed bool
	err := huh.NewConfirm().
		Title(title).
		Value(&confirmed).
		Run()
	if err != nil {
		return false, err
	}
	return confirmed, nil
}
