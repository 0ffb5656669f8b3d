// Where: cmd/stackc/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/stackcraft/stackc/internal/app"
	"github.com/stackcraft/stackc/internal/backend"
)

// buildDependencies constructs the runtime dependencies required by the CLI.
func buildDependencies() app.Dependencies {
	return app.Dependencies{
		Out:            os.Stdout,
		Prompter:       app.HuhPrompter{},
		BackendFactory: backend.NewAWSClientFactory(),
	}
}
