// Where: cmd/stackc/main.go
// What: CLI entrypoint.
// Why: Execute stackc commands with configured dependencies.
package main

import (
	"os"

	"github.com/stackcraft/stackc/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], buildDependencies()))
}
