// Where: internal/app/error_helpers.go
// What: Shared error reporting helpers for command handlers.
// Why: Keep failure output uniform across commands.
package app

import (
	"fmt"
	"io"
)

// exitWithError prints the error and returns the failure exit code.
func exitWithError(out io.Writer, err error) int {
	fmt.Fprintf(out, "✗ %v\n", err)
	return 1
}
