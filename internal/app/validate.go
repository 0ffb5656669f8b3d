// Where: internal/app/validate.go
// What: Validate command handler.
// Why: Let users check a stack file before generating anything.
package app

import (
	"fmt"
	"io"

	"github.com/stackcraft/stackc/internal/config"
	"github.com/stackcraft/stackc/internal/fileops"
	"github.com/stackcraft/stackc/internal/provider"
	"github.com/stackcraft/stackc/internal/ui"
)

func runValidate(cli CLI, _ Dependencies, out io.Writer) int {
	console := ui.New(out)

	if !fileops.FileExists(cli.Config) {
		return exitWithError(out, fmt.Errorf("stack file not found: %s", cli.Config))
	}

	cfg, err := config.LoadStackConfig(cli.Config)
	if err != nil {
		return exitWithError(out, err)
	}
	if _, err := provider.ParseProvider(cfg.Provider.Name); err != nil {
		return exitWithError(out, err)
	}
	if _, err := provider.ParseDeploymentType(cfg.Deployment.Type); err != nil {
		return exitWithError(out, err)
	}

	console.Success(fmt.Sprintf("%s is valid (%d stacks)", cli.Config, len(cfg.Stacks)))
	return 0
}
