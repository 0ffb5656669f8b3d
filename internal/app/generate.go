// Where: internal/app/generate.go
// What: Generate command handler.
// Why: Orchestrate config load, compilation, and backend descriptor output.
package app

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/stackcraft/stackc/internal/backend"
	"github.com/stackcraft/stackc/internal/compiler"
	"github.com/stackcraft/stackc/internal/config"
	"github.com/stackcraft/stackc/internal/emitter"
	"github.com/stackcraft/stackc/internal/fileops"
	"github.com/stackcraft/stackc/internal/modschema"
	"github.com/stackcraft/stackc/internal/provider"
	"github.com/stackcraft/stackc/internal/ui"
)

func runGenerate(cli CLI, _ Dependencies, out io.Writer) int {
	console := ui.New(out)

	cfg, err := config.LoadStackConfig(cli.Config)
	if err != nil {
		return exitWithError(out, err)
	}

	prov, err := provider.ParseProvider(cfg.Provider.Name)
	if err != nil {
		return exitWithError(out, err)
	}
	deployment, err := provider.ParseDeploymentType(cfg.Deployment.Type)
	if err != nil {
		return exitWithError(out, err)
	}

	stateFile := cfg.Name + ".tfstate"
	backendContent := ""
	if prov == provider.AWS {
		id, err := backend.DeriveIdentity(cfg.Name, prov, cfg.Provider.Region, cfg.Provider.AccountID)
		if err != nil {
			return exitWithError(out, err)
		}
		stateFile = id.StateFile()
		backendContent, err = backend.RenderBackend(id, prov)
		if err != nil {
			return exitWithError(out, err)
		}
	}

	console.Header("🧱", "Compiling stacks:")
	console.Item("Config", cli.Config)
	console.Item("Provider", prov)
	console.Item("Deployment", deployment)
	console.Item("Stacks", len(cfg.Stacks))
	for _, entry := range cfg.Stacks {
		console.ItemPlain(fmt.Sprintf("- %s: %s", entry.Type, entry.Name))
	}

	c := &compiler.Compiler{
		Schemas:    modschema.NewReader(cli.Generate.Modules),
		Emitter:    emitter.New(cli.Generate.Target),
		Provider:   prov,
		Deployment: deployment,
		Region:     cfg.Provider.Region,
		AccountID:  cfg.Provider.AccountID,
		StateFile:  stateFile,
		ActiveEnv:  cli.Generate.Env,
	}
	if err := c.Run(cfg); err != nil {
		return exitWithError(out, err)
	}

	if backendContent != "" {
		path := filepath.Join(cli.Generate.Target, "terraform.tf.json")
		if err := fileops.WriteFile(path, backendContent); err != nil {
			return exitWithError(out, err)
		}
	}

	console.Success(fmt.Sprintf("Descriptors written to %s", cli.Generate.Target))
	return 0
}
