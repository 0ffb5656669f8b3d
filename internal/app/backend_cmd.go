// Where: internal/app/backend_cmd.go
// What: Backend ensure command handler.
// Why: Prepare remote-state resources before the first provisioning run.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/stackcraft/stackc/internal/backend"
	"github.com/stackcraft/stackc/internal/config"
	"github.com/stackcraft/stackc/internal/provider"
	"github.com/stackcraft/stackc/internal/ui"
)

func runBackendEnsure(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	cfg, err := config.LoadStackConfig(cli.Config)
	if err != nil {
		return exitWithError(out, err)
	}
	prov, err := provider.ParseProvider(cfg.Provider.Name)
	if err != nil {
		return exitWithError(out, err)
	}

	id, err := backend.DeriveIdentity(cfg.Name, prov, cfg.Provider.Region, cfg.Provider.AccountID)
	if err != nil {
		return exitWithError(out, err)
	}

	console.Header("🪣", "Remote state backend:")
	console.Item("Bucket", id.Bucket)
	console.Item("Lock table", id.LockTable)
	console.Item("Region", id.Region)

	if !cli.Backend.Ensure.Yes {
		if deps.Prompter == nil {
			return exitWithError(out, fmt.Errorf("confirmation required; re-run with --yes"))
		}
		confirmed, err := deps.Prompter.Confirm("Create missing state resources?")
		if err != nil {
			return exitWithError(out, err)
		}
		if !confirmed {
			console.Info("Aborted")
			return 1
		}
	}

	if deps.BackendFactory == nil {
		return exitWithError(out, fmt.Errorf("no backend client factory configured"))
	}

	ctx := context.Background()
	s3Client, err := deps.BackendFactory.S3(ctx, id.Region)
	if err != nil {
		return exitWithError(out, err)
	}
	dynamoClient, err := deps.BackendFactory.DynamoDB(ctx, id.Region)
	if err != nil {
		return exitWithError(out, err)
	}

	if err := backend.Ensure(ctx, s3Client, dynamoClient, id); err != nil {
		return exitWithError(out, err)
	}

	console.Success("State backend ready")
	return 0
}
