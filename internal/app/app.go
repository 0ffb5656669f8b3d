// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/stackcraft/stackc/internal/backend"
	"github.com/stackcraft/stackc/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command
// execution. It enables swapping cloud clients and prompts in tests.
type Dependencies struct {
	Out            io.Writer
	Prompter       Prompter
	BackendFactory backend.ClientFactory
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Config string `short:"f" default:"stack.yaml" help:"Path to the stack configuration file"`

	Generate GenerateCmd `cmd:"" help:"Compile the stack configuration into Terraform JSON descriptors"`
	Validate ValidateCmd `cmd:"" help:"Validate a stack configuration file"`
	Backend  BackendCmd  `cmd:"" help:"Manage the remote state backend"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

type GenerateCmd struct {
	Target  string `short:"o" default:".stackc/terraform" help:"Directory for generated descriptors"`
	Modules string `default:"modules/applications" help:"Directory containing application module schemas"`
	Env     string `short:"e" default:"default" help:"Active environment name"`
}

type ValidateCmd struct{}

type BackendCmd struct {
	Ensure BackendEnsureCmd `cmd:"" help:"Create the state bucket and lock table when missing"`
}

type BackendEnsureCmd struct {
	Yes bool `short:"y" help:"Skip confirmation prompt"`
}

type VersionCmd struct{}

// Run is the main entry point for CLI command execution. It parses the
// command-line arguments and dispatches to the matching handler. Returns 0
// on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	deps.Out = out

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
		}
	}

	if exitCode, handled := dispatchCommand(ctx.Command(), cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	handlers := map[string]commandHandler{
		"generate":       runGenerate,
		"validate":       runValidate,
		"backend ensure": runBackendEnsure,
		"version":        func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}
	if handler, ok := handlers[command]; ok {
		return handler(cli, deps, out), true
	}
	return 1, false
}

func runVersion(out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}
