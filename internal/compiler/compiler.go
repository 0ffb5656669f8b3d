// Where: internal/compiler/compiler.go
// What: Stack-to-module compilation pass.
// Why: Translate declared stacks into Terraform JSON descriptors for the provisioning engine.
package compiler

import (
	"fmt"

	"github.com/stackcraft/stackc/internal/config"
	"github.com/stackcraft/stackc/internal/emitter"
	"github.com/stackcraft/stackc/internal/modschema"
	"github.com/stackcraft/stackc/internal/provider"
)

// SchemaReader loads the declared contract for a (stackType, application)
// pair. A nil schema with nil error means no schema exists.
type SchemaReader interface {
	Read(stackType, applicationName string) (*modschema.ModuleSchema, error)
}

// ModuleDescriptor is one compiled module block, ready for emission.
type ModuleDescriptor struct {
	Name       string
	Source     string
	Attributes map[string]any
}

// Document returns the serializable module artifact.
func (d ModuleDescriptor) Document() map[string]any {
	block := map[string]any{"source": d.Source}
	for key, value := range d.Attributes {
		block[key] = value
	}
	return map[string]any{
		"module": map[string]any{d.Name: block},
	}
}

// Compiler runs the single sequential pass over declared stacks. Entries are
// processed strictly in declared order; the subnet signal is folded across
// the pass and read only after it completes, so the pass must never be
// parallelized.
type Compiler struct {
	Schemas    SchemaReader
	Emitter    emitter.Emitter
	Provider   provider.Provider
	Deployment provider.DeploymentType
	Region     string
	AccountID  string
	StateFile  string
	ActiveEnv  string
}

// Run compiles the configuration: one module artifact per stack entry, the
// conditionally injected network module, the aggregated output artifact,
// and the variable artifact when input variables are declared. The first
// failure aborts the run; artifacts already written stay on disk.
func (c *Compiler) Run(cfg config.StackConfig) error {
	outputs := NewOutputSet()
	createDatabaseSubnets := false

	for _, entry := range cfg.Stacks {
		triggered, err := c.compileEntry(entry, outputs)
		if err != nil {
			return err
		}
		createDatabaseSubnets = createDatabaseSubnets || triggered
	}

	if injected := InjectNetwork(c.Provider, createDatabaseSubnets); injected != nil {
		if err := c.Emitter.Emit(injected.Name, injected.Document()); err != nil {
			return err
		}
	}

	outputs.Finalize(c.StateFile, c.Provider, c.Region, c.AccountID)
	if err := c.Emitter.Emit("output", outputs.Document()); err != nil {
		return err
	}

	if vars := CompileVariables(cfg, c.Region, c.AccountID, c.ActiveEnv); vars != nil {
		if err := c.Emitter.Emit("variable", map[string]any{"variable": vars}); err != nil {
			return err
		}
	}

	return nil
}

// compileEntry resolves and emits one stack entry, reporting whether it
// raised the subnet-triggering signal.
func (c *Compiler) compileEntry(entry config.StackEntry, outputs *OutputSet) (bool, error) {
	if entry.Name == "" {
		return false, configErrorf("no application assigned to the stack: %s", entry.Type)
	}

	schema, err := c.Schemas.Read(entry.Type, entry.Name)
	if err != nil {
		return false, err
	}

	attrs := resolveInternalInputs(schema)
	outputs.Collect(entry.Name, schema)

	triggered, err := applyParams(schema, entry.Params, attrs)
	if err != nil {
		return false, err
	}

	// TODO: pick the module source based on c.Deployment once per-flavor
	// module trees exist.
	descriptor := ModuleDescriptor{
		Name:       entry.Name,
		Source:     fmt.Sprintf("../modules/applications/%s/%s/tf_module", entry.Type, entry.Name),
		Attributes: attrs,
	}
	return triggered, c.Emitter.Emit("stack_"+entry.Type, descriptor.Document())
}
