// Where: internal/compiler/inject.go
// What: Conditional shared-network module injection.
// Why: A single network layer serves all stacks; its shape depends on signals folded over the whole pass.
package compiler

import (
	"github.com/stackcraft/stackc/internal/provider"
)

// InjectNetwork synthesizes the shared network module descriptor for the
// provider. Runs strictly after the stack pass: createDatabaseSubnets is
// only final once every entry has been resolved. GCP has no injected
// network module yet; each new provider gets its own case here.
func InjectNetwork(p provider.Provider, createDatabaseSubnets bool) *ModuleDescriptor {
	switch p {
	case provider.AWS:
		return &ModuleDescriptor{
			Name:   "vpc",
			Source: "../modules/cloud/aws/vpc",
			Attributes: map[string]any{
				"create_database_subnets": createDatabaseSubnets,
			},
		}
	case provider.GCP:
		return nil
	}
	return nil
}
