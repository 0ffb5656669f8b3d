// Where: internal/compiler/outputs.go
// What: Aggregated output reference collection.
// Why: Exported module outputs surface once, in first-seen order, in a single artifact.
package compiler

import (
	"fmt"

	"github.com/stackcraft/stackc/internal/modschema"
	"github.com/stackcraft/stackc/internal/provider"
)

// OutputSet accumulates exported output references across the stack pass.
type OutputSet struct {
	entries []map[string]any
}

// NewOutputSet returns an empty OutputSet.
func NewOutputSet() *OutputSet {
	return &OutputSet{entries: make([]map[string]any, 0)}
}

// Collect appends one reference per exported output of the schema, keeping
// the schema's declared order. A nil schema collects nothing.
func (s *OutputSet) Collect(moduleName string, schema *modschema.ModuleSchema) {
	if schema == nil {
		return
	}
	for _, output := range schema.Outputs {
		if !output.Export {
			continue
		}
		s.entries = append(s.entries, map[string]any{
			output.Name: map[string]any{
				"value": interpolate(fmt.Sprintf("module.%s.%s", moduleName, output.Name)),
			},
		})
	}
}

// Finalize appends the fixed top-level entries: the state storage location
// and a nested provider-identity block. Call once, after every stack entry
// has been collected.
func (s *OutputSet) Finalize(stateFile string, p provider.Provider, region, accountID string) {
	s.entries = append(s.entries, map[string]any{
		"state_storage": map[string]any{"value": stateFile},
	})
	s.entries = append(s.entries, map[string]any{
		"providers": map[string]any{
			"value": map[string]any{
				p.String(): map[string]any{
					"region":     region,
					"account_id": accountID,
				},
			},
		},
	})
}

// Document returns the serializable output artifact.
func (s *OutputSet) Document() map[string]any {
	return map[string]any{"output": s.entries}
}
