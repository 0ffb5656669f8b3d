// Where: internal/compiler/variables.go
// What: Provider and environment variable compilation.
// Why: Assemble the variable artifact from its three sources in fixed precedence.
package compiler

import (
	"github.com/stackcraft/stackc/internal/config"
)

// CompileVariables builds the variable descriptor list from fixed provider
// identity variables, declared input variables, and the first matching
// environment's defaults, in that order. Duplicate names across sources are
// kept as-is; the provisioning engine decides how to treat them.
//
// Returns nil when the configuration declares no input_variables key at
// all, in which case no variable artifact is produced. A declared-but-empty
// list still yields a (possibly empty) artifact.
func CompileVariables(cfg config.StackConfig, region, accountID, activeEnv string) []map[string]any {
	if cfg.InputVariables == nil {
		return nil
	}

	vars := make([]map[string]any, 0)
	if cfg.StackComponent {
		vars = append(vars,
			variableEntry("region", "string", region),
			variableEntry("account_id", "string", accountID),
		)
	}

	for _, declared := range *cfg.InputVariables {
		entry := map[string]any{"type": "string"}
		if declared.Default != nil {
			entry["default"] = declared.Default
		}
		vars = append(vars, map[string]any{declared.Name: []map[string]any{entry}})
	}

	for _, env := range cfg.Environments {
		if !env.Matches(activeEnv) {
			continue
		}
		for _, v := range env.Variables {
			vars = append(vars, variableEntry(v.Name, "string", v.Value))
		}
		break
	}

	return vars
}

func variableEntry(name, varType string, defaultValue any) map[string]any {
	return map[string]any{
		name: []map[string]any{{
			"type":    varType,
			"default": defaultValue,
		}},
	}
}
