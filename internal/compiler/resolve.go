// Where: internal/compiler/resolve.go
// What: Input resolution for one module schema.
// Why: Merge internal defaults with user-facing overrides under the visibility contract.
package compiler

import (
	"fmt"

	"github.com/stackcraft/stackc/internal/modschema"
)

// subnetTriggerKeys are the parameter names whose truthy values request
// database subnets in the shared network layer.
var subnetTriggerKeys = map[string]struct{}{
	"create_vpc_database_subnets": {},
	"create_database_subnets":     {},
}

// interpolate wraps an expression in the provisioning engine's deferred
// interpolation form. The engine evaluates it at apply time.
func interpolate(expr string) string {
	return fmt.Sprintf("${ %s }", expr)
}

// resolveInternalInputs collects every non-user-facing input under its own
// name. An input whose default is the NoDefault sentinel resolves to a
// deferred interpolation of its value expression instead of a literal.
func resolveInternalInputs(schema *modschema.ModuleSchema) map[string]any {
	attrs := map[string]any{}
	if schema == nil {
		return attrs
	}
	for _, input := range schema.Inputs {
		if input.UserFacing {
			continue
		}
		if input.Default == modschema.NoDefault {
			attrs[input.Name] = interpolate(input.Value)
		} else {
			attrs[input.Name] = input.Default
		}
	}
	return attrs
}

// applyParams merges caller-supplied parameters into attrs after checking
// each against the schema's visibility contract. It reports whether any
// subnet-triggering parameter carried a truthy value, so the caller can fold
// the signal across all entries.
//
// Parameters without any matching input are ignored, mirroring the
// provisioning engine's accepting behavior for unknown keys.
func applyParams(
	schema *modschema.ModuleSchema,
	params map[string]any,
	attrs map[string]any,
) (bool, error) {
	if len(params) == 0 {
		return false, nil
	}
	if schema == nil {
		return false, configErrorf("parameters supplied for a stack without a module schema")
	}

	triggered := false
	for key, value := range params {
		for _, input := range schema.Inputs {
			if key != input.Name {
				continue
			}
			if !input.UserFacing {
				return false, configErrorf("%s is not a user facing parameter", key)
			}
			attrs[key] = value
			if _, ok := subnetTriggerKeys[key]; ok && truthy(value) {
				triggered = true
			}
		}
	}
	return triggered, nil
}

// truthy reports whether a parameter value counts as set.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case string:
		return v != ""
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}
