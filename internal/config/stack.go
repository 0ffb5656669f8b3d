// Where: internal/config/stack.go
// What: Stack configuration types decoded from the stack YAML file.
// Why: Keep the declarative stack shape centralized and order-preserving.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// StackConfig is the root of a stack configuration file.
type StackConfig struct {
	Name           string           `yaml:"name"`
	Provider       ProviderConfig   `yaml:"provider"`
	Deployment     DeploymentConfig `yaml:"deployment"`
	Stacks         []StackEntry     `yaml:"stacks"`
	InputVariables *[]InputVariable `yaml:"input_variables"`
	Environments   []Environment    `yaml:"environments"`
	StackComponent bool             `yaml:"stack_component"`
}

// ProviderConfig identifies the target cloud account.
type ProviderConfig struct {
	Name      string `yaml:"name"`
	Region    string `yaml:"region"`
	AccountID string `yaml:"account_id"`
}

// DeploymentConfig selects the deployment flavor.
type DeploymentConfig struct {
	Type string `yaml:"type"`
}

// StackEntry is one declared infrastructure component. In YAML it is a
// single-key mapping whose key is the stack type:
//
//	- database:
//	    name: pg
//	    params:
//	      storage_gb: 50
type StackEntry struct {
	Type   string
	Name   string
	Params map[string]any
}

type stackSpec struct {
	Name   string         `yaml:"name"`
	Params map[string]any `yaml:"params"`
}

func (e *StackEntry) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]stackSpec
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return fmt.Errorf("stack entry must declare exactly one stack type, got %d", len(raw))
	}
	for stackType, spec := range raw {
		e.Type = stackType
		e.Name = spec.Name
		e.Params = spec.Params
	}
	return nil
}

// InputVariable is a user-declared provider-level input variable.
type InputVariable struct {
	Name    string `yaml:"name"`
	Default any    `yaml:"default"`
}

// Environment carries per-environment default variables. Variable order is
// preserved as written so generated artifacts stay deterministic.
type Environment struct {
	Name      string
	Variables []EnvVar
}

// EnvVar is one environment default variable.
type EnvVar struct {
	Name  string
	Value any
}

func (e *Environment) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Name      string    `yaml:"name"`
		Variables yaml.Node `yaml:"variables"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	e.Name = raw.Name
	if raw.Variables.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(raw.Variables.Content); i += 2 {
		var value any
		if err := raw.Variables.Content[i+1].Decode(&value); err != nil {
			return err
		}
		e.Variables = append(e.Variables, EnvVar{
			Name:  raw.Variables.Content[i].Value,
			Value: value,
		})
	}
	return nil
}

// Matches reports whether this environment serves the active environment
// name. An environment literally named "default" serves any active name.
func (e Environment) Matches(active string) bool {
	return e.Name == active || e.Name == "default"
}
