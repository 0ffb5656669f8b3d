// Where: internal/provider/provider.go
// What: Cloud provider and deployment type discriminators.
// Why: Keep provider dispatch closed so new providers are compile-checked.
package provider

import (
	"fmt"
	"strings"
)

// Provider identifies the cloud platform a stack deploys to.
type Provider string

const (
	AWS Provider = "aws"
	GCP Provider = "gcp"
)

// DeploymentType selects the infrastructure flavor of a deployment.
type DeploymentType string

const (
	Kubernetes DeploymentType = "kubernetes"
	CloudVM    DeploymentType = "cloud_vm"
)

// ParseProvider maps a configuration string onto a known Provider.
func ParseProvider(value string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "aws":
		return AWS, nil
	case "gcp":
		return GCP, nil
	default:
		return "", fmt.Errorf("unsupported provider: %q", value)
	}
}

// ParseDeploymentType maps a configuration string onto a known DeploymentType.
func ParseDeploymentType(value string) (DeploymentType, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "kubernetes":
		return Kubernetes, nil
	case "cloud_vm", "cloud-vm":
		return CloudVM, nil
	default:
		return "", fmt.Errorf("unsupported deployment type: %q", value)
	}
}

func (p Provider) String() string { return string(p) }

func (d DeploymentType) String() string { return string(d) }
