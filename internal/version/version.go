// Where: internal/version/version.go
// What: Binary version reporting.
// Why: Surface the VCS revision the binary was built from.
package version

import (
	"fmt"
	"runtime/debug"
)

// GetVersion reports the short VCS revision embedded at build time,
// with a "(dirty)" suffix for uncommitted changes. Builds without
// embedded build info fall back to "dev".
func GetVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	revision := "dev"
	dirty := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if len(setting.Value) >= 7 {
				revision = setting.Value[:7]
			} else if setting.Value != "" {
				revision = setting.Value
			}
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}

	if dirty && revision != "dev" {
		return fmt.Sprintf("%s (dirty)", revision)
	}
	return revision
}
