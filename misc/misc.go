// Package misc keeps build time information about the program.
package misc

import (
	"runtime/debug"
)

// Set with -ldflags "-X jatsmeta/misc.version=... -X jatsmeta/misc.gitHash=..."
var (
	version = "dev"
	gitHash = ""
	appName = "jatsmeta"
)

func init() {
	if len(gitHash) > 0 {
		return
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				gitHash = s.Value
				break
			}
		}
	}
	if len(gitHash) == 0 {
		gitHash = "unknown"
	}
}

// GetAppName returns program name used for logs, reports and temporary files.
func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
