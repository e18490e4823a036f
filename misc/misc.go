// Package misc provides program identification helpers.
package misc

import (
	"runtime/debug"
)

const appName = "cardgen"

// set by the linker during release builds
var (
	version = ""
	gitHash = ""
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	if len(version) > 0 {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && len(bi.Main.Version) > 0 {
		return bi.Main.Version
	}
	return "(devel)"
}

func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
