package common

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version and GitCommit are set via ldflags at build time
var (
	Version   = "dev"
	GitCommit = "unknown"
)

type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
}

func GetModuleBuildInfo() (string, string, bool) {
	if Version != "dev" {
		return Version, GitCommit, true
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", "", false
	}

	var gitCommit string
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			gitCommit = setting.Value
			break
		}
	}

	return info.Main.Version, gitCommit, true
}

// GetBuildInfo collects the version details printed by the CLI and
// reported by the health endpoint.
func GetBuildInfo() BuildInfo {
	version, gitCommit, ok := GetModuleBuildInfo()
	if !ok {
		version = "unknown"
	}
	if len(gitCommit) == 0 {
		gitCommit = "unknown"
	}
	return BuildInfo{
		Version:   version,
		GitCommit: gitCommit,
		GoVersion: runtime.Version(),
	}
}

func GetVersion() string {
	info := GetBuildInfo()
	return fmt.Sprintf("%s (git: %s)", info.Version, info.GitCommit)
}
