package main

import (
	"fmt"
	"runtime"
)

var (
	version = "dev"
	commit  = "unknown"
)

// versionInfo is printed by --version.
func versionInfo() string {
	return fmt.Sprintf("minigrep v%s\nCommit: %s\nGo version: %s\nOS/Arch: %s/%s\n",
		version, commit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
