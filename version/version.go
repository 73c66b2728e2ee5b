// Package version carries the build metadata stamped in via -ldflags.
package version

import (
	"fmt"
	"runtime"
)

// Set by the linker; the defaults identify a go-run build.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// Info is the full version report of a workbench binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo assembles the report from the stamped variables and the runtime.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func (i Info) String() string {
	return fmt.Sprintf(
		"Version:     %s\nCommit:      %s\nBuild Date:  %s\nGo Version:  %s\nPlatform:    %s",
		i.Version, i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}
