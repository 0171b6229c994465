// Package version carries build metadata stamped in with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/grovetools/sticky/version.Version=v0.3.0"
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// GetInfo returns the stamped values. An unstamped commit falls back to the
// VCS revision recorded by the toolchain, when there is one.
func GetInfo() Info {
	commit := Commit
	if commit == "none" {
		if rev := vcsRevision(); rev != "" {
			commit = rev
		}
	}
	return Info{
		Version:   Version,
		Commit:    commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func vcsRevision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return ""
}

func (i Info) String() string {
	var b strings.Builder
	for _, row := range [][2]string{
		{"Commit", i.Commit},
		{"Built", i.BuildDate},
		{"Go", i.GoVersion},
		{"Platform", i.Platform},
	} {
		fmt.Fprintf(&b, "  %-10s%s\n", row[0]+":", row[1])
	}
	return strings.TrimSuffix(b.String(), "\n")
}
