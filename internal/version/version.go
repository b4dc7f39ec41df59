package version

import (
	"fmt"
	"runtime/debug"
)

// tag is set at build time:
// go build -ldflags "-X github.com/blackcrown/lobby/internal/version.tag=v0.1.0"
var tag = "dev"

var buildInfo string
var dirty bool

func Version() string {
	v := tag
	if dirty {
		v += "-dirty"
	}
	if buildInfo == "" {
		return v
	}
	return fmt.Sprintf("%s %s", v, buildInfo)
}

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var goos, goarch, revision string
	for _, s := range info.Settings {
		switch s.Key {
		case "GOOS":
			goos = s.Value
		case "GOARCH":
			goarch = s.Value
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	if len(revision) > 7 {
		revision = revision[:7]
	}

	buildInfo = fmt.Sprintf("%s/%s", goos, goarch)
	if revision != "" {
		buildInfo += " " + revision
	}
}
