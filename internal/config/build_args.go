package config

import "fmt"

// The following vars are set by the linker during build
// go build -ldflags="-X github/chapool/go-rixsdk/internal/config.Commit=..."
var (
	ModuleName = "go-rixsdk"
	Commit     = "< 40 chars git commit hash via ldflags >"
	BuildDate  = "1970-01-01-00:00:00+00:00"
)

// GetFormattedBuildArgs returns string representation of buildsargs set via ldflags "<ModuleName> @ <Commit> (<BuildDate>)"
func GetFormattedBuildArgs() string {
	return fmt.Sprintf("%v @ %v (%v)", ModuleName, Commit, BuildDate)
}
