package version

import "runtime/debug"

var (
	cliVersionHash = ""
	cliVersion     = "v0.1.0+dev"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	modified := false

	for _, v := range info.Settings {
		if v.Key == "vcs.revision" {
			cliVersionHash = v.Value
		}
		if v.Key == "vcs.modified" {
			modified = true
		}
	}
	if modified {
		cliVersionHash += "-modified"
	}
}

// Get returns the release version of the binary.
func Get() string {
	return cliVersion
}

// GetCommitHash returns the vcs revision the binary was built from.
func GetCommitHash() string {
	return cliVersionHash
}
