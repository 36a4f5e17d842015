package config

// RootPathFlag selects the directory holding the configuration file.
type RootPathFlag struct {
	RootPath string `long:"root-path" description:"Path of the directory holding config.toml"`
}

func NewRootPathFlag() RootPathFlag {
	return RootPathFlag{
		RootPath: DefaultRootPath(),
	}
}
