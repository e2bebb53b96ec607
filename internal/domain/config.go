package domain

// Config represents the minimal serieslab configuration loaded from
// serieslab.yaml. The series base value, term cap and stopping threshold are
// fixed constants and deliberately absent here.
type Config struct {
	Report ReportConfig
	Save   SaveConfig
	Paths  PathsConfig
}

type ReportConfig struct {
	Iterations int
}

type SaveConfig struct {
	Enabled bool
}

type PathsConfig struct {
	RunsDir string
}

// DefaultConfig provides sane defaults if serieslab.yaml is absent or
// partially missing.
func DefaultConfig() Config {
	return Config{
		Report: ReportConfig{Iterations: DefaultIterations},
		Save:   SaveConfig{Enabled: true},
		Paths:  PathsConfig{RunsDir: "runs"},
	}
}
