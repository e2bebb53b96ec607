package config

type YAMLConfig struct {
	Report YAMLReport `yaml:"report"`
	Save   YAMLSave   `yaml:"save"`
	Paths  YAMLPaths  `yaml:"paths"`
}

type YAMLReport struct {
	Iterations *int `yaml:"iterations"`
}

type YAMLSave struct {
	Enabled *bool `yaml:"enabled"`
}

type YAMLPaths struct {
	RunsDir string `yaml:"runs_dir"`
}
