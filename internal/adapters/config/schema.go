package config

// Projectfile represents the structure of the allfeat.yaml configuration file.
type Projectfile struct {
	Version   string   `yaml:"version"`
	Cargo     string   `yaml:"cargo"`
	KeepGoing bool     `yaml:"keepGoing"`
	Color     string   `yaml:"color"`
	Crates    []string `yaml:"crates"`
}
