package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config drives the listtest demonstration: which values the find steps
// look for and which records the insertion steps add.
type Config struct {
	FindText     string `yaml:"find_text"`
	FindNumber   int    `yaml:"find_number"`
	HeadNumber   int    `yaml:"head_number"`
	HeadText     string `yaml:"head_text"`
	MiddleNumber int    `yaml:"middle_number"`
	MiddleText   string `yaml:"middle_text"`
}

func defaults() *Config {
	return &Config{
		FindText:     "Donald",
		FindNumber:   6,
		HeadNumber:   9,
		HeadText:     "Gyro Gearloose",
		MiddleNumber: 10,
		MiddleText:   "Launchpad",
	}
}

// Load reads path over the built-in defaults. An empty path or a
// missing file yields the defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
