package draglook

import (
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Enabled bool `yaml:"enabled"`
}

func DefaultConfig() Config {
	return Config{Enabled: true}
}

// ParseConfig decodes component attribute data over base.
// Both YAML mappings and "key: value;" property lists are accepted.
// Keys absent from data keep the value of base.
func ParseConfig(data string, base Config) (Config, error) {
	src := strings.ReplaceAll(data, ";", "\n")
	if strings.TrimSpace(src) == "" {
		return base, nil
	}
	c := base
	if err := yaml.Unmarshal([]byte(src), &c); err != nil {
		return base, err
	}
	return c, nil
}
