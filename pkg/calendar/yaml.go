package calendar

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type definitionFile struct {
	Exchanges []Definition `yaml:"exchanges"`
}

// LoadFile reads exchange definitions from a YAML file. The file replaces
// the builtin set wholesale; operators who only want to add an exchange
// start from a dump of the defaults.
func LoadFile(path string) ([]Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read calendar file: %w", err)
	}

	var file definitionFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse calendar file %s: %w", path, err)
	}
	if len(file.Exchanges) == 0 {
		return nil, fmt.Errorf("calendar file %s defines no exchanges", path)
	}
	return file.Exchanges, nil
}
