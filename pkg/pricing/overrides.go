package pricing

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overridesFile is the on-disk shape of a pricing overrides document:
//
//	models:
//	  my-fine-tune:
//	    provider: custom
//	    input_per_1k: 0.0010
//	    output_per_1k: 0.0020
type overridesFile struct {
	Models map[string]ModelPrice `yaml:"models"`
}

// LoadOverrides reads a pricing overrides file and registers every model it
// contains on resolver. Registered entries take priority over both the feed
// and the built-in table. It returns the number of models registered.
func LoadOverrides(resolver *Resolver, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read overrides file: %w", err)
	}

	var doc overridesFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("failed to parse overrides file %q: %w", path, err)
	}

	for name, price := range doc.Models {
		resolver.RegisterModel(name, price.InputPer1K, price.OutputPer1K, price.Provider)
	}

	return len(doc.Models), nil
}
