package replay

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseHandSpec decodes a hand spec written in YAML or JSON.
func ParseHandSpec(data []byte) (HandSpec, error) {
	var spec HandSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return HandSpec{}, fmt.Errorf("parse hand spec: %w", err)
	}
	return spec, nil
}

// LoadHandSpec reads a hand spec file.
func LoadHandSpec(path string) (HandSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return HandSpec{}, fmt.Errorf("read hand spec: %w", err)
	}
	return ParseHandSpec(data)
}
