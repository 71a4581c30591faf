package predict

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest describes one exported model artifact. It freezes at training time
// everything the serving path must not refit per request: the class list, the
// feature order the weights expect, and the categorical codebooks. The weight
// archive itself is opaque to this service.
type Manifest struct {
	// Task names the prediction task: obesity, exercise or menstrual.
	Task string `yaml:"task"`

	// Weights is the file name of the weight archive next to the manifest.
	Weights string `yaml:"weights"`

	// Classes lists the output classes in model index order (classifiers only).
	Classes []string `yaml:"classes,omitempty"`

	// Features lists the input feature names in the order the model expects.
	Features []string `yaml:"features,omitempty"`

	// Codebooks maps categorical feature name to its label-to-code mapping,
	// frozen from the training run.
	Codebooks map[string]map[string]int `yaml:"codebooks,omitempty"`
}

// LoadManifest reads and validates a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if m.Task == "" {
		return nil, fmt.Errorf("%w: missing task", ErrInvalidManifest)
	}
	if m.Weights == "" {
		return nil, fmt.Errorf("%w: missing weights file", ErrInvalidManifest)
	}
	return &m, nil
}
