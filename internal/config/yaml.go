package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/depgraph/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// document is the on-disk shape shared by the YAML and JSON manifests.
type document struct {
	Items []documentItem `yaml:"items" json:"items"`
}

type documentItem struct {
	Name      string   `yaml:"name" json:"name"`
	DependsOn []string `yaml:"depends_on" json:"depends_on"`
}

// translate validates a decoded document and converts it into a Model.
func (d *document) translate(path string) (*Model, error) {
	model := NewModel()
	for i, item := range d.Items {
		if item.Name == "" {
			return nil, fmt.Errorf("%s: item #%d has no name", path, i+1)
		}
		for _, dep := range item.DependsOn {
			if dep == "" {
				return nil, fmt.Errorf("%s: item %q has an empty dependency", path, item.Name)
			}
		}
		model.Declare(item.Name, path, item.DependsOn...)
	}
	return model, nil
}

// YAMLLoader reads manifests written in YAML.
type YAMLLoader struct{}

// NewYAMLLoader creates a new YAML manifest loader.
func NewYAMLLoader() *YAMLLoader {
	return &YAMLLoader{}
}

// Extensions implements Loader.
func (l *YAMLLoader) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// Load implements Loader. Unknown keys are rejected so typos such as
// `dependson` do not silently drop edges.
func (l *YAMLLoader) Load(ctx context.Context, path string) (*Model, error) {
	ctxlog.FromContext(ctx).Debug("Loading YAML manifest.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file %s: %w", path, err)
	}

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		// A file without any document, blank or comments only, declares nothing.
		if errors.Is(err, io.EOF) {
			return NewModel(), nil
		}
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}
	return doc.translate(path)
}
