package config

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/jsonc"
	"github.com/vk/depgraph/internal/ctxlog"
)

// JSONLoader reads manifests written in JSON. Comments and trailing commas are
// accepted.
type JSONLoader struct{}

// NewJSONLoader creates a new JSON manifest loader.
func NewJSONLoader() *JSONLoader {
	return &JSONLoader{}
}

// Extensions implements Loader.
func (l *JSONLoader) Extensions() []string {
	return []string{".json", ".jsonc"}
}

// Load implements Loader.
func (l *JSONLoader) Load(ctx context.Context, path string) (*Model, error) {
	ctxlog.FromContext(ctx).Debug("Loading JSON manifest.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file %s: %w", path, err)
	}

	var doc document
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return NewModel(), nil
		}
		return nil, fmt.Errorf("failed to decode JSON file %s: %w", path, err)
	}
	return doc.translate(path)
}
