package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/depgraph/internal/config"
	"github.com/vk/depgraph/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is used to decode the top-level blocks of a manifest file.
type fileRoot struct {
	Items  []*itemBlock `hcl:"item,block"`
	Remain hcl.Body     `hcl:",remain"`
}

// itemBlock is a single `item "name" { ... }` block. Attributes other than
// depends_on are tolerated so manifests can carry annotations.
type itemBlock struct {
	Name      string         `hcl:"name,label"`
	DependsOn hcl.Expression `hcl:"depends_on,optional"`
	Remain    hcl.Body       `hcl:",remain"`
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".hcl"}
}

// Load implements config.Loader.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading HCL manifest.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	model := config.NewModel()
	for _, block := range root.Items {
		if block.Name == "" {
			return nil, fmt.Errorf("%s: item block has an empty name", path)
		}
		deps, diags := dependencyNames(block.DependsOn)
		if diags.HasErrors() {
			return nil, fmt.Errorf("%s: invalid depends_on for item %q: %w", path, block.Name, diags)
		}
		model.Declare(block.Name, path, deps...)
	}

	logger.Debug("HCL manifest loaded.", "path", path, "items", len(model.Items))
	return model, nil
}
