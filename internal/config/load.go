package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/vk/depgraph/internal/ctxlog"
	"github.com/vk/depgraph/internal/fsutil"
	"golang.org/x/sync/errgroup"
)

// Set dispatches manifest files to the Loader registered for their extension.
type Set struct {
	loaders    map[string]Loader
	extensions []string
}

// NewSet creates a Set from the given loaders. A later loader wins when two
// loaders claim the same extension.
func NewSet(loaders ...Loader) *Set {
	s := &Set{loaders: make(map[string]Loader)}
	for _, l := range loaders {
		for _, ext := range l.Extensions() {
			ext = strings.ToLower(ext)
			if _, ok := s.loaders[ext]; !ok {
				s.extensions = append(s.extensions, ext)
			}
			s.loaders[ext] = l
		}
	}
	return s
}

// Extensions returns every extension the set can load, in registration order.
func (s *Set) Extensions() []string {
	return append([]string(nil), s.extensions...)
}

// Load reads every manifest found under paths and merges them into a single
// model. Directories are searched recursively for known extensions; a file
// named directly must have a known extension.
func (s *Set) Load(ctx context.Context, paths ...string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Manifest loader started.", "path_count", len(paths))

	if len(s.loaders) == 0 {
		return nil, errors.New("no manifest loaders registered")
	}

	var files []string
	seen := make(map[string]struct{})
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, s.extensions...)
		if err != nil {
			return nil, err
		}
		logger.Debug("Discovered manifest files.", "path", path, "count", len(found))

		for _, file := range found {
			if _, ok := seen[file]; ok {
				continue
			}
			seen[file] = struct{}{}
			if _, ok := s.loaders[strings.ToLower(filepath.Ext(file))]; !ok {
				return nil, fmt.Errorf("unsupported manifest format %q for file %s", filepath.Ext(file), file)
			}
			files = append(files, file)
		}
	}

	// Files are parsed concurrently but merged in discovery order, so the
	// resulting item order does not depend on scheduling.
	models := make([]*Model, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, file := range files {
		loader := s.loaders[strings.ToLower(filepath.Ext(file))]
		g.Go(func() error {
			m, err := loader.Load(gctx, file)
			if err != nil {
				return err
			}
			models[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	model := NewModel()
	for _, m := range models {
		model.Merge(m)
	}

	logger.Debug("Manifest loading complete.", "files", len(files), "items", len(model.Items))
	return model, nil
}
