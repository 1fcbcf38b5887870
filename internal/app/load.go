package app

import (
	"context"
	"fmt"

	"github.com/vk/depgraph/internal/ctxlog"
	"github.com/vk/depgraph/internal/inmemorytopology"
	"github.com/vk/depgraph/internal/telemetry"
	"github.com/vk/depgraph/internal/topologystore"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// loadStore reads every configured manifest and builds the topology from it.
// Items named only as dependencies become vertices too.
func (a *App) loadStore(ctx context.Context) (topologystore.Store[string], error) {
	ctx, span := telemetry.Tracer().Start(ctx, "load")
	defer span.End()
	logger := ctxlog.FromContext(ctx)

	model, err := a.loaders.Load(ctx, a.config.Paths...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "manifest loading failed")
		return nil, fmt.Errorf("failed to load manifests: %w", err)
	}
	if len(model.Items) == 0 {
		logger.Warn("No items found in manifests.", "paths", a.config.Paths)
	}

	store := inmemorytopology.New[string]()
	for _, item := range model.Items {
		store.Add(ctx, item.Name)
		for _, dep := range item.DependsOn {
			store.AddDependency(ctx, item.Name, dep)
		}
	}

	vertices := len(store.Items(ctx))
	span.SetAttributes(
		attribute.Int("depgraph.declared_items", len(model.Items)),
		attribute.Int("depgraph.vertices", vertices),
	)
	logger.Debug("Topology built from manifests.", "declared", len(model.Items), "vertices", vertices)
	return store, nil
}
