package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/depgraph/internal/ctxlog"
	"github.com/vk/depgraph/internal/render"
	"github.com/vk/depgraph/internal/telemetry"
	"github.com/vk/depgraph/internal/topologystore"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Version is reported as the service version on exported spans.
var Version = "dev"

// Command selects what Run does with the loaded topology.
type Command string

const (
	CommandOrder Command = "order"
	CommandTree  Command = "tree"
	CommandCheck Command = "check"
)

// ErrInvalidTopology is returned by the check command when the manifests
// cannot be ordered. The result has already been written to the output.
var ErrInvalidTopology = errors.New("invalid topology")

// Run executes a single command against the configured manifests.
func (a *App) Run(ctx context.Context, command Command) (err error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "command", command)

	shutdown, err := telemetry.Init(ctx, telemetry.Options{
		ServiceName:    "depgraph",
		ServiceVersion: Version,
		Enabled:        a.config.Trace,
		Endpoint:       a.config.TraceEndpoint,
		Writer:         a.logW,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		if serr := shutdown(context.WithoutCancel(ctx)); serr != nil {
			a.logger.Warn("Failed to flush traces.", "error", serr)
		}
	}()

	ctx, span := telemetry.Tracer().Start(ctx, "depgraph."+string(command))
	defer span.End()

	switch command {
	case CommandOrder:
		err = a.order(ctx)
	case CommandTree:
		err = a.tree(ctx)
	case CommandCheck:
		err = a.check(ctx)
	default:
		err = fmt.Errorf("unknown command %q", command)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(command)+" failed")
		return err
	}

	a.logger.Debug("App.Run method finished.", "command", command)
	return nil
}

func (a *App) order(ctx context.Context) error {
	store, err := a.loadStore(ctx)
	if err != nil {
		return err
	}
	order, err := a.sort(ctx, store)
	if err != nil {
		return err
	}
	return render.Order(a.outW, a.format, order)
}

func (a *App) tree(ctx context.Context) error {
	store, err := a.loadStore(ctx)
	if err != nil {
		return err
	}

	ctx, span := telemetry.Tracer().Start(ctx, "unfold")
	tree := store.Tree(ctx)
	span.SetAttributes(attribute.Int("depgraph.tree_nodes", tree.Len()))
	span.End()

	opts := render.TreeOptions{MaxDepth: a.config.MaxDepth}
	if a.config.Pretty {
		return render.PrettyTree(a.outW, tree, opts)
	}
	return render.Tree(a.outW, a.format, tree, opts)
}

func (a *App) check(ctx context.Context) error {
	store, err := a.loadStore(ctx)
	if err != nil {
		return err
	}

	_, sortErr := a.sort(ctx, store)
	result := render.CheckResult{Items: len(store.Items(ctx)), OK: sortErr == nil}
	if sortErr != nil {
		result.Error = sortErr.Error()
		result.Cycle = store.Cycle(ctx)
	}
	if err := render.Check(a.outW, a.format, result); err != nil {
		return err
	}
	if sortErr != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTopology, sortErr)
	}
	return nil
}

// sort resolves the store into an order, dependencies first.
func (a *App) sort(ctx context.Context, store topologystore.Store[string]) ([]string, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "sort")
	defer span.End()

	order, err := store.Order(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "topology cannot be ordered")
		return nil, fmt.Errorf("cannot order %d items: %w", len(store.Items(ctx)), err)
	}
	span.SetAttributes(attribute.Int("depgraph.ordered", len(order)))
	ctxlog.FromContext(ctx).Debug("Topology ordered.", "count", len(order))
	return order, nil
}
