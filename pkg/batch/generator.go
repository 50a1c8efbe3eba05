package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/certforge/pkg/archive"
	"github.com/dmitrymomot/certforge/pkg/asset"
	"github.com/dmitrymomot/certforge/pkg/layout"
	"github.com/dmitrymomot/certforge/pkg/logger"
	"github.com/dmitrymomot/certforge/pkg/recipient"
	"github.com/dmitrymomot/certforge/pkg/render"
)

// Generator renders certificate batches.
// It is safe for concurrent use if its loader is; every run owns its
// surface and archive builder.
type Generator struct {
	loader      asset.Loader
	logger      *slog.Logger
	now         func() time.Time
	newRunID    func() string
	policy      archive.CollisionPolicy
	compression archive.Compression
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		loader:   asset.NewRouter(),
		logger:   logger.NewNope(),
		now:      time.Now,
		newRunID: uuid.NewString,
		policy:   archive.Overwrite,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate renders one certificate per recipient, in order, and returns the
// zip archive holding all of them. onProgress may be nil.
//
// Recipients are not validated here; callers that need every placeholder
// resolved should run recipient.Validate first. Unresolved placeholders are
// drawn verbatim.
func (g *Generator) Generate(ctx context.Context, l *layout.Layout, recipients []recipient.Recipient, onProgress ProgressFunc) (*archive.Artifact, error) {
	runID := g.newRunID()
	ctx = logger.WithRunID(ctx, runID)
	started := g.now()

	t := newTracker(len(recipients), onProgress)
	t.start()

	g.logger.InfoContext(ctx, "batch started",
		slog.Int("total", len(recipients)),
		slog.String("collision_policy", g.policy.String()),
	)

	fail := func(err error) (*archive.Artifact, error) {
		t.fail(err)
		g.logger.ErrorContext(ctx, "batch failed",
			slog.Int("current", t.progress.Current),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	scene, err := g.prepare(ctx, l)
	if err != nil {
		return fail(err)
	}

	builder := archive.NewBuilder(
		archive.WithCollisionPolicy(g.policy),
		archive.WithCompression(g.compression),
		archive.WithClock(g.now),
	)
	surface := scene.NewSurface()

	for i, r := range recipients {
		if err := ctx.Err(); err != nil {
			return fail(fmt.Errorf("%w: before recipient %d: %w", ErrCanceled, i, err))
		}

		t.advance(i, r.Name)

		data, err := renderFrame(surface, scene, r)
		if err != nil {
			return fail(fmt.Errorf("%w: recipient %d (%s): %w", ErrRender, i, r.Name, err))
		}

		name := EntryName(r.Name)
		stored, collided, err := builder.Add(name, data)
		if err != nil {
			return fail(fmt.Errorf("%w: recipient %d (%s): %w", ErrRender, i, r.Name, err))
		}
		if collided {
			g.logger.WarnContext(ctx, "archive entry name collision",
				slog.Int("index", i),
				slog.String("entry", name),
				slog.String("stored_as", stored),
				slog.String("policy", g.policy.String()),
			)
		}

		g.logger.DebugContext(ctx, "certificate rendered",
			slog.Int("index", i),
			slog.String("entry", stored),
			slog.Int("bytes", len(data)),
		)
	}

	art, err := builder.Finalize()
	if err != nil {
		return fail(errors.Join(ErrArchive, err))
	}

	t.complete()

	g.logger.InfoContext(ctx, "batch complete",
		slog.String("archive", art.Name),
		slog.Int("entries", len(art.Entries)),
		slog.Int("bytes", art.Size()),
		slog.Duration("elapsed", g.now().Sub(started)),
	)

	return art, nil
}

// prepare validates the layout, loads every image it references once and
// builds the scene shared by all frames of a run.
func (g *Generator) prepare(ctx context.Context, l *layout.Layout) (*render.Scene, error) {
	if l == nil {
		return nil, fmt.Errorf("%w: nil layout", ErrInvalidLayout)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}

	images, err := asset.LoadAll(ctx, g.loader, l.Sources())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAssetLoad, err)
	}

	scene, err := render.Prepare(l, images[l.Template.Src], images)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	return scene, nil
}

// renderFrame draws one recipient and encodes the surface as PNG.
// A panic inside the drawing code is returned as an error.
func renderFrame(surface *render.Surface, scene *render.Scene, r recipient.Recipient) (data []byte, err error) {
	defer func() {
		if p := recover(); p != nil {
			data, err = nil, fmt.Errorf("panic while drawing: %v", p)
		}
	}()

	if err := render.Render(surface, scene, r); err != nil {
		return nil, err
	}
	return render.EncodeBytes(surface.Image())
}
