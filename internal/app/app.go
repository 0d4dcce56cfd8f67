// Package app implements the application layer for fergus.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/fergus/internal/adapters/render"    //nolint:depguard // Wired in app layer
	"go.trai.ch/fergus/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/fergus/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/fergus/internal/core/domain"
	"go.trai.ch/fergus/internal/core/ports"
	"go.trai.ch/fergus/internal/engine/resolver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	provider     ports.CompilerProvider
	fs           ports.Filesystem
	store        ports.RecordStore
	renderer     ports.Renderer
	watcher      ports.Watcher
	logger       ports.Logger
	tracer       trace.Tracer
	workDir      string
	debounce     time.Duration
}

// Components bundles the App with the dependencies the CLI needs directly.
type Components struct {
	App    *App
	Logger ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	provider ports.CompilerProvider,
	fsys ports.Filesystem,
	store ports.RecordStore,
	renderer ports.Renderer,
	w ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		provider:     provider,
		fs:           fsys,
		store:        store,
		renderer:     renderer,
		watcher:      w,
		logger:       log,
		workDir:      ".",
		debounce:     watcher.DefaultDebounceWindow,
	}
}

// WithWorkDir sets the directory the theme configuration is searched from.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// WithDebounceWindow sets the quiet window used by Watch.
func (a *App) WithDebounceWindow(window time.Duration) *App {
	a.debounce = window
	return a
}

// EnableTracing logs every resolve and compile span with its duration.
func (a *App) EnableTracing() {
	a.tracer = telemetry.NewTracerProvider(a.logger).Tracer(resolver.TracerName)
}

// RenderOptions configuration for the Render method.
type RenderOptions struct {
	DataFile string
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	Force bool
	Jobs  int
}

// BuildResult summarizes a Build.
type BuildResult struct {
	Total    int
	Compiled int
}

// loadTheme loads the theme configuration from the work directory.
func (a *App) loadTheme() (domain.Theme, error) {
	theme, err := a.configLoader.Load(a.workDir)
	if err != nil {
		return domain.Theme{}, zerr.Wrap(err, "failed to load configuration")
	}
	return *theme, nil
}

// newResolver builds the resolver for the configured theme.
func (a *App) newResolver() (*resolver.Resolver, error) {
	theme, err := a.loadTheme()
	if err != nil {
		return nil, err
	}

	compiler, err := a.provider.CompilerFor(theme)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to configure compiler")
	}

	opts := []resolver.Option{
		resolver.WithRecordStore(a.store),
		resolver.WithLogger(a.logger),
	}
	if a.tracer != nil {
		opts = append(opts, resolver.WithTracer(a.tracer))
	}
	return resolver.New(theme, a.fs, compiler, opts...), nil
}

// Resolve returns the compiled artifact path for request, compiling it if needed.
func (a *App) Resolve(ctx context.Context, request string) (string, error) {
	r, err := a.newResolver()
	if err != nil {
		return "", err
	}
	return r.Resolve(ctx, request)
}

// Hook returns the path the host should load for request.
func (a *App) Hook(ctx context.Context, request string) (string, error) {
	r, err := a.newResolver()
	if err != nil {
		return "", err
	}
	return r.Hook(ctx, request)
}

// Render resolves request through the hook and executes the result with the host renderer.
func (a *App) Render(ctx context.Context, w io.Writer, request string, opts RenderOptions) error {
	r, err := a.newResolver()
	if err != nil {
		return err
	}

	data, err := render.LoadData(opts.DataFile)
	if err != nil {
		return err
	}

	path, err := r.Hook(ctx, request)
	if err != nil {
		return err
	}
	if path == request {
		if path, err = hostTemplate(ctx, r, request); err != nil {
			return err
		}
	}

	return a.renderer.Render(ctx, w, path, data)
}

// hostTemplate returns the host template for a request the hook handed back.
// A request naming the markup source itself is never rendered raw.
func hostTemplate(ctx context.Context, r *resolver.Resolver, request string) (string, error) {
	path := request
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.Theme().Root, path)
	}
	path = filepath.Clean(path)

	tp, err := r.Derive(request)
	if err != nil || tp.Source != path {
		return path, nil //nolint:nilerr // not a markup source, render as a host template
	}

	if _, err := r.Freshness(ctx, tp); err != nil {
		return "", err
	}
	return "", errors.Join(domain.ErrCacheNotWritable,
		zerr.With(zerr.New("markup source cannot be rendered without a compiled artifact"), "path", path))
}

// Build precompiles every source of the theme.
func (a *App) Build(ctx context.Context, opts BuildOptions) (BuildResult, error) {
	r, err := a.newResolver()
	if err != nil {
		return BuildResult{}, err
	}
	return a.build(ctx, r, opts)
}

func (a *App) build(ctx context.Context, r *resolver.Resolver, opts BuildOptions) (BuildResult, error) {
	sources, err := r.Sources(ctx)
	if err != nil {
		return BuildResult{}, errors.Join(domain.ErrBuildFailed, err)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	var compiled atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for _, rel := range sources {
		g.Go(func() error {
			didCompile, err := a.buildOne(gctx, r, rel, opts.Force)
			if didCompile {
				compiled.Add(1)
			}
			return err
		})
	}

	err = g.Wait()
	result := BuildResult{Total: len(sources), Compiled: int(compiled.Load())}
	if err != nil {
		return result, errors.Join(domain.ErrBuildFailed, err)
	}

	a.logger.Info(fmt.Sprintf("compiled %d of %d templates", result.Compiled, result.Total))
	return result, nil
}

func (a *App) buildOne(ctx context.Context, r *resolver.Resolver, rel string, force bool) (bool, error) {
	if force {
		_, err := r.Compile(ctx, rel)
		return err == nil, err
	}

	tp, err := r.Derive(rel)
	if err != nil {
		return false, err
	}
	freshness, err := r.Freshness(ctx, tp)
	if err != nil {
		return false, err
	}
	if freshness == domain.Fresh {
		return false, nil
	}

	_, err = r.Resolve(ctx, rel)
	return err == nil, err
}

// Status reports the cache state of every source of the theme.
func (a *App) Status(ctx context.Context) ([]domain.TemplateStatus, error) {
	r, err := a.newResolver()
	if err != nil {
		return nil, err
	}

	sources, err := r.Sources(ctx)
	if err != nil {
		return nil, err
	}

	recordsRoot := r.Theme().RecordsRoot()
	statuses := make([]domain.TemplateStatus, 0, len(sources))
	for _, rel := range sources {
		tp, err := r.Derive(rel)
		if err != nil {
			return nil, err
		}

		freshness, err := r.Freshness(ctx, tp)
		if err != nil {
			return nil, err
		}

		record, err := a.store.Get(recordsRoot, tp.Rel)
		if err != nil {
			a.logger.Warn(fmt.Sprintf("ignoring compile record for %s: %v", tp.Rel, err))
			record = nil
		}

		statuses = append(statuses, domain.TemplateStatus{
			Rel:       tp.Rel,
			Artifact:  tp.Artifact,
			Freshness: freshness,
			Record:    record,
		})
	}
	return statuses, nil
}

// Watch builds the theme and recompiles sources as they change, until ctx is cancelled.
func (a *App) Watch(ctx context.Context) error {
	r, err := a.newResolver()
	if err != nil {
		return err
	}
	theme := r.Theme()

	if _, err := a.build(ctx, r, BuildOptions{}); err != nil {
		a.logger.Error(err)
	}

	if err := a.watcher.Start(ctx, theme.Root); err != nil {
		return errors.Join(domain.ErrWatchFailed, err)
	}
	defer func() { _ = a.watcher.Stop() }()

	a.logger.Info(fmt.Sprintf("watching %s", theme.Root))

	debouncer := watcher.NewDebouncer(a.debounce, func(paths []string) {
		a.recompile(ctx, r, paths)
	})

	for event := range a.watcher.Events() {
		if event.Operation == ports.OpRemove || !isSource(theme, event.Path) {
			continue
		}
		debouncer.Add(event.Path)
	}
	debouncer.Flush()

	return nil
}

// recompile resolves every changed source. Failures are logged and do not stop watching.
func (a *App) recompile(ctx context.Context, r *resolver.Resolver, paths []string) {
	for _, path := range paths {
		if ctx.Err() != nil {
			return
		}
		artifact, err := r.Resolve(ctx, path)
		switch {
		case err == nil:
			a.logger.Info(fmt.Sprintf("compiled %s", artifact))
		case errors.Is(err, domain.ErrSourceNotFound):
			// renamed or removed before the batch ran
		default:
			a.logger.Error(err)
		}
	}
}

// isSource reports whether path is a markup source outside the tool directories.
func isSource(theme domain.Theme, path string) bool {
	if !strings.HasSuffix(path, theme.SourceExt) {
		return false
	}
	for _, dir := range []string{theme.CacheRoot, theme.RecordsRoot()} {
		if rel, err := filepath.Rel(dir, path); err == nil && !strings.HasPrefix(rel, "..") {
			return false
		}
	}
	return true
}

// Clean removes the compiled artifacts and compile records of the theme.
func (a *App) Clean(_ context.Context) error {
	theme, err := a.loadTheme()
	if err != nil {
		return err
	}

	var errs error
	remove := func(path string, name string) {
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := a.fs.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to remove "+name), "path", path))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	remove(theme.CacheRoot, "template cache")
	remove(theme.RecordsRoot(), "compile records")

	if errs != nil {
		return errors.Join(domain.ErrCleanFailed, errs)
	}
	return nil
}
