// Package resolver implements the compiled-template cache: it maps template
// requests to markup sources, compiles them with the theme compiler when the
// cached artifact is missing or stale, and returns the artifact path.
package resolver

import (
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/fergus/internal/core/domain"
	"go.trai.ch/fergus/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

// TracerName is the instrumentation name of the resolver spans.
const TracerName = "go.trai.ch/fergus/resolver"

// Resolver resolves template requests of one theme to compiled artifacts.
// It is safe for concurrent use.
type Resolver struct {
	theme     domain.Theme
	root      string
	cacheRoot string

	fs       ports.Filesystem
	compiler ports.Compiler
	store    ports.RecordStore
	logger   ports.Logger
	tracer   trace.Tracer
	now      func() time.Time

	group singleflight.Group
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithRecordStore persists a compile record after every successful compile.
func WithRecordStore(store ports.RecordStore) Option {
	return func(r *Resolver) {
		r.store = store
	}
}

// WithLogger sets the logger used for operator diagnostics.
func WithLogger(logger ports.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// WithTracer sets the tracer used for resolve and compile spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(r *Resolver) {
		r.tracer = tracer
	}
}

// WithClock sets the clock used to stamp compile records.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) {
		r.now = now
	}
}

// New creates a Resolver for theme. The theme root and cache root are cleaned
// once here; relative roots are used as given.
func New(theme domain.Theme, fs ports.Filesystem, compiler ports.Compiler, opts ...Option) *Resolver {
	r := &Resolver{
		theme:     theme,
		root:      filepath.Clean(theme.Root),
		cacheRoot: filepath.Clean(theme.CacheRoot),
		fs:        fs,
		compiler:  compiler,
		logger:    nopLogger{},
		tracer:    otel.Tracer(TracerName),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Theme returns the theme the resolver serves.
func (r *Resolver) Theme() domain.Theme {
	return r.theme
}

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}
