package resolver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"syscall"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/fergus/internal/core/domain"
	"go.trai.ch/zerr"
)

// Span attribute keys.
const (
	AttrTemplate  = attribute.Key("fergus.template")
	AttrFreshness = attribute.Key("fergus.freshness")
	AttrForced    = attribute.Key("fergus.forced")
)

// Freshness reports whether the artifact of tp can be served as is.
// It returns ErrSourceNotFound when the source does not exist.
func (r *Resolver) Freshness(_ context.Context, tp domain.TemplatePath) (domain.Freshness, error) {
	src, err := r.fs.Stat(tp.Source)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return domain.Missing, sourceNotFound(tp, err)
	case err != nil:
		return domain.Missing, errors.Join(domain.ErrSourceStatFailed, zerr.With(zerr.Wrap(err, "stat source"), "path", tp.Source))
	case src.IsDir():
		return domain.Missing, sourceNotFound(tp, fs.ErrNotExist)
	}

	art, err := r.fs.Stat(tp.Artifact)
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		return domain.Missing, nil
	case err != nil:
		return domain.Missing, errors.Join(domain.ErrArtifactStatFailed, zerr.With(zerr.Wrap(err, "stat artifact"), "path", tp.Artifact))
	}

	return domain.CheckFreshness(src.ModTime(), art.ModTime(), true), nil
}

// Resolve returns the path of the compiled artifact for request, compiling the
// source first when the artifact is missing or not strictly newer than it.
//
// A missing source yields ErrSourceNotFound without touching the cache. Cache
// directory failures yield ErrCacheNotWritable and compiler failures yield
// ErrCompileFailed.
func (r *Resolver) Resolve(ctx context.Context, request string) (string, error) {
	return r.resolve(ctx, request, false)
}

// Compile recompiles request regardless of the artifact freshness and returns
// the artifact path.
func (r *Resolver) Compile(ctx context.Context, request string) (string, error) {
	return r.resolve(ctx, request, true)
}

func (r *Resolver) resolve(ctx context.Context, request string, force bool) (string, error) {
	ctx, span := r.tracer.Start(ctx, "fergus.resolve", trace.WithAttributes(AttrForced.Bool(force)))
	defer span.End()

	tp, err := r.Derive(request)
	if err != nil {
		return "", fail(span, err)
	}
	span.SetAttributes(AttrTemplate.String(tp.Rel))

	state, err := r.Freshness(ctx, tp)
	if err != nil {
		return "", fail(span, err)
	}
	span.SetAttributes(AttrFreshness.String(state.String()))

	if state == domain.Fresh && !force {
		return tp.Artifact, nil
	}

	_, err, _ = r.group.Do(tp.Artifact, func() (any, error) {
		return nil, r.compile(ctx, tp)
	})
	if err != nil {
		return "", fail(span, err)
	}

	return tp.Artifact, nil
}

func (r *Resolver) compile(ctx context.Context, tp domain.TemplatePath) error {
	ctx, span := r.tracer.Start(ctx, "fergus.compile", trace.WithAttributes(AttrTemplate.String(tp.Rel)))
	defer span.End()

	dir := filepath.Dir(tp.Artifact)
	if err := r.fs.MkdirAll(dir); err != nil {
		return fail(span, notWritable(err, dir))
	}
	if err := r.fs.CheckWritable(r.cacheRoot); err != nil {
		return fail(span, notWritable(err, r.cacheRoot))
	}

	src, err := r.fs.ReadFile(tp.Source)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fail(span, sourceNotFound(tp, err))
		}
		return fail(span, errors.Join(domain.ErrSourceReadFailed, zerr.With(zerr.Wrap(err, "read source"), "path", tp.Source)))
	}

	out, err := r.compiler.Compile(ctx, src, tp.Source, r.theme.Options)
	if err != nil {
		return fail(span, errors.Join(domain.ErrCompileFailed, zerr.With(zerr.Wrap(err, "compile "+tp.Rel), "label", tp.Source)))
	}

	if err := r.fs.WriteFileAtomic(tp.Artifact, out); err != nil {
		return fail(span, notWritable(err, tp.Artifact))
	}

	r.record(tp, src, out)
	return nil
}

// record stores a compile record. Failures only produce a warning: the
// artifact is already in place.
func (r *Resolver) record(tp domain.TemplatePath, src, out []byte) {
	if r.store == nil {
		return
	}

	rec := domain.CompileRecord{
		Rel:          tp.Rel,
		Source:       tp.Source,
		Artifact:     tp.Artifact,
		SourceHash:   Digest(src),
		ArtifactHash: Digest(out),
		CompiledAt:   r.now().UTC(),
	}
	if err := r.store.Put(r.theme.RecordsRoot(), rec); err != nil {
		r.logger.Warn(fmt.Sprintf("could not record compile of %s: %v", tp.Rel, err))
	}
}

// Hook is the host template-resolution interceptor. It returns the path the
// host should render: the compiled artifact on success, or the request itself
// when no markup source exists or the cache cannot be written. Every other
// failure is returned to the caller.
func (r *Resolver) Hook(ctx context.Context, request string) (string, error) {
	path, err := r.Resolve(ctx, request)
	switch {
	case err == nil:
		return path, nil
	case errors.Is(err, domain.ErrSourceNotFound):
		return request, nil
	case errors.Is(err, domain.ErrCacheNotWritable):
		r.logger.Warn(fmt.Sprintf("template cache %s is not writable, serving %s uncompiled", r.cacheRoot, request))
		return request, nil
	default:
		return "", err
	}
}

func sourceNotFound(tp domain.TemplatePath, cause error) error {
	return errors.Join(domain.ErrSourceNotFound, zerr.With(zerr.Wrap(cause, "stat source"), "path", tp.Source))
}

func notWritable(cause error, path string) error {
	return errors.Join(domain.ErrCacheNotWritable, zerr.With(zerr.Wrap(cause, "prepare cache"), "path", path))
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
