package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fergus/cmd/fergus/commands"
	"go.trai.ch/fergus/internal/app"
	"go.trai.ch/fergus/internal/build"
	"go.trai.ch/fergus/internal/core/domain"
)

type mockApp struct {
	resolveFunc func(ctx context.Context, request string) (string, error)
	hookFunc    func(ctx context.Context, request string) (string, error)
	renderFunc  func(ctx context.Context, w io.Writer, request string, opts app.RenderOptions) error
	buildFunc   func(ctx context.Context, opts app.BuildOptions) (app.BuildResult, error)
	statusFunc  func(ctx context.Context) ([]domain.TemplateStatus, error)
	watchFunc   func(ctx context.Context) error
	cleanFunc   func(ctx context.Context) error
	tracing     bool
}

func (m *mockApp) Resolve(ctx context.Context, request string) (string, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, request)
	}
	return "", nil
}

func (m *mockApp) Hook(ctx context.Context, request string) (string, error) {
	if m.hookFunc != nil {
		return m.hookFunc(ctx, request)
	}
	return request, nil
}

func (m *mockApp) Render(ctx context.Context, w io.Writer, request string, opts app.RenderOptions) error {
	if m.renderFunc != nil {
		return m.renderFunc(ctx, w, request, opts)
	}
	return nil
}

func (m *mockApp) Build(ctx context.Context, opts app.BuildOptions) (app.BuildResult, error) {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, opts)
	}
	return app.BuildResult{}, nil
}

func (m *mockApp) Status(ctx context.Context) ([]domain.TemplateStatus, error) {
	if m.statusFunc != nil {
		return m.statusFunc(ctx)
	}
	return nil, nil
}

func (m *mockApp) Watch(ctx context.Context) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx)
	}
	return nil
}

func (m *mockApp) EnableTracing() { m.tracing = true }

type jsonLogger struct {
	enabled bool
}

func (l *jsonLogger) SetJSON(enable bool) { l.enabled = enable }

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Resolve(t *testing.T) {
	t.Run("prints artifact path", func(t *testing.T) {
		var captured string
		mock := &mockApp{
			resolveFunc: func(_ context.Context, request string) (string, error) {
				captured = request
				return "/theme/.fergus/cache/index.gohtml", nil
			},
		}

		out, err := execute(t, mock, "resolve", "index.haml")
		require.NoError(t, err)
		assert.Equal(t, "index.haml", captured)
		assert.Equal(t, "/theme/.fergus/cache/index.gohtml\n", out)
	})

	t.Run("returns error on resolve failure", func(t *testing.T) {
		mock := &mockApp{
			resolveFunc: func(context.Context, string) (string, error) {
				return "", domain.ErrCompileFailed
			},
		}

		_, err := execute(t, mock, "resolve", "index.haml")
		require.ErrorIs(t, err, domain.ErrCompileFailed)
	})

	t.Run("requires exactly one template", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "resolve")
		require.Error(t, err)
	})
}

func TestCommands_Hook(t *testing.T) {
	out, err := execute(t, &mockApp{}, "hook", "single.gohtml")
	require.NoError(t, err)
	assert.Equal(t, "single.gohtml\n", out)
}

func TestCommands_Render(t *testing.T) {
	var capturedOpts app.RenderOptions
	mock := &mockApp{
		renderFunc: func(_ context.Context, w io.Writer, request string, opts app.RenderOptions) error {
			capturedOpts = opts
			_, err := io.WriteString(w, "<p>"+request+"</p>")
			return err
		},
	}

	out, err := execute(t, mock, "render", "index.haml", "--data", "data.yaml")
	require.NoError(t, err)
	assert.Equal(t, "data.yaml", capturedOpts.DataFile)
	assert.Equal(t, "<p>index.haml</p>", out)
}

func TestCommands_Build(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.BuildOptions
		mock := &mockApp{
			buildFunc: func(_ context.Context, opts app.BuildOptions) (app.BuildResult, error) {
				capturedOpts = opts
				return app.BuildResult{}, nil
			},
		}

		_, err := execute(t, mock, "build", "--force", "--jobs", "4")
		require.NoError(t, err)
		assert.Equal(t, app.BuildOptions{Force: true, Jobs: 4}, capturedOpts)
	})

	t.Run("returns error on build failure", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(context.Context, app.BuildOptions) (app.BuildResult, error) {
				return app.BuildResult{}, errors.New("simulated error")
			},
		}

		_, err := execute(t, mock, "build")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Status(t *testing.T) {
	compiledAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mock := &mockApp{
		statusFunc: func(context.Context) ([]domain.TemplateStatus, error) {
			return []domain.TemplateStatus{
				{
					Rel:       "index.haml",
					Freshness: domain.Fresh,
					Record:    &domain.CompileRecord{CompiledAt: compiledAt, ArtifactHash: "9f86d081884c7d65"},
				},
				{Rel: "partials/nav.haml", Freshness: domain.Stale},
				{Rel: "single.haml", Freshness: domain.Missing},
			}, nil
		},
	}

	out, err := execute(t, mock, "status", "--output", "plain")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "status_plain", []byte(out))
}

func TestCommands_Status_Empty(t *testing.T) {
	out, err := execute(t, &mockApp{}, "status", "--output", "plain")
	require.NoError(t, err)
	assert.Equal(t, "no templates found\n", out)
}

func TestCommands_WatchAndClean(t *testing.T) {
	var watched, cleaned bool
	mock := &mockApp{
		watchFunc: func(context.Context) error { watched = true; return nil },
		cleanFunc: func(context.Context) error { cleaned = true; return nil },
	}

	_, err := execute(t, mock, "watch")
	require.NoError(t, err)
	_, err = execute(t, mock, "clean")
	require.NoError(t, err)

	assert.True(t, watched)
	assert.True(t, cleaned)
}

func TestCommands_JSONFlag(t *testing.T) {
	logger := &jsonLogger{}
	cli := commands.New(&mockApp{}, commands.WithLogger(logger))
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"build", "--json"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, logger.enabled)
}

func TestCommands_TraceFlag(t *testing.T) {
	mock := &mockApp{}
	_, err := execute(t, mock, "resolve", "index.haml", "--trace")
	require.NoError(t, err)
	assert.True(t, mock.tracing)

	mock = &mockApp{}
	_, err = execute(t, mock, "resolve", "index.haml")
	require.NoError(t, err)
	assert.False(t, mock.tracing)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
	assert.Contains(t, out, "fergus version")
}
