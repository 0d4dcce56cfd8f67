// Package compiler runs the external markup compiler of a theme.
package compiler

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/fergus/internal/core/domain"
	"go.trai.ch/zerr"
)

// Environment variables carrying the compile options to the compiler process.
const (
	EnvFormat        = "FERGUS_FORMAT"
	EnvEnableEscaper = "FERGUS_ENABLE_ESCAPER"
	EnvEscapeHTML    = "FERGUS_ESCAPE_HTML"
	EnvEscapeAttrs   = "FERGUS_ESCAPE_ATTRS"
	EnvAutoclose     = "FERGUS_AUTOCLOSE"
	EnvCharset       = "FERGUS_CHARSET"
	EnvSourceLabel   = "FERGUS_SOURCE_LABEL"
)

// allowListedEnvVars are the system environment variables inherited by the
// compiler process.
var allowListedEnvVars = map[string]struct{}{
	"HOME":   {},
	"LANG":   {},
	"PATH":   {},
	"TERM":   {},
	"TMPDIR": {},
	"USER":   {},
}

// ExecCompiler implements ports.Compiler by running a command. The markup
// source is written to its stdin and the compiled template is read from its
// stdout.
type ExecCompiler struct {
	spec domain.CompilerSpec
}

// NewExecCompiler creates a compiler running spec. The command must not be empty.
func NewExecCompiler(spec domain.CompilerSpec) (*ExecCompiler, error) {
	if len(spec.Cmd) == 0 || strings.TrimSpace(spec.Cmd[0]) == "" {
		return nil, domain.ErrCompilerNotConfigured
	}
	return &ExecCompiler{spec: spec}, nil
}

// Compile runs the compiler on source. label names the source in diagnostics.
func (c *ExecCompiler) Compile(ctx context.Context, source []byte, label string, opts domain.CompileOptions) ([]byte, error) {
	//nolint:gosec // the command comes from the theme configuration
	cmd := exec.CommandContext(ctx, c.spec.Cmd[0], c.spec.Cmd[1:]...)
	cmd.Dir = c.spec.Dir
	cmd.Env = resolveEnvironment(os.Environ(), optionEnv(opts, label), c.spec.Env)
	cmd.Stdin = bytes.NewReader(source)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		wrapped := zerr.With(zerr.Wrap(err, msg), "exit_code", exitCode)
		return nil, zerr.With(wrapped, "compiler", c.spec.Cmd[0])
	}

	return stdout.Bytes(), nil
}

// optionEnv encodes opts and the source label as environment entries.
func optionEnv(opts domain.CompileOptions, label string) map[string]string {
	return map[string]string{
		EnvFormat:        opts.Format(),
		EnvEnableEscaper: strconv.FormatBool(opts.EnableEscaper()),
		EnvEscapeHTML:    strconv.FormatBool(opts.EscapeHTML()),
		EnvEscapeAttrs:   strconv.FormatBool(opts.EscapeAttrs()),
		EnvAutoclose:     strings.Join(opts.Autoclose(), ","),
		EnvCharset:       opts.Charset(),
		EnvSourceLabel:   label,
	}
}

// resolveEnvironment merges the allow-listed system environment, the option
// entries and the theme overrides, in that order of priority. The result is
// sorted.
func resolveEnvironment(sysEnv []string, optEnv, themeEnv map[string]string) []string {
	envMap := make(map[string]string, len(allowListedEnvVars)+len(optEnv)+len(themeEnv))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, allowed := allowListedEnvVars[k]; allowed {
			envMap[k] = v
		}
	}
	for k, v := range optEnv {
		envMap[k] = v
	}
	for k, v := range themeEnv {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}
