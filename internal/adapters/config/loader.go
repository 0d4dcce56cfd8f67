// Package config provides the fergus.yaml loader.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/fergus/internal/core/domain"
	"go.trai.ch/fergus/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only fergus.yaml schema version.
const SupportedVersion = "1"

var knownFormats = []string{domain.FormatHTML5, domain.FormatXHTML, domain.FormatHTML4}

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader reading from the operating system.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: OSFS{}}
}

// NewLoaderWithFS creates a new Loader reading from fsys.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// Load finds the nearest fergus.yaml at or above cwd and returns the theme it
// describes. Relative paths in the file are resolved against its directory.
func (l *Loader) Load(cwd string) (*domain.Theme, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, errors.Join(domain.ErrConfigNotFound, zerr.With(zerr.Wrap(err, "resolve working directory"), "cwd", cwd))
	}

	configPath, err := l.findConfiguration(absCwd)
	if err != nil {
		return nil, err
	}

	var file Fergusfile
	if err := l.readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, err
	}

	return l.buildTheme(configPath, &file)
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir := filepath.Clean(cwd)

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := l.FS.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", errors.Join(domain.ErrConfigNotFound, zerr.With(zerr.New("search "+domain.ConfigFileName), "cwd", cwd))
}

func (l *Loader) buildTheme(configPath string, file *Fergusfile) (*domain.Theme, error) {
	if file.Version != "" && file.Version != SupportedVersion {
		return nil, errors.Join(domain.ErrUnsupportedVersion, zerr.With(zerr.New("check version"), "version", file.Version))
	}

	configDir := filepath.Dir(configPath)

	sourceExt, err := resolveExt(file.SourceExt, domain.DefaultSourceExt, "source_ext")
	if err != nil {
		return nil, err
	}
	artifactExt, err := resolveExt(file.ArtifactExt, domain.DefaultArtifactExt, "artifact_ext")
	if err != nil {
		return nil, err
	}
	if sourceExt == artifactExt {
		return nil, errors.Join(domain.ErrSameExtension, zerr.With(zerr.New("check extensions"), "extension", sourceExt))
	}

	name := strings.TrimSpace(file.Name)
	if name == "" {
		name = filepath.Base(configDir)
	}

	options := domain.DefaultCompileOptions().Merge(domain.OptionOverrides{
		Format:        file.Options.Format,
		EnableEscaper: file.Options.EnableEscaper,
		EscapeHTML:    file.Options.EscapeHTML,
		EscapeAttrs:   file.Options.EscapeAttrs,
		Autoclose:     file.Options.Autoclose,
		Charset:       file.Options.Charset,
	})
	if !slices.Contains(knownFormats, options.Format()) {
		l.Logger.Warn(fmt.Sprintf("unknown format %q in %s is passed to the compiler as is", options.Format(), configPath))
	}

	return &domain.Theme{
		Name:        name,
		Root:        resolvePath(configDir, file.Root, "."),
		CacheRoot:   resolvePath(configDir, file.Cache, domain.DefaultCachePath()),
		SourceExt:   sourceExt,
		ArtifactExt: artifactExt,
		Options:     options,
		Compiler: domain.CompilerSpec{
			Cmd: slices.Clone(file.Compiler.Cmd),
			Env: file.Compiler.Env,
			Dir: resolvePath(configDir, file.Compiler.Dir, "."),
		},
		Minify: file.Minify,
	}, nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func (l *Loader) readAndUnmarshalYAML(configPath string, target *Fergusfile) error {
	data, err := l.FS.ReadFile(configPath)
	if err != nil {
		return errors.Join(domain.ErrConfigReadFailed, zerr.With(zerr.Wrap(err, "read config"), "path", configPath))
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return errors.Join(domain.ErrConfigParseFailed, zerr.With(zerr.Wrap(parseErr, "parse config"), "path", configPath))
	}
	return nil
}

func resolvePath(configDir, configured, fallback string) string {
	if configured == "" {
		configured = fallback
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(configDir, configured))
}

func resolveExt(configured, fallback, field string) (string, error) {
	ext := strings.TrimSpace(configured)
	if ext == "" {
		return fallback, nil
	}
	if len(ext) < 2 || ext[0] != '.' || strings.ContainsAny(ext[1:], `./\`) {
		return "", errors.Join(domain.ErrInvalidExtension, zerr.With(zerr.New("check "+field), "extension", configured))
	}
	return ext, nil
}
