package render

import (
	"errors"
	"os"

	"go.trai.ch/fergus/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// LoadData reads template data from a YAML or JSON file. An empty path
// yields empty data.
func LoadData(path string) (map[string]any, error) {
	data := map[string]any{}
	if path == "" {
		return data, nil
	}

	raw, err := os.ReadFile(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, errors.Join(domain.ErrDataReadFailed, zerr.With(zerr.Wrap(err, "read data file"), "path", path))
	}

	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, errors.Join(domain.ErrDataReadFailed, zerr.With(zerr.Wrap(err, "decode data file"), "path", path))
	}
	if data == nil {
		data = map[string]any{}
	}
	return data, nil
}
