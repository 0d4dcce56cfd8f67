// Package cas stores compile records, one JSON file per template.
package cas

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"go.trai.ch/fergus/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.RecordStore using a file-per-template strategy.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the compile record of the template rel stored under root.
// It returns nil without error when no record exists.
func (s *Store) Get(root, rel string) (*domain.CompileRecord, error) {
	filename := s.getFilename(root, rel)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Join(domain.ErrRecordReadFailed, zerr.With(zerr.Wrap(err, "read record"), "template", rel))
	}

	var record domain.CompileRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.Join(domain.ErrRecordUnmarshalFailed, zerr.With(zerr.Wrap(err, "decode record"), "template", rel))
	}

	return &record, nil
}

// Put stores record under root, replacing any previous record of the template.
func (s *Store) Put(root string, record domain.CompileRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return errors.Join(domain.ErrRecordMarshalFailed, zerr.Wrap(err, "encode record"))
	}

	filename := s.getFilename(root, record.Rel)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return errors.Join(domain.ErrRecordWriteFailed, zerr.With(zerr.Wrap(err, "create record directory"), "path", root))
	}

	if err := atomic.WriteFile(filename, bytes.NewReader(data)); err != nil {
		return errors.Join(domain.ErrRecordWriteFailed, zerr.With(zerr.Wrap(err, "write record"), "template", record.Rel))
	}

	return nil
}

func (s *Store) getFilename(root, rel string) string {
	hash := sha256.Sum256([]byte(rel))
	return filepath.Join(root, hex.EncodeToString(hash[:])+".json")
}
