package ports

import "go.trai.ch/fergus/internal/core/domain"

// RecordStore defines the interface for storing and retrieving compile records.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RecordStore interface {
	// Get retrieves the record for a source path relative to the template root.
	// Returns nil, nil if not found.
	Get(root, rel string) (*domain.CompileRecord, error)

	// Put stores the record.
	Put(root string, record domain.CompileRecord) error
}
