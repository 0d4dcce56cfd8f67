package resolver

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Digest returns the hex encoded xxhash of data as stored in compile records.
func Digest(data []byte) string {
	return strconv.FormatUint(xxhash.Sum64(data), 16)
}
