package score

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Open returns the store for backend. path is the JSON file or the
// SQLite database, depending on the backend.
func Open(backend, path string, logger *log.Logger) (Store, error) {
	switch backend {
	case BackendJSON, "":
		return NewFileStore(path, logger), nil
	case BackendSQLite:
		return NewSQLiteStore(path, logger)
	default:
		return nil, fmt.Errorf("unknown score backend %q", backend)
	}
}
