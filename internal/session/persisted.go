package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Persister is the durable-session collaborator consumed by the host UI:
// one integer survives process restarts so the user is not forced to log in
// again. Implementations must treat "nothing persisted" as (0, nil), not as
// an error.
type Persister interface {
	Load() (int64, error)
	Save(userID int64) error
	Clear() error
}

// persistedSession is the on-disk shape of the saved session.
type persistedSession struct {
	ActiveUserID int64 `json:"active_user_id"`
}

// FileStore persists the session id as a small JSON file with 0600
// permissions.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a FileStore writing to path. The parent directory is
// created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the persisted session id. A missing file means no persisted
// session and yields (0, nil).
func (f *FileStore) Load() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read session file: %w", err)
	}

	var st persistedSession
	if err = json.Unmarshal(data, &st); err != nil {
		return 0, fmt.Errorf("decode session file: %w", err)
	}
	if st.ActiveUserID < 0 {
		return 0, nil
	}

	return st.ActiveUserID, nil
}

// Save writes userID to the session file, replacing any previous value.
func (f *FileStore) Save(userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	dir := filepath.Dir(f.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	payload, err := json.Marshal(persistedSession{ActiveUserID: userID})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err = os.WriteFile(f.path, payload, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}

// Clear removes the persisted session. Clearing an absent file is not an
// error.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
