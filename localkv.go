package daybook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DirStore is a file-backed KeyValue: each key is one file in a folder. The
// format stays human-readable and git-friendly, the ledger blob being plain
// JSONL.
type DirStore struct {
	dir string
}

// NewDirStore creates a DirStore rooted at dir, creating the folder if
// needed.
func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create local store folder %q: %w", dir, err)
	}
	return &DirStore{dir: dir}, nil
}

func (s *DirStore) path(key string) string {
	// Keys are simple words ("transactions"); anything else is flattened to
	// keep the file inside the folder.
	key = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ':' {
			return '_'
		}
		return r
	}, key)
	return filepath.Join(s.dir, key+".jsonl")
}

// Get returns the blob stored under key, with ok false when the key was
// never written.
func (s *DirStore) Get(key string) (value string, ok bool, err error) {
	content, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cannot read local store key %q: %w", key, err)
	}
	return string(content), true, nil
}

// Set stores the blob under key, replacing any previous value.
func (s *DirStore) Set(key, value string) error {
	if err := os.WriteFile(s.path(key), []byte(value), 0644); err != nil {
		return fmt.Errorf("cannot write local store key %q: %w", key, err)
	}
	return nil
}

var _ KeyValue = (*DirStore)(nil)
