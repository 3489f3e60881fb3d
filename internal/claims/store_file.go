package claims

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// fileEnvelope is the versioned on-disk format for the claim set. A plain
// string array (the pre-envelope format) still unmarshals via the legacy
// fallback in Load.
type fileEnvelope struct {
	Version    int      `json:"version"`
	ClaimedIDs []string `json:"claimed_ids"`
}

// FileStore persists the claim set as a single namespaced JSON file. Writes
// are atomic (temp file + rename) so a crash mid-write leaves the previous
// set intact.
type FileStore struct {
	path string

	mu  sync.Mutex
	ids []string
	set map[string]struct{}
}

// NewFileStore creates a file-backed store at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
		set:  make(map[string]struct{}),
	}
}

func (s *FileStore) Load(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// No file yet: a valid empty set
			return nil, nil
		}
		return nil, fmt.Errorf(ErrMsgReadClaimsFailed, err)
	}

	var envelope fileEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		// Legacy format: a bare array of ids
		var legacy []string
		if legacyErr := json.Unmarshal(data, &legacy); legacyErr != nil {
			return nil, fmt.Errorf(ErrMsgParseClaimsFailed, err)
		}
		envelope.ClaimedIDs = legacy
	}

	// Rebuild state from the file so repeated loads are idempotent
	s.ids = s.ids[:0]
	s.set = make(map[string]struct{}, len(envelope.ClaimedIDs))
	for _, id := range envelope.ClaimedIDs {
		if _, ok := s.set[id]; ok {
			continue
		}
		s.set[id] = struct{}{}
		s.ids = append(s.ids, id)
	}

	ids := make([]string, len(s.ids))
	copy(ids, s.ids)
	return ids, nil
}

func (s *FileStore) Add(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.set[id]; ok {
		return nil
	}
	s.set[id] = struct{}{}
	s.ids = append(s.ids, id)

	return s.write()
}

// write rewrites the whole file under the lock.
func (s *FileStore) write() error {
	envelope := fileEnvelope{
		Version:    FileStoreVersion,
		ClaimedIDs: s.ids,
	}

	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return fmt.Errorf(ErrMsgWriteClaimsFailed, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf(ErrMsgWriteClaimsFailed, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf(ErrMsgWriteClaimsFailed, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf(ErrMsgWriteClaimsFailed, err)
	}

	return nil
}
