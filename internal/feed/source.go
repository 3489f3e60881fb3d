package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/scavhall/scavrack/internal/domain"
)

// Source supplies raw listing records from the external catalog store. The
// records are read-only to the core; nothing beyond an id/name equivalent is
// assumed about their shape.
type Source interface {
	Fetch(ctx context.Context) ([]domain.RawRecord, error)
}

// FileSource reads listings from a local JSON file: static catalogs and dev
// environments.
type FileSource struct {
	path string
}

// NewFileSource creates a source backed by a JSON array file.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Fetch(_ context.Context) ([]domain.RawRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFeedFileFailed, err)
	}

	var records []domain.RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf(ErrMsgParseFeedFailed, err)
	}

	return records, nil
}
