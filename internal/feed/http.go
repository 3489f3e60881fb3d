package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/scavhall/scavrack/internal/domain"
)

// HTTPSource fetches listings from the upstream catalog API. Responses are a
// JSON array of arbitrary objects.
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates a source for the given listing endpoint.
func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		url: url,
		client: &http.Client{
			Timeout: DefaultFetchTimeout,
		},
	}
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]domain.RawRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBuildRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFetchFeedFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(ErrFmtFeedBadStatus, resp.StatusCode)
	}

	var records []domain.RawRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf(ErrMsgParseFeedFailed, err)
	}

	return records, nil
}

// DefaultFetchTimeout bounds one upstream fetch; the snapshot cache absorbs
// upstream slowness between render ticks.
const DefaultFetchTimeout = 10 * time.Second
