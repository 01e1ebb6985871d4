package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pickline/consensus/pkg/models"
)

// HTTPSource reads a JSON array of raw picks from a scraper endpoint
type HTTPSource struct {
	name       string
	url        string
	httpClient *http.Client
}

// NewHTTPSource creates a feed source for one scraper endpoint
func NewHTTPSource(name, url string) *HTTPSource {
	return &HTTPSource{
		name: name,
		url:  url,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Name returns the feed-source identifier
func (s *HTTPSource) Name() string {
	return s.name
}

// Fetch retrieves the endpoint's current picks
func (s *HTTPSource) Fetch(ctx context.Context) ([]models.RawPick, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("feed %s error: status=%d, body=%s", s.name, resp.StatusCode, string(body))
	}

	var picks []models.RawPick
	if err := json.NewDecoder(resp.Body).Decode(&picks); err != nil {
		return nil, fmt.Errorf("decoding feed %s: %w", s.name, err)
	}

	return picks, nil
}
