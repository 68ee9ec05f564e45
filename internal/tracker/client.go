package tracker

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Bug is the subset of Bugzilla bug data needed for task sync.
type Bug struct {
	ID            int     `json:"id"`
	Summary       string  `json:"summary"`
	AssignedTo    string  `json:"assigned_to"`
	EstimatedTime float64 `json:"estimated_time"`
	ActualTime    float64 `json:"actual_time"`
	IsOpen        bool    `json:"is_open"`
}

// Client is the interface for interacting with the issue tracker.
type Client interface {
	SearchBugs(args map[string]string) ([]Bug, error)
}

// Config holds the connection settings for the tracker.
type Config struct {
	BaseURL string
	APIKey  string

	// SearchArgs is a comma-separated list of key=value search criteria,
	// e.g. "product=ebs,status=CONFIRMED".
	SearchArgs string

	RequestTimeout time.Duration
}

// ParseSearchArgs splits the configured search criteria into a map.
func (c Config) ParseSearchArgs() map[string]string {
	args := make(map[string]string)
	for _, pair := range strings.Split(c.SearchArgs, ",") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		args[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return args
}

type restClient struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a Bugzilla REST client from the provided configuration.
func NewClient(cfg Config) Client {
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	return &restClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

// SearchBugs queries /rest/bug with the given search criteria.
func (c *restClient) SearchBugs(args map[string]string) ([]Bug, error) {
	if c.cfg.BaseURL == "" {
		return nil, fmt.Errorf("tracker is not configured: BUGZILLA_URL is empty")
	}

	query := url.Values{}
	for k, v := range args {
		query.Set(k, v)
	}
	if c.cfg.APIKey != "" {
		query.Set("api_key", c.cfg.APIKey)
	}
	query.Set("include_fields", "id,summary,assigned_to,estimated_time,actual_time,is_open")

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/rest/bug?" + query.Encode()

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build tracker request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log.Debug().Str("url", c.cfg.BaseURL).Msg("Searching tracker bugs")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tracker request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tracker returned status %d", resp.StatusCode)
	}

	var body struct {
		Bugs []Bug `json:"bugs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode tracker response: %w", err)
	}

	log.Info().Int("count", len(body.Bugs)).Msg("Fetched bugs from tracker")
	return body.Bugs, nil
}
