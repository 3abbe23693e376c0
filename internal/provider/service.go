package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"trainctl/pkg/logging"
)

const serviceSubsystem = "ProviderService"

const (
	DefaultEndpoint = "https://api.sncf.com/v1/coverage/sncf/journeys"
	DefaultCount    = 15
	DefaultTimeout  = 15 * time.Second
)

// ServiceConfig configures the HTTP provider.
type ServiceConfig struct {
	Endpoint string
	Token    string
	Count    int
	Timeout  time.Duration
}

// Service fetches journeys from the navitia journeys endpoint.
type Service struct {
	endpoint string
	token    string
	count    int
	client   *http.Client
}

// NewService creates a Service, filling zero fields with defaults.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Count <= 0 {
		cfg.Count = DefaultCount
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Service{
		endpoint: cfg.Endpoint,
		token:    cfg.Token,
		count:    cfg.Count,
		client:   &http.Client{Timeout: cfg.Timeout},
	}
}

// HasToken reports whether an API token is configured.
func (s *Service) HasToken() bool {
	return s.token != ""
}

// FetchJourneys implements Provider.
func (s *Service) FetchJourneys(ctx context.Context, q Query) (string, error) {
	logging.Info(serviceSubsystem, "Request journeys from %s to %s", q.From, q.To)

	requestURL, err := s.buildURL(q)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating journeys request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching journeys: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading journeys response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	logging.Debug(serviceSubsystem, "Received %d bytes for %s -> %s", len(body), q.From, q.To)
	return string(body), nil
}

func (s *Service) buildURL(q Query) (string, error) {
	base, err := url.Parse(s.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid journeys endpoint %q: %w", s.endpoint, err)
	}

	params := base.Query()
	params.Set("count", strconv.Itoa(s.count))
	params.Set("from", q.From)
	params.Set("to", q.To)
	if q.At != nil {
		params.Set("datetime", FormatQueryTime(*q.At))
	}
	base.RawQuery = params.Encode()

	return base.String(), nil
}
