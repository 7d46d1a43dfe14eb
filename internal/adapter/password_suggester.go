package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/smdv/password-vault/internal/logger"
)

// ErrSuggestionUnavailable means the generator service refused or failed the
// request. The caller should fall back to manual password entry.
var ErrSuggestionUnavailable = errors.New("password suggestion unavailable")

const (
	defaultSuggestBaseURL = "https://randommer.io"
	suggestEndpoint       = "/api/Text/Password"

	defaultSuggestTimeout = 10 * time.Second
	defaultSuggestLength  = 12
)

// SuggesterConfig configures the outbound generator client. Zero values fall
// back to the randommer.io defaults.
type SuggesterConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Length  int
}

type passwordSuggester struct {
	client *resty.Client
	length int
	logger *logger.Logger
}

// NewPasswordSuggester constructs a [Suggester] backed by the randommer.io
// text API. Returns an error if cfg.BaseURL cannot be parsed as a URL.
func NewPasswordSuggester(cfg SuggesterConfig, logger *logger.Logger) (Suggester, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultSuggestBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultSuggestTimeout
	}
	if cfg.Length <= 0 {
		cfg.Length = defaultSuggestLength
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid suggester base url: %w", err)
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("X-Api-Key", cfg.APIKey)

	return &passwordSuggester{client: cli, length: cfg.Length, logger: logger}, nil
}

// Suggest implements [Suggester]. The generator responds with a bare JSON
// string; anything else maps to [ErrSuggestionUnavailable].
func (p *passwordSuggester) Suggest(ctx context.Context) (string, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("length", strconv.Itoa(p.length)).
		SetQueryParam("hasDigits", "true").
		SetQueryParam("hasUppercase", "true").
		SetQueryParam("hasSpecial", "true").
		Get(suggestEndpoint)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSuggestionUnavailable, err)
	}
	if err = mapSuggestError(resp); err != nil {
		return "", err
	}

	password := strings.Trim(strings.TrimSpace(string(resp.Body())), `"`)
	if password == "" {
		return "", fmt.Errorf("%w: empty response", ErrSuggestionUnavailable)
	}

	return password, nil
}

// SuggestAsync implements [Suggester].
func (p *passwordSuggester) SuggestAsync(ctx context.Context) <-chan SuggestResult {
	out := make(chan SuggestResult, 1)
	go func() {
		defer close(out)
		password, err := p.Suggest(ctx)
		if err != nil {
			p.logger.Err(err).Str("func", "*passwordSuggester.SuggestAsync").Msg("suggestion request failed")
		}
		out <- SuggestResult{Password: password, Err: err}
	}()
	return out
}

func mapSuggestError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", ErrSuggestionUnavailable, resp.StatusCode(), body)
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
