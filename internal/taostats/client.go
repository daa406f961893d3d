// Package taostats fetches daily network staking history from the TAO Stats
// API and converts it into model records.
package taostats

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"taostats/internal/model"
)

const (
	// DefaultBaseURL is the stats history endpoint.
	DefaultBaseURL = "https://api.taostats.io/api/stats/history/v1"

	// DefaultPageLimit is the page size requested from the API.
	DefaultPageLimit = 50

	defaultTimeout   = 30 * time.Second
	defaultRetries   = 3
	defaultRetryWait = 2 * time.Second

	// The API rate-limits aggressively; cap backoff well above the base wait.
	defaultRetryMaxWait = 20 * time.Second
)

// Options configures a Client. Zero values fall back to defaults, except
// APIKey which is required.
type Options struct {
	BaseURL      string
	APIKey       string
	Frequency    string
	PageLimit    int
	Timeout      time.Duration
	MaxRetries   int
	RetryWait    time.Duration
	RetryMaxWait time.Duration
}

// Client fetches staking history pages and concatenates them in response
// order. Callers own sorting; the client does not resort.
type Client struct {
	http      *resty.Client
	baseURL   string
	frequency string
	pageLimit int
}

// NewClient builds a Client. The API key must be non-empty.
func NewClient(opts Options) (*Client, error) {
	if opts.APIKey == "" {
		return nil, &model.ConfigError{Field: "api key", Reason: "must not be empty"}
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Frequency == "" {
		opts.Frequency = "by_day"
	}
	if opts.PageLimit <= 0 {
		opts.PageLimit = DefaultPageLimit
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = defaultRetries
	}
	if opts.RetryWait <= 0 {
		opts.RetryWait = defaultRetryWait
	}
	if opts.RetryMaxWait <= 0 {
		opts.RetryMaxWait = defaultRetryMaxWait
	}

	http := resty.New().
		SetTimeout(opts.Timeout).
		SetHeader("Authorization", opts.APIKey).
		SetHeader("Accept", "application/json").
		SetRetryCount(opts.MaxRetries-1).
		SetRetryWaitTime(opts.RetryWait).
		SetRetryMaxWaitTime(opts.RetryMaxWait).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r.StatusCode() == 429 || r.StatusCode() >= 500
		})

	return &Client{
		http:      http,
		baseURL:   opts.BaseURL,
		frequency: opts.Frequency,
		pageLimit: opts.PageLimit,
	}, nil
}

// FetchAll fetches the full daily history, page by page, until the API
// reports the last page or a short page arrives.
func (c *Client) FetchAll(ctx context.Context) ([]model.StakingRecord, error) {
	var all []model.StakingRecord

	for page := 1; ; page++ {
		resp, err := c.fetchPage(ctx, page)
		if err != nil {
			return nil, err
		}
		if len(resp.Data) == 0 {
			break
		}

		for _, raw := range resp.Data {
			rec, err := raw.ToRecord()
			if err != nil {
				return nil, &model.FetchError{Page: page, Err: err}
			}
			all = append(all, rec)
		}

		slog.Debug("fetched page",
			"page", page,
			"of", resp.Pagination.TotalPages,
			"records", len(resp.Data),
			"total", len(all))

		if resp.Pagination.TotalPages > 0 && page >= resp.Pagination.TotalPages {
			break
		}
		if len(resp.Data) < c.pageLimit {
			break
		}
	}

	slog.Info("history fetched", "records", len(all))
	return all, nil
}

// FetchRange fetches history and keeps only records with from <= date <= to
// (whole days, UTC). A reversed range is a config error.
func (c *Client) FetchRange(ctx context.Context, from, to time.Time) ([]model.StakingRecord, error) {
	if to.Before(from) {
		return nil, &model.ConfigError{Field: "date range", Reason: "start must not be after end"}
	}
	all, err := c.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	fromDay := from.UTC().Truncate(24 * time.Hour)
	toDay := to.UTC().Truncate(24 * time.Hour)
	out := all[:0:0]
	for _, rec := range all {
		day := rec.Date.Truncate(24 * time.Hour)
		if day.Before(fromDay) || day.After(toDay) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (c *Client) fetchPage(ctx context.Context, page int) (*HistoryResponse, error) {
	var body HistoryResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"frequency": c.frequency,
			"page":      strconv.Itoa(page),
			"limit":     strconv.Itoa(c.pageLimit),
		}).
		SetResult(&body).
		Get(c.baseURL)
	if err != nil {
		return nil, &model.FetchError{Page: page, Err: err}
	}
	if resp.IsError() {
		b := resp.Body()
		if len(b) > 200 {
			b = b[:200]
		}
		return nil, &model.FetchError{
			Page:   page,
			Status: resp.StatusCode(),
			Err:    fmt.Errorf("%s", string(b)),
		}
	}
	return &body, nil
}
