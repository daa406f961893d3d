package taostats

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taostats/internal/model"
)

func testClient(t *testing.T, baseURL string, pageLimit int) *Client {
	t.Helper()
	c, err := NewClient(Options{
		BaseURL:      baseURL,
		APIKey:       "test-key",
		PageLimit:    pageLimit,
		Timeout:      5 * time.Second,
		MaxRetries:   3,
		RetryWait:    time.Millisecond,
		RetryMaxWait: 5 * time.Millisecond,
	})
	require.NoError(t, err)
	return c
}

func pageJSON(page, totalPages int, days ...string) string {
	data := ""
	for i, d := range days {
		if i > 0 {
			data += ","
		}
		data += fmt.Sprintf(`{
			"timestamp": "%sT00:00:00Z",
			"block_number": %d,
			"issued": "9000000000000000",
			"staked": "5000000000000000",
			"accounts": 300000,
			"balance_holders": 100000
		}`, d, 4_000_000+i)
	}
	return fmt.Sprintf(`{"data":[%s],"pagination":{"current_page":%d,"per_page":%d,"total_items":%d,"total_pages":%d}}`,
		data, page, len(days), len(days)*totalPages, totalPages)
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(Options{})
	var cerr *model.ConfigError
	require.ErrorAs(t, err, &cerr)
}

func TestFetchAll_Paginates(t *testing.T) {
	var pagesServed atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "by_day", r.URL.Query().Get("frequency"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))

		pagesServed.Add(1)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("page") {
		case "1":
			fmt.Fprint(w, pageJSON(1, 2, "2024-12-25", "2024-12-26"))
		case "2":
			fmt.Fprint(w, pageJSON(2, 2, "2024-12-27"))
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
		}
	}))
	defer srv.Close()

	recs, err := testClient(t, srv.URL, 2).FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, int32(2), pagesServed.Load(), "must stop at total_pages")
	assert.Equal(t, "2024-12-25", recs[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-12-27", recs[2].Date.Format("2006-01-02"))
	assert.InDelta(t, 9_000_000, recs[0].CurrentSupply, 1e-6)
}

func TestFetchAll_StopsOnShortPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// No total_pages hint; one short page ends the walk.
		fmt.Fprint(w, pageJSON(1, 0, "2024-12-25"))
	}))
	defer srv.Close()

	recs, err := testClient(t, srv.URL, 50).FetchAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestFetchAll_StopsOnEmptyPage(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") == "1" {
			fmt.Fprint(w, pageJSON(1, 0, "2024-12-25", "2024-12-26"))
			return
		}
		fmt.Fprint(w, `{"data":[],"pagination":{"current_page":2,"per_page":0,"total_items":2,"total_pages":0}}`)
	}))
	defer srv.Close()

	recs, err := testClient(t, srv.URL, 2).FetchAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, recs, 2)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetchAll_HTTPErrorIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := testClient(t, srv.URL, 50).FetchAll(context.Background())
	require.Error(t, err)

	var ferr *model.FetchError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, 1, ferr.Page)
	assert.Equal(t, http.StatusForbidden, ferr.Status)
}

func TestFetchAll_RetriesRateLimit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, pageJSON(1, 1, "2024-12-25"))
	}))
	defer srv.Close()

	recs, err := testClient(t, srv.URL, 50).FetchAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, recs, 1)
	assert.GreaterOrEqual(t, calls.Load(), int32(2), "429 must be retried")
}

func TestFetchAll_GivesUpAfterRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(t, srv.URL, 50).FetchAll(context.Background())
	var ferr *model.FetchError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, http.StatusInternalServerError, ferr.Status)
	assert.Equal(t, int32(3), calls.Load(), "bounded retry, at most MaxRetries attempts")
}

func TestFetchRange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, pageJSON(1, 1, "2024-12-25", "2024-12-26", "2024-12-27", "2024-12-28"))
	}))
	defer srv.Close()

	c := testClient(t, srv.URL, 50)
	from := time.Date(2024, 12, 26, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 27, 0, 0, 0, 0, time.UTC)

	recs, err := c.FetchRange(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "2024-12-26", recs[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-12-27", recs[1].Date.Format("2006-01-02"))
}

func TestFetchRange_ReversedRange(t *testing.T) {
	c := testClient(t, "http://unused.invalid", 50)
	_, err := c.FetchRange(context.Background(),
		time.Date(2024, 12, 28, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 26, 0, 0, 0, 0, time.UTC))

	var cerr *model.ConfigError
	require.ErrorAs(t, err, &cerr)
}
