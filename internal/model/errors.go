package model

import (
	"fmt"
	"time"
)

// ConfigError reports missing or invalid configuration. Raised before any
// network call is made.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return "config: " + e.Reason
	}
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// FetchError reports an HTTP or decode failure for one page of the stats
// endpoint. Status is zero when the request never produced a response.
type FetchError struct {
	Page   int
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch page %d: status %d: %v", e.Page, e.Status, e.Err)
	}
	return fmt.Sprintf("fetch page %d: %v", e.Page, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DataError reports an unusable dataset (empty input, zero denominators).
// Date is zero when no single record can be blamed.
type DataError struct {
	Date   time.Time
	Reason string
}

func (e *DataError) Error() string {
	if e.Date.IsZero() {
		return "data: " + e.Reason
	}
	return fmt.Sprintf("data: %s: %s", e.Date.Format("2006-01-02"), e.Reason)
}
