// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch is the HTTP boundary of the pipeline: it builds source URLs
// for a menu period and retrieves raw document bytes.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/chombe87/vrtic/pkg/types"
)

// DefaultUserAgent is a browser-like User-Agent. The source site serves
// cut-down pages to unknown agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// DefaultTimeout bounds each retrieval. There is no retry; a timeout aborts
// the run.
const DefaultTimeout = 30 * time.Second

// BaseURL is the site root the monthly page URLs are built on. Declared as a
// var so tests can substitute an httptest server.
var BaseURL = "https://www.predskolska.rs"

// monthSlugs maps month numbers to the Latin, lower-case slugs the site uses
// in page URLs.
var monthSlugs = map[int]string{
	1:  "januar",
	2:  "februar",
	3:  "mart",
	4:  "april",
	5:  "maj",
	6:  "jun",
	7:  "jul",
	8:  "avgust",
	9:  "septembar",
	10: "oktobar",
	11: "novembar",
	12: "decembar",
}

// UnknownMonthError reports a month argument outside 1..12. It is raised
// before any network activity.
type UnknownMonthError struct {
	Month int
}

func (e *UnknownMonthError) Error() string {
	return fmt.Sprintf("unknown month: %d", e.Month)
}

// RetrievalError reports a failed document retrieval: a non-success HTTP
// status. Network-level failures surface as wrapped transport errors instead.
type RetrievalError struct {
	URL    string
	Status int
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.Status, e.URL)
}

// MonthSlug returns the site's URL slug for a month number.
func MonthSlug(month int) (string, error) {
	slug, ok := monthSlugs[month]
	if !ok {
		return "", &UnknownMonthError{Month: month}
	}
	return slug, nil
}

// MonthPageURL builds the change-notice page URL for a menu period.
func MonthPageURL(year, month int) (string, error) {
	slug, err := MonthSlug(month)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/jelovnik-%s-%d/", BaseURL, slug, year), nil
}

// Client retrieves documents with a fixed timeout and user-agent.
type Client struct {
	http      *http.Client
	userAgent string
}

// NewClient builds a Client from HTTP settings, applying the package
// defaults for unset fields.
func NewClient(cfg types.HTTPConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		http:      &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Get retrieves url and returns the response body. A non-2xx status is a
// RetrievalError; nothing is retried.
func (c *Client) Get(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RetrievalError{URL: url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}
	return body, nil
}

// GetHTML retrieves url and decodes the body as UTF-8 text, dropping invalid
// byte sequences.
func (c *Client) GetHTML(url string) (string, error) {
	body, err := c.Get(url)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(body), ""), nil
}
