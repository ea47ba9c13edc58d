// Package catalog talks to the gitignore.io template service.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"gitignore-tui/internal/domain"
)

const (
	// NoSelectionPlaceholder is returned for an empty request
	NoSelectionPlaceholder = "# No templates selected\n# Select templates from the Available Templates panel"
	// NoValidPlaceholder is returned when sanitizing removes every name
	NoValidPlaceholder = "# No valid templates provided"

	maxBodySize = 8 << 20
)

// Client fetches template names and merged template content
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

// Option customises a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its timeout is
// overwritten by the one passed to New.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// New creates a catalog client. Every request is bounded by timeout.
func New(baseURL, userAgent string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		http:      &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.http.Timeout = timeout
	return c
}

// BaseURL returns the service root without a trailing slash
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListTemplates returns the sorted, de-duplicated catalog
func (c *Client) ListTemplates(ctx context.Context) ([]string, error) {
	body, err := c.get(ctx, "list", c.baseURL+"/list")
	if err != nil {
		return nil, err
	}
	names := ParseList(body)
	if len(names) == 0 {
		return nil, &domain.ParseError{Op: "list", Err: errors.New("no template names in response")}
	}
	return names, nil
}

// FetchContent returns the merged content for names. Names are sanitized
// first; when nothing survives a placeholder is returned without a request.
func (c *Client) FetchContent(ctx context.Context, names []string) (string, error) {
	if len(names) == 0 {
		return NoSelectionPlaceholder, nil
	}
	clean := Sanitize(names)
	if len(clean) == 0 {
		return NoValidPlaceholder, nil
	}
	joined := strings.ToLower(strings.Join(clean, ","))
	return c.get(ctx, "fetch", c.baseURL+"/"+joined)
}

// Ping lists the catalog and returns how many templates it holds
func (c *Client) Ping(ctx context.Context) (int, error) {
	names, err := c.ListTemplates(ctx)
	if err != nil {
		return 0, err
	}
	return len(names), nil
}

func (c *Client) get(ctx context.Context, op, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &domain.NetworkError{Op: op, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &domain.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return "", &domain.NetworkError{Op: op, Err: fmt.Errorf("HTTP %s", resp.Status)}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", &domain.NetworkError{Op: op, Err: fmt.Errorf("reading response: %w", err)}
	}
	if !utf8.Valid(data) {
		return "", &domain.ParseError{Op: op, Err: errors.New("response is not valid UTF-8")}
	}
	return string(data), nil
}

// ParseList splits a list response on newlines and commas, keeping names
// made of letters, digits, hyphens and underscores
func ParseList(body string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, line := range strings.Split(strings.TrimSpace(body), "\n") {
		for _, field := range strings.Split(line, ",") {
			name := strings.TrimSpace(field)
			if !validName(name) || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func validName(name string) bool {
	stripped := strings.NewReplacer("-", "", "_", "").Replace(name)
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Sanitize reduces each name to letters, digits, hyphen, underscore and dot,
// dropping names that end up empty
func Sanitize(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		clean := strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.' {
				return r
			}
			return -1
		}, strings.TrimSpace(name))
		if clean != "" {
			out = append(out, clean)
		}
	}
	return out
}
