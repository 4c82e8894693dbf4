// Package caturl builds image service URLs.
//
// Query parameters are appended in the order given so the same request always
// produces the same URL string. Caption text is percent-encoded as a single
// path segment.
package caturl

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bft-labs/catcard/internal/domain"
)

const (
	// BasePath is the image service endpoint for a plain cat image.
	BasePath = "/cat"

	// CaptionPrefix is prepended to the escaped caption text of a captioned image.
	CaptionPrefix = "/cat/says/"
)

// Param is a single query parameter. Value is formatted with fmt.Sprint.
type Param struct {
	Key   string
	Value interface{}
}

// Spec describes a URL to build.
type Spec struct {
	// Host is the absolute origin, e.g. "https://cataas.com".
	Host string

	// Path replaces the host's path when non-empty.
	Path string

	// Params are appended after any query already present on Host.
	Params []Param
}

// Build parses s.Host, applies s.Path and appends s.Params.
// Returns an error wrapping domain.ErrInvalidURL when Host is not an absolute
// URL or when a parameter key is empty or repeated.
func Build(s Spec) (*url.URL, error) {
	u, err := url.Parse(s.Host)
	if err != nil {
		return nil, fmt.Errorf("%w: parse host %q: %w", domain.ErrInvalidURL, s.Host, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: host %q is not an absolute url", domain.ErrInvalidURL, s.Host)
	}

	if s.Path != "" {
		u.Path = s.Path
		u.RawPath = ""
	}

	if len(s.Params) == 0 {
		return u, nil
	}

	seen := make(map[string]struct{}, len(s.Params))
	var q strings.Builder
	q.WriteString(u.RawQuery)
	for _, p := range s.Params {
		if p.Key == "" {
			return nil, fmt.Errorf("%w: empty query parameter key", domain.ErrInvalidURL)
		}
		if _, dup := seen[p.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate query parameter %q", domain.ErrInvalidURL, p.Key)
		}
		seen[p.Key] = struct{}{}

		if q.Len() > 0 {
			q.WriteByte('&')
		}
		q.WriteString(url.QueryEscape(p.Key))
		q.WriteByte('=')
		q.WriteString(url.QueryEscape(fmt.Sprint(p.Value)))
	}
	u.RawQuery = q.String()

	return u, nil
}

// Caption derives the captioned image URL from base: the path becomes
// CaptionPrefix followed by text as one escaped segment, and the query is kept.
// base is not modified.
func Caption(base *url.URL, text string) string {
	derived := *base
	derived.Path = CaptionPrefix + text
	derived.RawPath = CaptionPrefix + url.PathEscape(text)
	return derived.String()
}
