package http

import (
	"errors"
	"net/url"
)

const maskedValue = "MASKED"

// queryMask replaces the values of sensitive query parameters in URLs and URL errors.
type queryMask map[string]struct{}

func newQueryMask(params []string) queryMask {
	if len(params) == 0 {
		return nil
	}
	m := make(queryMask, len(params))
	for _, p := range params {
		m[p] = struct{}{}
	}
	return m
}

func (m queryMask) apply(rawURL string) string {
	if len(m) == 0 {
		return rawURL
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	query := parsed.Query()
	for key := range query {
		if _, ok := m[key]; ok {
			query.Set(key, maskedValue)
		}
	}
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// scrub rewrites the URL carried by a *url.Error in err's chain.
// net/http reports every transport failure that way, with the full request URL.
func (m queryMask) scrub(err error) error {
	if len(m) == 0 {
		return err
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = m.apply(urlErr.URL)
	}
	return err
}
