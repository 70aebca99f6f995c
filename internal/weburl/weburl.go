// Package weburl validates free-text website fields and derives a display host.
package weburl

import (
	"net/url"
	"regexp"
	"strings"
)

var pattern = regexp.MustCompile(`https?://(www\.)?[-a-zA-Z0-9@:%._+~#=]{2,256}\.[a-z]{2,6}\b([-a-zA-Z0-9@:%_+.~#?&//=]*)`)

// IsValid reports whether s contains an http(s) URL. The match is not anchored.
func IsValid(s string) bool { return pattern.MatchString(s) }

// Resolver extracts hostnames. A Resolver without Parse models an
// environment with no URL parsing facility.
type Resolver struct {
	Parse func(string) (*url.URL, error)
}

var (
	Default  = Resolver{Parse: url.Parse}
	Headless = Resolver{}
)

// Hostname returns the lower-cased host of s with the first "www." removed.
// ok is false when no parser is available or s does not parse.
func (r Resolver) Hostname(s string) (host string, ok bool) {
	if r.Parse == nil {
		return "", false
	}
	u, err := r.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	return strings.Replace(strings.ToLower(u.Hostname()), "www.", "", 1), true
}
