// Package safety filters externally sourced text snippets before display.
//
// A snippet is rejected when its combined text matches a blocklisted term,
// when its source domain is outside the allow-list, or when it mentions
// neither the player nor their team. The domain gate is deliberately
// permissive for malformed URLs: an unparseable URL yields an empty domain
// and skips the allow-list check, leaving only the relevance rule.
package safety

import (
	"net/url"
	"strings"

	"github.com/scoutlab/fplscout/internal/domain/model"
)

// Default term blocklist applied to the combined snippet text.
var defaultBlocklist = []string{
	"porn", "xhamster", "adult", "xxx", "sex", "nsfw", "onlyfans", "escort", "camgirl", "cam",
}

// Default source-domain allow-list, matched by suffix.
var defaultAllowedDomains = []string{
	"bbc.com", "bbc.co.uk", "skysports.com", "theguardian.com", "premierleague.com",
	"telegraph.co.uk", "theathletic.com", "independent.co.uk", "standard.co.uk",
}

// Subject identifies who a snippet must be about to pass the relevance rule.
type Subject struct {
	PlayerName string
	TeamName   string
	TeamShort  string
}

// Filter holds the block and allow lists. The zero value is unusable; use New.
type Filter struct {
	blocklist      []string
	allowedDomains []string
}

// Option applies a configuration option to the Filter.
type Option func(*Filter)

// WithBlocklist replaces the default term blocklist.
func WithBlocklist(terms []string) Option {
	return func(f *Filter) {
		if len(terms) > 0 {
			f.blocklist = terms
		}
	}
}

// WithAllowedDomains replaces the default domain allow-list.
func WithAllowedDomains(domains []string) Option {
	return func(f *Filter) {
		if len(domains) > 0 {
			f.allowedDomains = domains
		}
	}
}

// New constructs a Filter with the default lists.
func New(opts ...Option) *Filter {
	f := &Filter{
		blocklist:      defaultBlocklist,
		allowedDomains: defaultAllowedDomains,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Safe reports whether a snippet may be shown for the subject. Pure and
// total: every input yields a verdict, never an error.
func (f *Filter) Safe(s model.Snippet, subj Subject) bool {
	text := strings.ToLower(s.Title + " " + s.Snippet + " " + s.URL)

	for _, term := range f.blocklist {
		if strings.Contains(text, term) {
			return false
		}
	}

	if domain := Domain(s.URL); domain != "" {
		allowed := false
		for _, d := range f.allowedDomains {
			if strings.HasSuffix(domain, d) {
				allowed = true
				break
			}
		}
		if !allowed {
			return false
		}
	}

	// Relevance: reject only when every provided subject term is absent.
	p := strings.ToLower(subj.PlayerName)
	t := strings.ToLower(subj.TeamName)
	ts := strings.ToLower(subj.TeamShort)
	if p != "" && !strings.Contains(text, p) &&
		t != "" && !strings.Contains(text, t) &&
		ts != "" && !strings.Contains(text, ts) {
		return false
	}
	return true
}

// Apply returns the snippets that pass Safe, preserving order. Curated
// snippets are re-filtered through this as well, so list changes apply
// retroactively to stored data.
func (f *Filter) Apply(snippets []model.Snippet, subj Subject) []model.Snippet {
	kept := make([]model.Snippet, 0, len(snippets))
	for _, s := range snippets {
		if f.Safe(s, subj) {
			kept = append(kept, s)
		}
	}
	return kept
}

// Domain extracts the host from a URL, stripping a leading "www.".
// Malformed or empty input yields "".
func Domain(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
