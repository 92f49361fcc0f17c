package pkg

import (
	"regexp"
	"strings"
)

// DefaultBlocklist is the built-in list used when generating display names.
var DefaultBlocklist = []string{
	"ass",
	"asses",
	"asshole",
	"bastard",
	"bitch",
	"bloody",
	"bollocks",
	"bugger",
	"cock",
	"cocks",
	"cocksucker",
	"crap",
	"cunt",
	"damn",
	"dick",
	"douche",
	"dumb",
	"dumber",
	"dumbest",
	"fag",
	"faggot",
	"fuck",
	"fucked",
	"fucker",
	"fucking",
	"goddam",
	"goddamn",
	"goddamned",
	"hell",
}

// defaultWordBoundary matches a term only when flanked by start/end of
// string or a non-alphanumeric character, so "class" does not match "ass".
const defaultWordBoundary = `(?:^|[^a-z0-9])(?:%s)(?:$|[^a-z0-9])`

// FilterOptions configures BuildProfanityFilter.
type FilterOptions struct {
	// MatchSubstrings flags a candidate whenever a blocked term occurs
	// anywhere inside it (blocking "ass" would also flag "passion").
	// Defaults to false: word-boundary matching, fewer false positives.
	MatchSubstrings bool
	// WordBoundary overrides the boundary pattern; %s is replaced with the
	// escaped term. Ignored when MatchSubstrings is set.
	WordBoundary string
}

// BuildProfanityFilter compiles the blocklist into a reusable predicate.
// The blocklist is trimmed, lower-cased, de-duplicated and stripped of
// empties before compilation. The predicate returns false for an empty
// candidate.
func BuildProfanityFilter(blocklist []string, opts *FilterOptions) func(string) bool {
	seen := make(map[string]bool)
	var terms []string
	for _, w := range blocklist {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		terms = append(terms, w)
	}

	substring := opts != nil && opts.MatchSubstrings
	boundary := defaultWordBoundary
	if opts != nil && opts.WordBoundary != "" {
		boundary = opts.WordBoundary
	}

	patterns := make([]*regexp.Regexp, 0, len(terms))
	for _, term := range terms {
		escaped := regexp.QuoteMeta(term)
		if substring {
			patterns = append(patterns, regexp.MustCompile(escaped))
			continue
		}
		patterns = append(patterns, regexp.MustCompile(strings.Replace(boundary, "%s", escaped, 1)))
	}

	return func(word string) bool {
		if word == "" {
			return false
		}
		text := strings.ToLower(word)
		for _, rx := range patterns {
			if rx.MatchString(text) {
				return true
			}
		}
		return false
	}
}
