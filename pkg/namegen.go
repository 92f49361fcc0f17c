package pkg

import (
	"regexp"
	"strconv"
	"strings"
)

var nouns = []string{
	"river", "mountain", "forest", "ocean", "field",
	"cloud", "stone", "tree", "bridge", "valley",
	"star", "island", "meadow", "desert", "canyon",
	"harbor", "grove", "prairie", "hill", "peak",
}

var adjectives = []string{
	"bright", "calm", "brave", "quiet", "swift",
	"gentle", "bold", "happy", "sly", "keen",
	"merry", "vivid", "lively", "fresh", "clear",
	"calm", "soft", "warm", "wild", "firm",
}

var whitespaceRuns = regexp.MustCompile(`\s{2,}`)
var whitespace = regexp.MustCompile(`\s`)

// UsernameOptions controls a single Generate call. The zero value yields
// adjective+noun with no digit suffix and no truncation.
type UsernameOptions struct {
	// Separator replaces spaces inside a collapsed Prefix. Defaults to "".
	Separator string
	// RandomDigits appends that many digits (1-6 supported, leading digit
	// never zero). Values outside the range yield no suffix.
	RandomDigits int
	// MaxLength truncates the result. The truncated name is not re-checked
	// against the profanity filter; truncation could in theory re-expose a
	// blocked fragment, accepted as a known limitation.
	MaxLength int
	// Prefix replaces the random adjective. This is a deterministic,
	// caller-trusted override: it bypasses both the random source and the
	// profanity filter.
	Prefix string
}

// UsernameGenerator synthesizes anonymous participant names from noun and
// adjective pools filtered through the default blocklist. Generated names
// are not persisted; the caller caches one per client session.
type UsernameGenerator struct {
	rand       *RandomSource
	nouns      []string
	adjectives []string
}

// NewUsernameGenerator filters the word pools once and reuses them for
// every call.
func NewUsernameGenerator(rand *RandomSource) *UsernameGenerator {
	isBlocked := BuildProfanityFilter(DefaultBlocklist, nil)
	keep := func(pool []string) []string {
		out := make([]string, 0, len(pool))
		for _, w := range pool {
			if !isBlocked(w) {
				out = append(out, w)
			}
		}
		return out
	}
	return &UsernameGenerator{
		rand:       rand,
		nouns:      keep(nouns),
		adjectives: keep(adjectives),
	}
}

// Generate returns a new display name, e.g. "calmriver482".
func (g *UsernameGenerator) Generate(opts UsernameOptions) string {
	noun := g.pick(g.nouns)

	adjective := ""
	if opts.Prefix != "" {
		collapsed := whitespaceRuns.ReplaceAllString(opts.Prefix, " ")
		adjective = strings.ToLower(whitespace.ReplaceAllString(collapsed, opts.Separator))
	} else {
		adjective = g.pick(g.adjectives)
	}

	username := adjective + noun + g.randomDigits(opts.RandomDigits)
	if opts.MaxLength > 0 {
		// Truncate on rune boundaries; a caller-supplied prefix may carry
		// multi-byte characters.
		if runes := []rune(username); len(runes) > opts.MaxLength {
			return string(runes[:opts.MaxLength])
		}
	}
	return username
}

func (g *UsernameGenerator) pick(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	i, err := g.rand.NextIntInRange(0, len(pool)-1)
	if err != nil {
		return pool[0]
	}
	return pool[i]
}

// randomDigits draws uniformly from [10^(n-1), 10^n - 1] so the leading
// digit is never zero. Unsupported digit counts yield an empty suffix.
func (g *UsernameGenerator) randomDigits(count int) string {
	if count < 1 || count > 6 {
		return ""
	}
	lo := 1
	for i := 1; i < count; i++ {
		lo *= 10
	}
	n, err := g.rand.NextIntInRange(lo, lo*10-1)
	if err != nil {
		return ""
	}
	return strconv.Itoa(n)
}
