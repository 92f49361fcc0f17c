package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordBoundaryModeIgnoresEmbeddedTerm(t *testing.T) {
	isBlocked := BuildProfanityFilter([]string{"ass"}, nil)

	assert.False(t, isBlocked("class"), "embedded term inside a larger token must not match")
	assert.True(t, isBlocked("ass"))
	assert.True(t, isBlocked("bad-ass"), "non-alphanumeric flank counts as a boundary")
}

func TestSubstringModeFlagsEmbeddedTerm(t *testing.T) {
	isBlocked := BuildProfanityFilter([]string{"ass"}, &FilterOptions{MatchSubstrings: true})

	assert.True(t, isBlocked("passion"))
	assert.True(t, isBlocked("ass"))
}

func TestBlocklistNormalization(t *testing.T) {
	isBlocked := BuildProfanityFilter([]string{"  Damn  ", "", "damn", "DAMN"}, nil)

	assert.True(t, isBlocked("damn"))
	assert.True(t, isBlocked("Damn"))
	assert.False(t, isBlocked("dam"))
}

func TestEmptyCandidateNeverMatches(t *testing.T) {
	isBlocked := BuildProfanityFilter(DefaultBlocklist, nil)
	assert.False(t, isBlocked(""))
}

func TestMetacharactersInTermsAreLiteral(t *testing.T) {
	isBlocked := BuildProfanityFilter([]string{"a.b"}, nil)

	assert.True(t, isBlocked("a.b"))
	assert.False(t, isBlocked("axb"), "dot must be escaped, not a wildcard")
}

func TestCaseInsensitiveCandidates(t *testing.T) {
	isBlocked := BuildProfanityFilter([]string{"hell"}, nil)

	assert.True(t, isBlocked("HELL"))
	assert.True(t, isBlocked("Hell"))
}
