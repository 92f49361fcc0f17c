package pkg

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"errors"
	"sync"
	"time"
)

// ErrInvalidRange is returned by NextIntInRange when max < min.
var ErrInvalidRange = errors.New("max must be >= min")

// RandomSource produces uniformly distributed integers. It prefers the
// platform CSPRNG and falls back to a seeded xorshift32 generator when the
// CSPRNG is unavailable. The fallback state is shared by all callers of one
// instance and advances under a mutex, so rapid calls within the same timing
// resolution never repeat.
type RandomSource struct {
	mu     sync.Mutex
	state  uint32
	reader func([]byte) (int, error)
}

// NewRandomSource returns a source backed by crypto/rand.
func NewRandomSource() *RandomSource {
	return &RandomSource{
		state:  uint32(time.Now().UnixNano()) ^ 0x9e3779b9,
		reader: cryptorand.Read,
	}
}

// newFallbackOnlySource is used by tests to exercise the xorshift path.
func newFallbackOnlySource(seed uint32) *RandomSource {
	return &RandomSource{
		state: seed,
		reader: func([]byte) (int, error) {
			return 0, errors.New("csprng unavailable")
		},
	}
}

// NextUint32 returns the next 32-bit value, from the CSPRNG when possible.
func (s *RandomSource) NextUint32() uint32 {
	var buf [4]byte
	if _, err := s.reader(buf[:]); err == nil {
		return binary.BigEndian.Uint32(buf[:])
	}
	return s.nextFallback()
}

// nextFallback advances the persistent xorshift32 state.
func (s *RandomSource) nextFallback() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	x := s.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	s.state = x
	return x
}

// NextIntInRange returns a uniformly distributed int in [min, max] inclusive.
// The modulo reduction carries a small low-order bias, which is acceptable
// for display-name generation and nothing else.
func (s *RandomSource) NextIntInRange(min, max int) (int, error) {
	if max < min {
		return 0, ErrInvalidRange
	}
	if min == max {
		return min, nil
	}
	// Two's complement keeps the difference exact for any int pair; the
	// +1 only wraps to 0 on the full 64-bit range, where every draw is
	// in bounds anyway.
	span := uint64(max) - uint64(min) + 1
	raw := uint64(s.NextUint32())
	if span == 0 {
		return min + int(raw), nil
	}
	return min + int(raw%span), nil
}
