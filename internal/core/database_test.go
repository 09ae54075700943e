// Heftly | 2026
// database_test.go

package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJitteredDuration(t *testing.T) {
	base := time.Hour
	got := jitteredDuration(base)
	assert.GreaterOrEqual(t, got, base)
	assert.Less(t, got, base+base/7)
}

func TestJitteredDurationTinyBase(t *testing.T) {
	// bases below the jitter granularity must pass through unchanged
	// instead of panicking in the random draw
	assert.Equal(t, time.Duration(0), jitteredDuration(0))
	assert.Equal(t, 3*time.Nanosecond, jitteredDuration(3*time.Nanosecond))
	assert.Equal(t, -time.Second, jitteredDuration(-time.Second))
}
