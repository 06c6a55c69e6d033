package sysconfig

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-core-go/internal/domain/sysconfig"
	"github.com/stretchr/testify/assert"
)

func TestCache_LookupEmpty(t *testing.T) {
	c := NewCache(time.Minute)
	_, ok := c.Lookup()
	assert.False(t, ok)
	assert.True(t, c.FetchedAt().IsZero())
}

func TestCache_DefaultTTL(t *testing.T) {
	assert.Equal(t, DefaultCacheTTL, NewCache(0).TTL())
}

func TestCache_ReplaceAndExpire(t *testing.T) {
	clock := &manualClock{now: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)}
	c := NewCache(time.Minute, WithClock(clock.Now))

	snap := map[string]sysconfig.EntryValue{"a": {Value: "1"}}
	assert.True(t, c.Replace(c.Generation(), snap))
	assert.Equal(t, clock.Now(), c.FetchedAt())

	got, ok := c.Lookup()
	assert.True(t, ok)
	assert.Equal(t, "1", got["a"].Value)

	clock.Advance(time.Minute)
	_, ok = c.Lookup()
	assert.False(t, ok)
}

func TestCache_ReplaceAfterInvalidateIsDropped(t *testing.T) {
	c := NewCache(time.Minute)

	generation := c.Generation()
	c.Invalidate()

	assert.False(t, c.Replace(generation, map[string]sysconfig.EntryValue{"a": {Value: "stale"}}))
	_, ok := c.Lookup()
	assert.False(t, ok)
}
