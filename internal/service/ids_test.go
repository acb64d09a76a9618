package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUUIDGenerator(t *testing.T) {
	g := NewIDGenerator("PERF")

	ref := g.Reference()
	assert.True(t, strings.HasPrefix(ref, "PERF"))
	assert.Len(t, ref, len("PERF")+12)

	tracking := g.TrackingID()
	assert.True(t, strings.HasPrefix(tracking, trackingPrefix))
	assert.Len(t, tracking, len(trackingPrefix)+10)
	assert.Equal(t, strings.ToUpper(tracking), tracking)

	seen := make(map[string]struct{})
	for range 1000 {
		r := g.Reference()
		_, dup := seen[r]
		assert.False(t, dup, "duplicate reference %s", r)
		seen[r] = struct{}{}
	}

	assert.NotEqual(t, g.OrderID(), g.OrderID())
}
