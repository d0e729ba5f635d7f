package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	start := time.Unix(1700000000, 0)
	c := NewFixed(start)

	assert.Equal(t, start, c.Now())

	c.Advance(90 * time.Second)
	assert.Equal(t, int64(1700000090), c.Now().Unix())

	c.Set(start)
	assert.Equal(t, start, c.Now())
}

func TestReal(t *testing.T) {
	before := time.Now()
	assert.False(t, New().Now().Before(before))
}
