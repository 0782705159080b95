package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountValue(t *testing.T) {
	assert.Equal(t, int64(42), countValue(int64(42)))
	assert.Equal(t, int64(42), countValue(uint64(42)))
	assert.Equal(t, int64(42), countValue(float64(42)))
	// empty result set or an unexpected type reads as zero, never panics
	assert.Equal(t, int64(0), countValue(nil))
	assert.Equal(t, int64(0), countValue("42"))
}
