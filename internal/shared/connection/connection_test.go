package connection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRetries(t *testing.T) {
	assert.Equal(t, 1, normalizeRetries(0))
	assert.Equal(t, 1, normalizeRetries(-3))
	assert.Equal(t, 5, normalizeRetries(5))
}
