package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	assert.NotEmpty(t, Get())

	old := version
	t.Cleanup(func() { version = old })
	version = "v0.1.0"
	assert.Equal(t, "v0.1.0", Get())
}
