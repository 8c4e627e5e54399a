package lights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIif(t *testing.T) {
	assert.Equal(t, 1, iif(true, 1, 2))
	assert.Equal(t, 2, iif(false, 1, 2))
	assert.Equal(t, "on", iif(true, "on", "off"))
	assert.Equal(t, "off", iif(false, "on", "off"))
}
