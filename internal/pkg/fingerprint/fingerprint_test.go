package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOfIsStableAndNormalized(t *testing.T) {
	a := Of("Donor@Example.com ", "500")
	b := Of("donor@example.com", "500")
	assert.Equal(t, a, b)
	assert.Len(t, a, Size*2)
}

func TestOfSeparatesParts(t *testing.T) {
	assert.NotEqual(t, Of("ab", "c"), Of("a", "bc"))
	assert.NotEqual(t, Of("x", "1"), Of("x", "2"))
}
