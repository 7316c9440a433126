package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnce(t *testing.T) {
	var n int
	r := Once(func() { n++ })
	r()
	r()
	assert.Equal(t, 1, n, "release must run only once")

	assert.NotPanics(t, func() { Once(nil)() })
}
