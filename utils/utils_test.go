package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomAlphabetString(t *testing.T) {
	s := RandomAlphabetString(8)
	assert.Len(t, s, 8)
	for _, c := range s {
		assert.True(t, c >= 'a' && c <= 'z')
	}
	assert.Equal(t, "", RandomAlphabetString(0))
}
