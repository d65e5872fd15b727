package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRootRegistersCommands(t *testing.T) {
	root := NewRoot()

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"run", "steps", "doctor", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "****", maskKey("abcd"))
	assert.Equal(t, "abcd****", maskKey("abcdefgh"))
	assert.Equal(t, "", maskKey(""))
}
