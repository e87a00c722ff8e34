package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadingCloseNeverBelowZero(t *testing.T) {
	var changes []bool
	l := NewLoading()
	l.OnChange(func(visible bool) { changes = append(changes, visible) })

	l.Close()
	assert.Zero(t, l.Count())
	assert.Empty(t, changes)

	l.Open()
	l.Close()
	l.Close()
	assert.Zero(t, l.Count())
	assert.False(t, l.Visible())

	l.Open()
	assert.True(t, l.Visible())
	assert.Equal(t, []bool{true, false, true}, changes)
}
