package wireutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapList(t *testing.T) {
	double := func(i int) int { return i * 2 }

	assert.Nil(t, MapList((*[]int)(nil), double))

	empty := MapList(&[]int{}, double)
	if assert.NotNil(t, empty) {
		assert.Empty(t, *empty)
	}

	assert.Equal(t, &[]int{2, 4}, MapList(&[]int{1, 2}, double))
}

type color int

const (
	unsetColor color = iota
	red
	blue
)

func TestTokenTable(t *testing.T) {
	table := NewTokenTable(map[color]string{red: "red", blue: "blue"})

	assert.Equal(t, "red", table.Token(red))
	assert.Equal(t, "", table.Token(unsetColor))
	assert.Equal(t, blue, table.Value("blue"))
	assert.Equal(t, unsetColor, table.Value("green"))
	assert.Equal(t, 2, table.Len())
}
