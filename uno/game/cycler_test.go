package game_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uno-online/server/uno/game"
)

func TestCurrent(t *testing.T) {
	cycler := game.NewCycler([]int64{1, 2, 3, 4})
	assert.Equal(t, int64(4), cycler.Current())
	cycler.Next()
	assert.Equal(t, int64(1), cycler.Current())
	cycler.Next()
	assert.Equal(t, int64(2), cycler.Current())
	cycler.Reverse()
	cycler.Next()
	assert.Equal(t, int64(1), cycler.Current())
	cycler.Next()
	assert.Equal(t, int64(4), cycler.Current())
	cycler.Next()
	assert.Equal(t, int64(3), cycler.Current())
	cycler.Reverse()
	cycler.Next()
	assert.Equal(t, int64(4), cycler.Current())
	cycler.Next()
	assert.Equal(t, int64(1), cycler.Current())
}

func TestForEach(t *testing.T) {
	cycler := game.NewCycler([]int64{1, 2, 3, 4})

	var results []string
	cycler.ForEach(func(element int64) {
		results = append(results, fmt.Sprintf("called for %d", element))
	})

	require.Equal(t, []string{
		"called for 1",
		"called for 2",
		"called for 3",
		"called for 4",
	}, results)
}

func TestNext(t *testing.T) {
	cycler := game.NewCycler([]int64{1, 2, 3, 4})
	assert.Equal(t, int64(1), cycler.Next())
	assert.Equal(t, int64(2), cycler.Next())
	assert.Equal(t, int64(3), cycler.Next())
	assert.Equal(t, int64(4), cycler.Next())
	assert.Equal(t, int64(1), cycler.Next())
}

func TestReverse(t *testing.T) {
	cycler := game.NewCycler([]int64{1, 2, 3, 4})
	assert.Equal(t, int64(1), cycler.Next())
	assert.Equal(t, int64(2), cycler.Next())
	cycler.Reverse()
	assert.Equal(t, int64(1), cycler.Next())
	assert.Equal(t, int64(4), cycler.Next())
	assert.Equal(t, int64(3), cycler.Next())
	cycler.Reverse()
	assert.Equal(t, int64(4), cycler.Next())
	assert.Equal(t, int64(1), cycler.Next())
}

func TestDirection(t *testing.T) {
	cycler := game.NewCycler([]int64{1, 2, 3})
	assert.Equal(t, 1, cycler.Direction())
	cycler.Reverse()
	assert.Equal(t, -1, cycler.Direction())
	cycler.Reverse()
	assert.Equal(t, 1, cycler.Direction())
}
