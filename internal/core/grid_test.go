package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridClampsDegenerateSizes(t *testing.T) {
	g := NewGrid(0, 1)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 2, g.Cols())
	assert.Len(t, g.Cells(), 4)
	assert.Equal(t, Size{W: 2, H: 2}, g.Size())
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	g := NewGrid(3, 4)
	g.Set(1, 2, true)
	for _, rc := range []Coord{{0, 0}, {1, 2}, {2, 3}} {
		before := g.Alive(rc.Row, rc.Col)
		g.Toggle(rc.Row, rc.Col)
		assert.NotEqual(t, before, g.Alive(rc.Row, rc.Col), "toggle %v", rc)
		g.Toggle(rc.Row, rc.Col)
		assert.Equal(t, before, g.Alive(rc.Row, rc.Col), "double toggle %v", rc)
	}
}

func TestStageThenPublish(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, true)

	g.Stage(0, 0, false)
	g.Stage(0, 1, true)
	g.Stage(1, 0, true)
	g.Stage(1, 1, false)
	require.True(t, g.Alive(0, 0), "staging must not change the current generation")

	g.Publish()
	assert.Equal(t, []uint8{0, 1, 1, 0}, g.Cells())
	assert.Equal(t, 2, g.Population())
}

func TestClearAndClone(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(2, 2, true)
	c := g.Clone()

	g.Clear()
	assert.Zero(t, g.Population())
	assert.True(t, c.Alive(2, 2), "clone must not share storage")
	assert.Equal(t, []uint8{0, 0, 1}, c.Row(2))
}

func TestInBoundsAndWrap(t *testing.T) {
	g := NewGrid(3, 5)
	assert.True(t, g.InBounds(2, 4))
	assert.False(t, g.InBounds(3, 0))
	assert.False(t, g.InBounds(0, -1))

	r, c := g.Wrap(-1, 5)
	assert.Equal(t, 2, r)
	assert.Equal(t, 0, c)
}

func TestFixedStepPacing(t *testing.T) {
	now := time.Unix(0, 0)
	fs := NewFixedStep(4)
	fs.now = func() time.Time { return now }

	require.Equal(t, 250*time.Millisecond, fs.Interval())
	assert.True(t, fs.ShouldStep(), "first poll steps")
	assert.False(t, fs.ShouldStep())

	now = now.Add(100 * time.Millisecond)
	assert.False(t, fs.ShouldStep())
	now = now.Add(150 * time.Millisecond)
	assert.True(t, fs.ShouldStep())

	// A long stall yields a single step, not a burst.
	now = now.Add(10 * time.Second)
	assert.True(t, fs.ShouldStep())
	assert.False(t, fs.ShouldStep())

	fs.Restart()
	now = now.Add(time.Hour)
	assert.False(t, fs.ShouldStep(), "restart discards elapsed time")
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	heads := 0
	for i := 0; i < 1000; i++ {
		x := a.Coin()
		require.Equal(t, x, b.Coin())
		if x {
			heads++
		}
	}
	assert.InDelta(t, 500, heads, 80)
}
