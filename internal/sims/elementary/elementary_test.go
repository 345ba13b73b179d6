package elementary

import (
	"fmt"
	"testing"

	"ca-sheet/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var neighborhoods = [8][3]bool{
	{true, true, true},
	{true, true, false},
	{true, false, true},
	{true, false, false},
	{false, true, true},
	{false, true, false},
	{false, false, true},
	{false, false, false},
}

func TestRule30Table(t *testing.T) {
	want := [8]bool{false, false, false, true, true, true, true, false}
	for i, n := range neighborhoods {
		assert.Equal(t, want[i], Rule30.Apply(n[0], n[1], n[2]), "neighborhood %s", label(n))
		assert.Equal(t, n[0] != (n[1] || n[2]), Rule30.Apply(n[0], n[1], n[2]), "xor form for %s", label(n))
	}
}

func TestRule110Table(t *testing.T) {
	want := [8]bool{false, true, true, false, true, true, true, false}
	for i, n := range neighborhoods {
		assert.Equal(t, want[i], Rule110.Apply(n[0], n[1], n[2]), "neighborhood %s", label(n))
	}
}

func TestNextWritesOnlyTheRowBelow(t *testing.T) {
	g := core.NewGrid(4, 7)
	g.Set(1, 3, true)
	g.Set(3, 0, true)

	Next(g, 1, Rule30)

	// A lone live cell under Rule 30 grows into three.
	assert.Equal(t, []uint8{0, 0, 1, 1, 1, 0, 0}, g.Row(2))
	assert.Equal(t, []uint8{0, 0, 0, 1, 0, 0, 0}, g.Row(1), "source row must be untouched")
	assert.Equal(t, []uint8{1, 0, 0, 0, 0, 0, 0}, g.Row(3), "rows further down must be untouched")
	assert.Equal(t, []uint8{0, 0, 0, 0, 0, 0, 0}, g.Row(0))
}

func TestNextWrapsHorizontally(t *testing.T) {
	g := core.NewGrid(2, 5)
	g.Set(0, 0, true)

	Next(g, 0, Rule110)

	// 110 births from (0,0,1) and keeps (0,1,0); the left neighbor of column 0
	// is column 4.
	require.Equal(t, []uint8{1, 0, 0, 0, 1}, g.Row(1))
}

func label(n [3]bool) string {
	return fmt.Sprintf("%d%d%d", b2u(n[0]), b2u(n[1]), b2u(n[2]))
}
