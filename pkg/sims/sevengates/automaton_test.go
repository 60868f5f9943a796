package sevengates

import (
	"strconv"
	"testing"

	"seven-gates/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "12", "h": "-3", "seed": "99"})
	assert.Equal(t, Config{Width: 12, Height: 16, Seed: 99}, c)
	assert.Equal(t, DefaultConfig(), FromMap(nil))
	assert.Equal(t, DefaultConfig(), FromMap(map[string]string{"w": "x", "seed": "1.5"}))
}

func TestAutomatonRegistered(t *testing.T) {
	factory, ok := core.Sims()["sevengates"]
	require.True(t, ok, "sevengates not registered")
	sim := factory(map[string]string{"w": "6", "h": "4"})
	assert.Equal(t, "sevengates", sim.Name())
	assert.Equal(t, core.Size{W: 6, H: 4}, sim.Size())
	assert.Len(t, sim.Cells(), 24)
}

func TestAutomatonStepMatchesSimulate(t *testing.T) {
	a := NewAutomaton(Config{Width: 4, Height: 3, Seed: 1})
	for i := 0; i < 3; i++ {
		a.Step()
	}
	assert.Equal(t, 3, a.Generation())
	assert.Equal(t, [][]int{{4, 4, 2, 5}, {5, 3, 2, 3}, {6, 1, 4, 5}}, a.Grid().Rows())
}

func TestAutomatonReset(t *testing.T) {
	a := NewAutomaton(Config{Width: 8, Height: 8, Seed: 5})
	initial := a.Grid()
	a.Step()
	a.Step()

	a.Reset(0)
	assert.Equal(t, int64(5), a.Seed())
	assert.Zero(t, a.Generation())
	assert.True(t, initial.Equal(a.Grid()), "zero seed should fall back to the configured seed")

	a.Reset(6)
	assert.Equal(t, int64(6), a.Seed())
	want, err := Random(8, 8, 6)
	require.NoError(t, err)
	assert.True(t, want.Equal(a.Grid()))
}

func TestAutomatonClampsDimensions(t *testing.T) {
	a := NewAutomaton(Config{Width: 0, Height: -4, Seed: 1})
	assert.Equal(t, core.Size{W: 1, H: 1}, a.Size())
}

func TestAutomatonActiveMaskAndParameters(t *testing.T) {
	a := NewAutomaton(Config{Width: 4, Height: 3, Seed: 1})
	mask := a.ActiveMask()
	cells := a.Cells()
	require.Len(t, mask, len(cells))
	active := 0
	for i, v := range cells {
		assert.Equal(t, v >= ActiveThreshold, mask[i], "cell %d", i)
		if mask[i] {
			active++
		}
	}

	snap := a.Parameters()
	p, ok := snap.Lookup("active")
	require.True(t, ok)
	assert.Equal(t, strconv.Itoa(active), p.Value)
	p, ok = snap.Lookup("seed")
	require.True(t, ok)
	assert.Equal(t, "1", p.Value)
	p, ok = snap.Lookup("palette")
	require.True(t, ok)
	assert.Equal(t, `" .:=*#@"`, p.Value)
}

func TestAutomatonPaletteCoversBands(t *testing.T) {
	a := NewAutomaton(DefaultConfig())
	pal := a.Palette()
	require.Len(t, pal, Bands)
	pal[0].R = 1
	assert.NotEqual(t, pal[0], a.Palette()[0], "Palette must return a copy")
}
