package sevengates

import (
	"strconv"

	"seven-gates/internal/core"
)

// Automaton adapts the immutable Grid to the mutable core.Sim contract used
// by the viewer: each Step replaces the current snapshot with its successor.
type Automaton struct {
	cfg        Config
	seed       int64
	grid       Grid
	generation int
}

// NewAutomaton returns an Automaton seeded from cfg.Seed. Non-positive
// dimensions are clamped to 1.
func NewAutomaton(cfg Config) *Automaton {
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	a := &Automaton{cfg: cfg}
	a.Reset(cfg.Seed)
	return a
}

// Name returns the simulation identifier.
func (a *Automaton) Name() string { return "sevengates" }

// Size reports the grid dimensions.
func (a *Automaton) Size() core.Size { return core.Size{W: a.cfg.Width, H: a.cfg.Height} }

// Cells returns a row-major copy of the current bands.
func (a *Automaton) Cells() []uint8 { return a.grid.Cells() }

// Grid returns the current snapshot.
func (a *Automaton) Grid() Grid { return a.grid }

// Generation returns the number of steps since the last Reset.
func (a *Automaton) Generation() int { return a.generation }

// Seed returns the seed used by the last Reset.
func (a *Automaton) Seed() int64 { return a.seed }

// Reset rebuilds the grid from seed. A zero seed falls back to the
// configured one.
func (a *Automaton) Reset(seed int64) {
	if seed == 0 {
		seed = a.cfg.Seed
	}
	a.seed = seed
	a.grid = randomGrid(a.cfg.Width, a.cfg.Height, seed)
	a.generation = 0
}

// Step advances the automaton by one generation.
func (a *Automaton) Step() {
	a.grid = a.grid.Step()
	a.generation++
}

// ActiveMask reports, per cell in row-major order, whether it is active.
func (a *Automaton) ActiveMask() []bool {
	cells := a.grid.cells.Cells()
	mask := make([]bool, len(cells))
	for i, v := range cells {
		mask[i] = IsActive(int(v))
	}
	return mask
}

// Parameters describes the current run for the HUD.
func (a *Automaton) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", a.cfg.Width),
				intParam("h", "Height", a.cfg.Height),
				int64Param("seed", "Seed", a.seed),
				intParam("generation", "Generation", a.generation),
				intParam("active", "Active cells", a.grid.ActiveCount()),
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				intParam("bands", "Bands", Bands),
				intParam("active_threshold", "Active threshold", ActiveThreshold),
				{Key: "palette", Label: "Palette", Type: core.ParamTypeString, Value: strconv.Quote(Palette)},
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func init() {
	core.Register("sevengates", func(cfg map[string]string) core.Sim {
		return NewAutomaton(FromMap(cfg))
	})
}
