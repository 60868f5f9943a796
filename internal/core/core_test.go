package core

import (
	"testing"
	"time"
)

func TestByteGridWrap(t *testing.T) {
	g := NewByteGrid(4, 3)
	cases := []struct {
		x, y   int
		wx, wy int
	}{
		{0, 0, 0, 0},
		{-1, 0, 3, 0},
		{4, 0, 0, 0},
		{0, -1, 0, 2},
		{0, 3, 0, 0},
		{-9, -7, 3, 2},
		{11, 8, 3, 2},
	}
	for _, tc := range cases {
		x, y := g.Wrap(tc.x, tc.y)
		if x != tc.wx || y != tc.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", tc.x, tc.y, x, y, tc.wx, tc.wy)
		}
	}
}

func TestByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -2)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d with %d cells", g.W, g.H, len(g.Cells()))
	}
}

func TestByteGridCloneIsIndependent(t *testing.T) {
	g := NewByteGrid(3, 2)
	g.Set(2, 1, 5)
	c := g.Clone()
	c.Set(2, 1, 6)
	if g.At(2, 1) != 5 {
		t.Fatalf("clone aliased source storage: source now %d", g.At(2, 1))
	}
	if got := c.Row(1); len(got) != 3 || got[2] != 6 {
		t.Fatalf("unexpected clone row %v", got)
	}
	c.Clear()
	for i, v := range c.Cells() {
		if v != 0 {
			t.Fatalf("cell %d not cleared: %d", i, v)
		}
	}
}

type namedSim struct{ name string }

func (s namedSim) Name() string { return s.name }
func (s namedSim) Size() Size { return Size{W: 1, H: 1} }
func (s namedSim) Reset(int64) {}
func (s namedSim) Step() {}
func (s namedSim) Cells() []uint8 { return []uint8{0} }

func TestRegisterIgnoresIncompleteEntries(t *testing.T) {
	before := len(Sims())
	Register("", func(map[string]string) Sim { return namedSim{} })
	Register("nil-factory", nil)
	if len(Sims()) != before {
		t.Fatalf("registry grew from %d to %d", before, len(Sims()))
	}

	Register("zz-test", func(map[string]string) Sim { return namedSim{name: "zz-test"} })
	defer delete(sims, "zz-test")
	names := SimNames()
	if names[len(names)-1] != "zz-test" {
		t.Fatalf("expected sorted names ending in zz-test, got %v", names)
	}
	if got := Sims()["zz-test"](nil).Name(); got != "zz-test" {
		t.Fatalf("factory returned %q", got)
	}
}

func TestParameterSnapshotLookupAndLines(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "World", Params: []Parameter{{Key: "w", Label: "Width", Type: ParamTypeInt, Value: "32"}}},
		{Name: "Rule", Params: []Parameter{{Key: "palette", Label: "Palette", Type: ParamTypeString, Value: "abc"}}},
	}}
	p, ok := snap.Lookup("palette")
	if !ok || p.Value != "abc" {
		t.Fatalf("Lookup(palette) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("expected missing key lookup to fail")
	}
	want := "World\n  Width: 32\nRule\n  Palette: abc"
	if got := snap.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestFixedStepWaitPacesTicks(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }
	var slept time.Duration
	fs.sleep = func(d time.Duration) {
		slept += d
		clock = clock.Add(d)
	}

	for i := 0; i < 3; i++ {
		fs.Wait()
	}
	if want := 2 * fs.Interval(); slept != want {
		t.Fatalf("slept %v over three ticks, want %v", slept, want)
	}
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("interval %v, want 100ms", fs.Interval())
	}
}

func TestFixedStepDefaultsTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("interval %v, want %v", fs.Interval(), time.Second/60)
	}
}
