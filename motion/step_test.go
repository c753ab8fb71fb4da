package motion

import (
	"math/rand/v2"
	"testing"
)

func testTuning() Tuning {
	return DefaultTuning(640, 360, 16, 16)
}

func restingActor() Actor {
	return NewActor(640/4-8, 360/2-8)
}

func tick(s *Sampler, a *Actor, t Tuning, events ...KeyEvent) Signals {
	sig := s.Apply(a, events)
	Step(a, t)
	return sig
}

func TestHoldUpSaturatesThenDecays(t *testing.T) {
	tn := testTuning()
	a := restingActor()
	var s Sampler

	tick(&s, &a, tn, Press(KeyUp))
	for i := 1; i < 20; i++ {
		tick(&s, &a, tn)
	}
	if a.SustainUp != tn.Ceiling {
		t.Fatalf("expected sustain_up %d after 20 frames, got %d", tn.Ceiling, a.SustainUp)
	}
	if a.Pose != PoseUpFull {
		t.Fatalf("expected pose %s, got %s", PoseUpFull, a.Pose)
	}

	tick(&s, &a, tn, Release(KeyUp))
	for i := 1; i < 15; i++ {
		tick(&s, &a, tn)
	}
	if a.SustainUp != 1 || a.Pose != PoseUpPartial {
		t.Fatalf("after 15 released frames expected sustain 1 / up_partial, got %d / %s", a.SustainUp, a.Pose)
	}
	tick(&s, &a, tn)
	if a.SustainUp != 0 {
		t.Fatalf("expected sustain_up 0 after 16 released frames, got %d", a.SustainUp)
	}
	if a.Pose != PoseNeutral {
		t.Fatalf("expected neutral pose, got %s", a.Pose)
	}
}

func TestHoldRightCyclesThrust(t *testing.T) {
	tn := testTuning()
	a := restingActor()
	var s Sampler

	var flames []Flame
	tick(&s, &a, tn, Press(KeyRight))
	flames = append(flames, a.Flame)
	for i := 1; i < 18; i++ {
		tick(&s, &a, tn)
		flames = append(flames, a.Flame)
		if a.ThrustPhase < 0 || a.ThrustPhase > tn.ThrustBands[len(tn.ThrustBands)-1] {
			t.Fatalf("thrust phase out of range: %d", a.ThrustPhase)
		}
	}

	want := make([]Flame, 0, 18)
	for i := 0; i < 6; i++ {
		want = append(want, FlameThrust)
	}
	for i := 0; i < 7; i++ {
		want = append(want, FlameThrust+1)
	}
	for i := 0; i < 5; i++ {
		want = append(want, FlameThrust)
	}
	for i := range want {
		if flames[i] != want[i] {
			t.Fatalf("frame %d: expected flame %d, got %d (sequence %v)", i, want[i], flames[i], flames)
		}
	}
}

func TestHorizontalBranches(t *testing.T) {
	tn := testTuning()
	cases := []struct {
		name   string
		intent Intent
		dx     int
		flame  Flame
	}{
		{"right", Intent{Right: true}, 1, FlameThrust},
		{"left", Intent{Left: true}, -1, FlameReverse},
		{"idle", Intent{}, 0, FlameIdle},
		{"idle_vertical_only", Intent{Up: true}, 0, FlameIdle},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := restingActor()
			a.Intent = c.intent
			x := a.X
			StepHorizontal(&a, tn)
			if a.X-x != c.dx {
				t.Fatalf("expected dx %d, got %d", c.dx, a.X-x)
			}
			if a.Flame != c.flame {
				t.Fatalf("expected flame %s, got %s", c.flame, a.Flame)
			}
		})
	}
}

func TestDerivePose(t *testing.T) {
	cases := []struct {
		name             string
		up, down         int
		upHeld, downHeld bool
		pose             Pose
		wantUp, wantDown int
	}{
		{"rest", 0, 0, false, false, PoseNeutral, 0, 0},
		{"both_positive", 4, 6, false, false, PoseNeutral, 4, 6},
		{"reversal_up_halves_down", 3, 10, true, false, PoseNeutral, 3, 5},
		{"reversal_down_halves_up", 9, 2, false, true, PoseNeutral, 4, 2},
		{"up_partial", 5, 0, true, false, PoseUpPartial, 5, 0},
		{"up_full", 16, 0, true, false, PoseUpFull, 16, 0},
		{"up_full_clamps", 17, 0, true, false, PoseUpFull, 16, 0},
		{"down_partial", 0, 15, false, true, PoseDownPartial, 0, 15},
		{"down_full_clamps", 0, 17, false, true, PoseDownFull, 0, 16},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pose, up, down := DerivePose(c.up, c.down, c.upHeld, c.downHeld, 16)
			if pose != c.pose || up != c.wantUp || down != c.wantDown {
				t.Fatalf("got (%s, %d, %d), want (%s, %d, %d)", pose, up, down, c.pose, c.wantUp, c.wantDown)
			}
		})
	}
}

func randomEvents(r *rand.Rand) []KeyEvent {
	keys := []Key{KeyUp, KeyDown, KeyLeft, KeyRight}
	var events []KeyEvent
	for _, k := range keys {
		switch r.IntN(10) {
		case 0:
			events = append(events, Press(k))
		case 1:
			events = append(events, Release(k))
		}
	}
	return events
}

func TestInvariantsUnderRandomInput(t *testing.T) {
	tn := testTuning()
	b := tn.Bounds()

	run := func(seed uint64) []Actor {
		r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		a := restingActor()
		var s Sampler
		trace := make([]Actor, 0, 5000)
		for i := 0; i < 5000; i++ {
			tick(&s, &a, tn, randomEvents(r)...)
			if a.SustainUp < 0 || a.SustainUp > tn.Ceiling || a.SustainDown < 0 || a.SustainDown > tn.Ceiling {
				t.Fatalf("frame %d: sustain out of range up=%d down=%d", i, a.SustainUp, a.SustainDown)
			}
			if a.Y < b.Top || a.Y >= b.Bottom {
				t.Fatalf("frame %d: y=%d escaped [%d, %d)", i, a.Y, b.Top, b.Bottom)
			}
			if a.X < 0 || a.X > tn.ViewportW-tn.SpriteW {
				t.Fatalf("frame %d: x=%d escaped [0, %d]", i, a.X, tn.ViewportW-tn.SpriteW)
			}
			trace = append(trace, a)
		}
		return trace
	}

	first := run(7)
	second := run(7)
	for i := range first {
		if first[i].Pose != second[i].Pose {
			t.Fatalf("frame %d: pose differs between identical runs", i)
		}
	}
}

func TestPositionClampsAtEdges(t *testing.T) {
	tn := testTuning()
	b := tn.Bounds()
	a := NewActor(1, b.Top)
	a.Intent = Intent{Up: true, Left: true}
	Step(&a, tn)
	if a.Y != b.Top || a.X != 1 {
		t.Fatalf("expected to stay at (1, %d), got (%d, %d)", b.Top, a.X, a.Y)
	}

	a = NewActor(b.Right-1, b.Bottom-1)
	a.Intent = Intent{Down: true, Right: true}
	Step(&a, tn)
	if a.Y != b.Bottom-1 || a.X != b.Right-1 {
		t.Fatalf("expected to stay at (%d, %d), got (%d, %d)", b.Right-1, b.Bottom-1, a.X, a.Y)
	}
}

func TestBoundsClamp(t *testing.T) {
	b := testTuning().Bounds()
	cases := []struct {
		name   string
		x, y   int
		wx, wy int
	}{
		{"inside", 10, 20, 10, 20},
		{"above_top", 10, b.Top - 5, 10, b.Top},
		{"on_bottom", 10, b.Bottom, 10, b.Bottom - 1},
		{"past_right", b.Right + 40, 20, b.Right - 1, 20},
		{"left_of_zero", -3, 20, b.Left, 20},
		{"corner", b.Right, b.Bottom + 9, b.Right - 1, b.Bottom - 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x, y := b.Clamp(tc.x, tc.y)
			if x != tc.wx || y != tc.wy {
				t.Fatalf("Clamp(%d, %d) = (%d, %d), want (%d, %d)", tc.x, tc.y, x, y, tc.wx, tc.wy)
			}
		})
	}
}

func TestNormalizedDropsBadBands(t *testing.T) {
	tn := Tuning{ThrustBands: []int{4, 4, 2, 9}}.Normalized()
	if tn.Ceiling != DefaultCeiling || tn.Speed != DefaultSpeed {
		t.Fatalf("expected defaults, got ceiling=%d speed=%d", tn.Ceiling, tn.Speed)
	}
	if len(tn.ThrustBands) != 2 || tn.ThrustBands[0] != 4 || tn.ThrustBands[1] != 9 {
		t.Fatalf("unexpected bands %v", tn.ThrustBands)
	}
}
