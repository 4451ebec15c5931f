package orrery

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"git.c3pb.de/farhaven/solarsystem/vector"
)

func TestFrameSequence(t *testing.T) {
	f := FrameSequence(DefaultFrameCount)

	if len(f) != 360 {
		t.Fatalf(`expected 360 frames, got %d`, len(f))
	}
	if f[0] != 0 {
		t.Errorf(`first frame %v`, f[0])
	}
	step := 2 * math.Pi / 360
	for i := 1; i < len(f); i++ {
		if math.Abs(f[i]-f[i-1]-step) > 1e-12 {
			t.Errorf(`uneven step at %d: %v`, i, f[i]-f[i-1])
		}
	}
	if last := f[len(f)-1]; last >= 2*math.Pi {
		t.Errorf(`last frame %v not below 2π`, last)
	}

	if FrameSequence(0) != nil {
		t.Errorf(`expected nil for zero frames`)
	}
}

func TestAnimationWraps(t *testing.T) {
	a, err := NewAnimation([]float64{1, 2, 3}, time.Millisecond)
	if err != nil {
		t.Fatalf(`%s`, err)
	}

	got := []float64{}
	for i := 0; i < 7; i++ {
		got = append(got, a.Next())
	}
	want := []float64{1, 2, 3, 1, 2, 3, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf(`step %d: got %v, expected %v`, i, got[i], want[i])
		}
	}

	a.Reset()
	if f := a.Next(); f != 1 {
		t.Errorf(`expected 1 after reset, got %v`, f)
	}
}

func TestNewAnimationRejectsBadInput(t *testing.T) {
	if _, err := NewAnimation(nil, time.Second); err == nil {
		t.Errorf(`expected error for empty frames`)
	}
	if _, err := NewAnimation([]float64{0}, 0); err == nil {
		t.Errorf(`expected error for zero interval`)
	}
}

func TestAnimationRunStops(t *testing.T) {
	a, _ := NewAnimation(FrameSequence(4), time.Millisecond)

	seen := []float64{}
	err := a.Run(context.Background(), func(frame float64) error {
		seen = append(seen, frame)
		if len(seen) == 6 {
			return ErrStop
		}
		return nil
	})
	if err != nil {
		t.Errorf(`expected nil after ErrStop, got %s`, err)
	}
	if len(seen) != 6 || seen[4] != 0 {
		t.Errorf(`unexpected frames %v`, seen)
	}
}

func TestAnimationRunPropagatesErrors(t *testing.T) {
	a, _ := NewAnimation(FrameSequence(4), time.Millisecond)
	boom := errors.New(`boom`)

	err := a.Run(context.Background(), func(float64) error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf(`expected boom, got %v`, err)
	}
}

func TestAnimationRunCancel(t *testing.T) {
	a, _ := NewAnimation(FrameSequence(4), time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := a.Run(ctx, func(float64) error {
		calls++
		cancel()
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf(`expected context.Canceled, got %v`, err)
	}
	if calls != 1 {
		t.Errorf(`expected one call, got %d`, calls)
	}
}

func TestScenery(t *testing.T) {
	s := NewScenery(7, DefaultStarCount, DefaultAsteroidCount)

	if len(s.Stars) != 1000 || len(s.Asteroids) != 300 {
		t.Fatalf(`got %d stars, %d asteroids`, len(s.Stars), len(s.Asteroids))
	}

	for _, st := range s.Stars {
		if math.Abs(st.X) > SceneExtent || math.Abs(st.Y) > SceneExtent {
			t.Errorf(`star %s outside scene`, st)
		}
	}
	for _, a := range s.Asteroids {
		r := a.Pos.Distance(vector.V2{})
		if r < beltInner-1e-9 || r > beltOuter+1e-9 {
			t.Errorf(`asteroid at radius %v outside belt`, r)
		}
		if a.Size < asteroidMinSize || a.Size > asteroidMaxSize {
			t.Errorf(`asteroid size %v`, a.Size)
		}
	}

	again := NewScenery(7, DefaultStarCount, DefaultAsteroidCount)
	if again.Stars[123] != s.Stars[123] || again.Asteroids[42] != s.Asteroids[42] {
		t.Errorf(`scenery not deterministic for equal seeds`)
	}
}
