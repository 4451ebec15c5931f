package orrery

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	DefaultFrameCount = 360
	DefaultInterval   = 50 * time.Millisecond
)

// ErrStop may be returned by a frame callback to end Run without error.
var ErrStop = errors.New(`stop animation`)

// FrameSequence returns n evenly spaced frame parameters covering [0, 2π).
func FrameSequence(n int) []float64 {
	if n <= 0 {
		return nil
	}
	r := make([]float64, n)
	step := 2 * math.Pi / float64(n)
	for i := range r {
		r[i] = float64(i) * step
	}
	return r
}

// Animation owns the frame parameter: it cycles through a fixed sequence of
// frames and loops back to the start.
type Animation struct {
	frames   []float64
	pos      int
	looptime time.Duration
}

func NewAnimation(frames []float64, looptime time.Duration) (*Animation, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf(`animation needs at least one frame`)
	}
	if looptime <= 0 {
		return nil, fmt.Errorf(`frame interval must be positive, got %s`, looptime)
	}

	return &Animation{
		frames:   append([]float64(nil), frames...),
		looptime: looptime,
	}, nil
}

// Len is the number of frames in one cycle.
func (a *Animation) Len() int {
	return len(a.frames)
}

func (a *Animation) Interval() time.Duration {
	return a.looptime
}

// Frames returns one cycle of frame parameters in order.
func (a *Animation) Frames() []float64 {
	return append([]float64(nil), a.frames...)
}

// Next returns the current frame parameter and advances, wrapping at the end
// of the cycle.
func (a *Animation) Next() float64 {
	f := a.frames[a.pos]
	a.pos = (a.pos + 1) % len(a.frames)
	return f
}

func (a *Animation) Reset() {
	a.pos = 0
}

// Run calls fn with successive frames, once per interval, until ctx is done
// or fn returns an error. fn runs on the calling goroutine. If fn takes longer
// than the interval the next frame starts right away.
func (a *Animation) Run(ctx context.Context, fn func(frame float64) error) error {
	for {
		t_start := time.Now()

		if err := fn(a.Next()); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}

		t_sleep := a.looptime - time.Since(t_start)
		if t_sleep <= 0 {
			t_sleep = time.Nanosecond
		}

		timer := time.NewTimer(t_sleep)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
