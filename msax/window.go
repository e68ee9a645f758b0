package msax

import (
	"math"

	"github.com/gammazero/deque"
)

// rollingWindow tracks the mean and sample variance of the most recent
// size values pushed into it, using Welford updates on insert and evict.
// A window holding a single repeated value has exactly zero variance.
type rollingWindow struct {
	size   int
	values deque.Deque[float64]
	mean   float64
	m2     float64 // sum of squared deviations from mean
	last   float64 // most recently pushed value
	run    int     // consecutive pushes equal to last
}

func newRollingWindow(size int) *rollingWindow {
	return &rollingWindow{size: size}
}

// push appends x, evicting the oldest value once the window is full.
func (w *rollingWindow) push(x float64) {
	if w.values.Len() == w.size {
		w.evict()
	}
	w.values.PushBack(x)

	if w.run > 0 && x == w.last {
		w.run++
	} else {
		w.last, w.run = x, 1
	}

	n := w.values.Len()
	if w.run >= n {
		// Evictions leave rounding residue in the moments; reset them once
		// the window is constant.
		w.mean, w.m2 = x, 0
		return
	}

	delta := x - w.mean
	w.mean += delta / float64(n)
	w.m2 += delta * (x - w.mean)
}

func (w *rollingWindow) evict() {
	old := w.values.PopFront()
	n := w.values.Len()
	if n == 0 {
		w.mean, w.m2 = 0, 0
		return
	}

	delta := old - w.mean
	w.mean -= delta / float64(n)
	w.m2 -= delta * (old - w.mean)
	// rounding can push m2 slightly below zero
	if w.m2 < 0 {
		w.m2 = 0
	}
}

func (w *rollingWindow) count() int {
	return w.values.Len()
}

// variance returns the sample variance, or 0 with fewer than two values.
func (w *rollingWindow) variance() float64 {
	n := w.values.Len()
	if n < 2 {
		return 0
	}
	return w.m2 / float64(n-1)
}

// zscore standardizes x against the current window.
func (w *rollingWindow) zscore(x float64) float64 {
	return (x - w.mean) / math.Sqrt(w.variance())
}
