package snake

import (
	"errors"
	"time"
)

// seqRNG returns the queued values in order, then n-1 once exhausted.
type seqRNG struct {
	vals []int
	i    int
}

func (r *seqRNG) Intn(n int) int {
	if r.i >= len(r.vals) {
		return n - 1
	}
	v := r.vals[r.i]
	r.i++
	return v % n
}

type fakeTicker struct {
	starts, stops int
	running       bool
}

func (t *fakeTicker) Start() {
	t.starts++
	t.running = true
}

func (t *fakeTicker) Stop() {
	t.stops++
	t.running = false
}

type memStore struct {
	score   int
	has     bool
	loadErr error
	saveErr error
	saves   []int
}

func (s *memStore) Load() (int, error) {
	if s.loadErr != nil {
		return 0, s.loadErr
	}
	if !s.has {
		return 0, ErrNoHighScore
	}
	return s.score, nil
}

func (s *memStore) Save(score int) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.score = score
	s.has = true
	s.saves = append(s.saves, score)
	return nil
}

type memRecorder struct {
	runs []RunSummary
	err  error
}

func (r *memRecorder) RecordRun(run RunSummary) error {
	if r.err != nil {
		return r.err
	}
	r.runs = append(r.runs, run)
	return nil
}

var errDiskFull = errors.New("disk full")

func fixedClock() func() time.Time {
	t := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

// placeBody overwrites b with cells, head first, as if it had just advanced
// in heading h.
func placeBody(b *Body, cells []Cell, h Heading) {
	copy(b.cells, cells)
	b.length = len(cells)
	b.cells[b.length] = cells[len(cells)-1]
	b.heading = h
}

func mustGrid(width, height, unit int) Grid {
	g, err := NewGrid(width, height, unit)
	if err != nil {
		panic(err)
	}
	return g
}
