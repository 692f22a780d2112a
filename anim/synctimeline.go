package anim

import (
	"sync"
	"time"
)

// SyncTimeline guards a Timeline with a mutex so that one goroutine can drive it
// while others inspect or control it.
type SyncTimeline[T any] struct {
	mu sync.Mutex
	tl *Timeline[T]
}

// NewSyncTimeline wraps tl. tl must not be used directly afterwards.
func NewSyncTimeline[T any](tl *Timeline[T]) *SyncTimeline[T] {
	return &SyncTimeline[T]{tl: tl}
}

func (s *SyncTimeline[T]) Update(delta time.Duration) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tl.Update(delta)
}

func (s *SyncTimeline[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tl.Value()
}

func (s *SyncTimeline[T]) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tl.Status()
}

func (s *SyncTimeline[T]) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tl.Elapsed()
}

func (s *SyncTimeline[T]) Duration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tl.Duration()
}

// Snapshot reads value, status and elapsed time atomically.
func (s *SyncTimeline[T]) Snapshot() (T, Status, time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tl.Value(), s.tl.Status(), s.tl.Elapsed()
}

func (s *SyncTimeline[T]) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tl.Begin()
}

func (s *SyncTimeline[T]) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tl.Pause()
}

func (s *SyncTimeline[T]) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tl.Resume()
}

func (s *SyncTimeline[T]) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tl.Stop()
}

func (s *SyncTimeline[T]) Seek(elapsed time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tl.Seek(elapsed)
}

// Swap replaces the guarded timeline with the one returned by f, which runs with
// the lock held and receives the current timeline.
func (s *SyncTimeline[T]) Swap(f func(old *Timeline[T]) *Timeline[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tl = f(s.tl)
}
