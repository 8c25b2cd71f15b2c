package pubsub

import "sync"

// Signal is a zero-payload local broadcast. Notifications to a watcher that
// has not consumed the previous one are coalesced.
type Signal struct {
	mu       sync.Mutex
	watchers map[int]chan struct{}
	next     int
}

// Notify wakes every watcher.
func (s *Signal) Notify() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.watchers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Watch registers a watcher. The returned func unregisters it.
func (s *Signal) Watch() (<-chan struct{}, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watchers == nil {
		s.watchers = make(map[int]chan struct{})
	}
	s.next++
	id := s.next
	ch := make(chan struct{}, 1)
	s.watchers[id] = ch
	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.watchers, id)
	}
}
