package state

// Listener observes a state change. prev and next always differ.
type Listener func(prev, next FieldState)

type subscription struct {
	id int
	fn Listener
}

// Store holds one field's state and notifies subscribers of every change.
// It is not safe for concurrent use; bubbletea calls Update from a single
// goroutine.
type Store struct {
	state    FieldState
	subs     []subscription
	nextID   int
	disposed bool
}

// NewStore returns a store seeded with initial.
func NewStore(initial FieldState) *Store {
	return &Store{state: initial}
}

// Get returns the current state.
func (s *Store) Get() FieldState {
	return s.state
}

// Update applies fn and notifies subscribers if the state changed.
// After Dispose it does nothing.
func (s *Store) Update(fn func(FieldState) FieldState) FieldState {
	if s.disposed {
		return s.state
	}
	prev := s.state
	next := fn(prev)
	if next == prev {
		return prev
	}
	s.state = next

	// Snapshot so listeners may unsubscribe while being notified.
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	for _, sub := range subs {
		if s.disposed {
			break
		}
		sub.fn(prev, next)
	}
	return next
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) func() {
	if s.disposed {
		return func() {}
	}
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Dispose drops every subscriber and freezes the state.
func (s *Store) Dispose() {
	s.disposed = true
	s.subs = nil
}

// Disposed reports whether Dispose has been called.
func (s *Store) Disposed() bool {
	return s.disposed
}
