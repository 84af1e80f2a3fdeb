package router

// Stack holds the controllers of a navigation container, root first.
type Stack struct {
	entries []Controller
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]Controller, 0),
	}
}

// Push adds a controller on top of the stack.
func (s *Stack) Push(c Controller) {
	s.entries = append(s.entries, c)
}

// Pop removes and returns the top controller.
// Returns nil if the stack is empty.
func (s *Stack) Pop() Controller {
	if len(s.entries) == 0 {
		return nil
	}
	top := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = nil
	s.entries = s.entries[:len(s.entries)-1]
	return top
}

// Peek returns the top controller without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() Controller {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// At returns the controller at depth i, 0 being the root.
// Returns nil if i is out of range.
func (s *Stack) At(i int) Controller {
	if i < 0 || i >= len(s.entries) {
		return nil
	}
	return s.entries[i]
}

// Truncate drops every controller above depth n and returns them, bottom first.
func (s *Stack) Truncate(n int) []Controller {
	if n < 0 {
		n = 0
	}
	if n >= len(s.entries) {
		return nil
	}
	dropped := append([]Controller(nil), s.entries[n:]...)
	clear(s.entries[n:])
	s.entries = s.entries[:n]
	return dropped
}

// Controllers returns a copy of the stack, root first.
func (s *Stack) Controllers() []Controller {
	return append([]Controller(nil), s.entries...)
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
}
