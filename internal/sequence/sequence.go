// Package sequence holds the ordered build sequence edited through the main
// window. The store is owned by the UI thread; every successful mutation
// synchronously notifies the registered listener so the list widget can never
// drift from the store.
package sequence

import (
	"errors"

	"buildstudio/internal/build"
)

// ErrOutOfRange is returned by Edit, Delete, MoveUp, and MoveDown when the
// index does not name a current position. The sequence is left unmodified.
var ErrOutOfRange = errors.New("step index out of range")

// Store is the ordered, in-memory build sequence. A step's identity is its
// position; deleting shifts later steps down by one.
type Store struct {
	steps    []build.Step
	onChange func()
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// SetOnChange registers the listener called after every successful mutation.
// Pass nil to detach.
func (s *Store) SetOnChange(fn func()) {
	s.onChange = fn
}

func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

// Len returns the number of steps.
func (s *Store) Len() int {
	return len(s.steps)
}

// Step returns the step at index i.
func (s *Store) Step(i int) (build.Step, error) {
	if i < 0 || i >= len(s.steps) {
		return build.Step{}, ErrOutOfRange
	}
	return s.steps[i], nil
}

// Steps returns the current sequence in order. The returned slice is a copy.
func (s *Store) Steps() []build.Step {
	out := make([]build.Step, len(s.steps))
	copy(out, s.steps)
	return out
}

// Labels returns the display line for each step, in order.
func (s *Store) Labels() []string {
	out := make([]string, len(s.steps))
	for i, step := range s.steps {
		out[i] = step.Label()
	}
	return out
}

// Add appends step to the end of the sequence.
func (s *Store) Add(step build.Step) {
	s.steps = append(s.steps, step)
	s.notify()
}

// Edit replaces the step at index i.
func (s *Store) Edit(i int, step build.Step) error {
	if i < 0 || i >= len(s.steps) {
		return ErrOutOfRange
	}
	s.steps[i] = step
	s.notify()
	return nil
}

// Delete removes the step at index i; later steps shift down by one.
func (s *Store) Delete(i int) error {
	if i < 0 || i >= len(s.steps) {
		return ErrOutOfRange
	}
	s.steps = append(s.steps[:i], s.steps[i+1:]...)
	s.notify()
	return nil
}

// MoveUp swaps the step at index i with its predecessor. The first step
// cannot move up.
func (s *Store) MoveUp(i int) error {
	if i < 1 || i >= len(s.steps) {
		return ErrOutOfRange
	}
	s.steps[i-1], s.steps[i] = s.steps[i], s.steps[i-1]
	s.notify()
	return nil
}

// MoveDown swaps the step at index i with its successor. The last step cannot
// move down.
func (s *Store) MoveDown(i int) error {
	if i < 0 || i >= len(s.steps)-1 {
		return ErrOutOfRange
	}
	s.steps[i], s.steps[i+1] = s.steps[i+1], s.steps[i]
	s.notify()
	return nil
}
