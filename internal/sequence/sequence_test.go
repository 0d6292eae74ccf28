package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buildstudio/internal/build"
)

func square(size float32) build.Step {
	return build.Step{Shape: build.ShapeSquare, Dims: build.Dims{Size: size}, Repetitions: 1}
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	s := New()
	for i := 1; i <= 5; i++ {
		s.Add(square(float32(i)))
	}
	steps := s.Steps()
	require.Len(t, steps, 5)
	for i, step := range steps {
		assert.Equal(t, float32(i+1), step.Dims.Size)
	}
}

func TestEditReplacesOnlyTarget(t *testing.T) {
	s := New()
	s.Add(square(1))
	s.Add(square(2))
	s.Add(square(3))

	require.NoError(t, s.Edit(1, square(20)))

	steps := s.Steps()
	assert.Equal(t, float32(1), steps[0].Dims.Size)
	assert.Equal(t, float32(20), steps[1].Dims.Size)
	assert.Equal(t, float32(3), steps[2].Dims.Size)
}

func TestEditDeleteOutOfRange(t *testing.T) {
	s := New()
	s.Add(square(1))
	s.Add(square(2))
	before := s.Steps()

	for _, i := range []int{-1, 2, 100} {
		assert.ErrorIs(t, s.Edit(i, square(9)), ErrOutOfRange)
		assert.ErrorIs(t, s.Delete(i), ErrOutOfRange)
		assert.Equal(t, before, s.Steps())
	}
}

func TestDeleteShiftsDown(t *testing.T) {
	s := New()
	for i := 1; i <= 4; i++ {
		s.Add(square(float32(i)))
	}
	require.NoError(t, s.Delete(1))

	steps := s.Steps()
	require.Len(t, steps, 3)
	assert.Equal(t, float32(1), steps[0].Dims.Size)
	assert.Equal(t, float32(3), steps[1].Dims.Size)
	assert.Equal(t, float32(4), steps[2].Dims.Size)
}

func TestMoveUpDown(t *testing.T) {
	s := New()
	s.Add(square(1))
	s.Add(square(2))
	s.Add(square(3))

	assert.ErrorIs(t, s.MoveUp(0), ErrOutOfRange)
	assert.ErrorIs(t, s.MoveDown(2), ErrOutOfRange)

	require.NoError(t, s.MoveUp(2))
	require.NoError(t, s.MoveDown(0))

	steps := s.Steps()
	assert.Equal(t, float32(3), steps[0].Dims.Size)
	assert.Equal(t, float32(1), steps[1].Dims.Size)
	assert.Equal(t, float32(2), steps[2].Dims.Size)
}

func TestOnChangeNotifiedPerMutation(t *testing.T) {
	s := New()
	calls := 0
	s.SetOnChange(func() { calls++ })

	s.Add(square(1))
	s.Add(square(2))
	assert.Equal(t, 2, calls)

	require.NoError(t, s.Edit(0, square(9)))
	assert.Equal(t, 3, calls)

	require.NoError(t, s.Delete(1))
	assert.Equal(t, 4, calls)

	// Failed mutations do not notify.
	assert.Error(t, s.Delete(5))
	assert.Equal(t, 4, calls)
}

func TestStepsReturnsCopy(t *testing.T) {
	s := New()
	s.Add(square(1))
	steps := s.Steps()
	steps[0] = square(99)
	got, err := s.Step(0)
	require.NoError(t, err)
	assert.Equal(t, float32(1), got.Dims.Size)
}

// Scenario from the tool's list-editing workflow: add three layers, delete the
// middle one, then revise the first.
func TestAddDeleteEditScenario(t *testing.T) {
	s := New()
	s.Add(build.Step{Shape: build.ShapeSquare, Dims: build.Dims{Size: 1}, Repetitions: 1})
	s.Add(build.Step{Shape: build.ShapeSquare, Dims: build.Dims{Size: 2}, Repetitions: 1})
	s.Add(build.Step{Shape: build.ShapeSquare, Dims: build.Dims{Size: 3}, Repetitions: 1})

	require.NoError(t, s.Delete(1))
	labels := s.Labels()
	require.Equal(t, []string{
		"Square | 1x1mm | 1 Reps | @(0.0,0.0)",
		"Square | 3x3mm | 1 Reps | @(0.0,0.0)",
	}, labels)

	revised := build.Step{Shape: build.ShapeSquare, Dims: build.Dims{Size: 1}, Repetitions: 2}
	require.NoError(t, s.Edit(0, revised))
	assert.Equal(t, []string{
		"Square | 1x1mm | 2 Reps | @(0.0,0.0)",
		"Square | 3x3mm | 1 Reps | @(0.0,0.0)",
	}, s.Labels())
}
