package wizard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepper_Advance(t *testing.T) {
	valid := true
	s := NewStepper(
		Step{
			Title:  "first",
			Fields: []string{"a", "b"},
			Validate: func() error {
				if valid {
					return nil
				}
				return errors.New("invalid")
			},
		},
		Step{Title: "second"},
	)

	assert.Equal(t, 1, s.Current())
	assert.Equal(t, 2, s.Total())
	assert.Equal(t, "first", s.Title())

	// Refused advance stays put and marks the step's fields touched
	valid = false
	assert.False(t, s.Advance())
	assert.Equal(t, 1, s.Current())
	assert.True(t, s.Touched("a"))
	assert.True(t, s.Touched("b"))

	// Untouched fields stay untouched
	assert.False(t, s.Touched("c"))

	valid = true
	assert.True(t, s.Advance())
	assert.Equal(t, 2, s.Current())
	assert.Equal(t, "second", s.Title())

	// Advancing past the last step is a no-op success
	assert.True(t, s.Advance())
	assert.Equal(t, 2, s.Current())
}

func TestStepper_Retreat(t *testing.T) {
	s := NewStepper(Step{Title: "a"}, Step{Title: "b"})

	assert.False(t, s.Retreat())
	assert.True(t, s.Advance())
	assert.True(t, s.Retreat())
	assert.Equal(t, 1, s.Current())
}

func TestStepper_Submittable(t *testing.T) {
	stepOK := true
	s := NewStepper(
		Step{Fields: []string{"x"}, Validate: func() error {
			if stepOK {
				return nil
			}
			return errors.New("bad")
		}},
		Step{Title: "review"},
	)

	assert.True(t, s.Submittable())
	stepOK = false
	assert.False(t, s.Submittable())

	s.TouchAll()
	assert.True(t, s.Touched("x"))
}
