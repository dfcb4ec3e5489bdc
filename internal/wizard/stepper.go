// Package wizard implements the multi-step form flows: an ordered sequence of
// steps, each owning a disjoint set of fields with its own validity check,
// culminating in a single submission.
package wizard

// Step is one page of a wizard. Validate returns nil when the step's fields
// are acceptable; Fields lists what gets marked touched on a refused advance.
type Step struct {
	Title    string
	Fields   []string
	Validate func() error
}

// Stepper tracks the current position in an ordered list of steps.
type Stepper struct {
	steps   []Step
	current int
	touched map[string]bool
}

// NewStepper starts a wizard at step 1.
func NewStepper(steps ...Step) *Stepper {
	return &Stepper{
		steps:   steps,
		current: 1,
		touched: make(map[string]bool),
	}
}

// Current returns the 1-based step number.
func (s *Stepper) Current() int { return s.current }

// Total returns the number of steps.
func (s *Stepper) Total() int { return len(s.steps) }

// Title returns the current step's title.
func (s *Stepper) Title() string { return s.steps[s.current-1].Title }

// StepError returns the current step's validation error, nil when valid.
func (s *Stepper) StepError() error {
	if v := s.steps[s.current-1].Validate; v != nil {
		return v()
	}
	return nil
}

// Advance moves to the next step if the current one validates. On refusal the
// step's fields are marked touched so validation messages surface, and the
// position is unchanged. Advancing past the last step is a no-op success.
func (s *Stepper) Advance() bool {
	step := s.steps[s.current-1]
	if step.Validate != nil {
		if err := step.Validate(); err != nil {
			for _, f := range step.Fields {
				s.touched[f] = true
			}
			return false
		}
	}
	if s.current < len(s.steps) {
		s.current++
	}
	return true
}

// Retreat moves back one step; always permitted while past step 1.
func (s *Stepper) Retreat() bool {
	if s.current > 1 {
		s.current--
		return true
	}
	return false
}

// Touched reports whether a refused advance has marked the field.
func (s *Stepper) Touched(field string) bool { return s.touched[field] }

// TouchAll marks every field of every step, used on a refused submit.
func (s *Stepper) TouchAll() {
	for _, step := range s.steps {
		for _, f := range step.Fields {
			s.touched[f] = true
		}
	}
}

// Submittable reports whether every step validates simultaneously.
func (s *Stepper) Submittable() bool {
	for _, step := range s.steps {
		if step.Validate != nil && step.Validate() != nil {
			return false
		}
	}
	return true
}
