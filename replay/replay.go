package replay

import (
	"errors"

	"github.com/algowalk/steptrace/search"
)

// ErrEmptyTrace is returned when constructing a Controller over a result
// with no steps; there is nothing to navigate.
var ErrEmptyTrace = errors.New("replay: trace must contain at least one step")

// Controller is a cursor over one completed step sequence. The zero value is
// not usable; construct via New or FromSteps. Not safe for concurrent
// navigation.
type Controller struct {
	steps []search.Step
	res   *search.Result
	pos   int
}

// New builds a Controller over the trace of a finished run. The controller
// references the result read-only; it never mutates it.
func New(res *search.Result) (*Controller, error) {
	if res == nil || len(res.Steps) == 0 {
		return nil, ErrEmptyTrace
	}
	return &Controller{steps: res.Steps, res: res}, nil
}

// FromSteps builds a Controller over a bare step sequence, for consumers that
// received a trace without its surrounding result (a deserialized step log,
// for example). The slice is referenced, not copied, and must not be mutated
// afterwards.
func FromSteps(steps []search.Step) (*Controller, error) {
	if len(steps) == 0 {
		return nil, ErrEmptyTrace
	}
	return &Controller{steps: steps}, nil
}

// Len reports the number of steps in the trace.
func (c *Controller) Len() int { return len(c.steps) }

// Index reports the current cursor position, always in [0, Len()-1].
func (c *Controller) Index() int { return c.pos }

// Current returns the step under the cursor.
func (c *Controller) Current() search.Step { return c.steps[c.pos] }

// AtStart reports whether the cursor sits on the first step.
func (c *Controller) AtStart() bool { return c.pos == 0 }

// AtEnd reports whether the cursor sits on the last step.
func (c *Controller) AtEnd() bool { return c.pos == len(c.steps)-1 }

// StepForward advances one step and returns it. At the final step the cursor
// stays put and the final step is returned again.
func (c *Controller) StepForward() search.Step {
	if c.pos < len(c.steps)-1 {
		c.pos++
	}
	return c.steps[c.pos]
}

// StepBackward retreats one step and returns it. At step 0 the cursor stays
// put and step 0 is returned again.
func (c *Controller) StepBackward() search.Step {
	if c.pos > 0 {
		c.pos--
	}
	return c.steps[c.pos]
}

// JumpTo seeks straight to index n, clamped into [0, Len()-1], and returns
// the step there. Full per-step snapshots make the seek O(1).
func (c *Controller) JumpTo(n int) search.Step {
	switch {
	case n < 0:
		n = 0
	case n >= len(c.steps):
		n = len(c.steps) - 1
	}
	c.pos = n
	return c.steps[c.pos]
}

// Reset moves the cursor back to step 0 and returns it. Equivalent to
// JumpTo(0).
func (c *Controller) Reset() search.Step {
	c.pos = 0
	return c.steps[0]
}

// Result returns the search result this controller navigates, or nil when the
// controller was built from a bare step slice.
func (c *Controller) Result() *search.Result { return c.res }
