package nav

import (
	"time"
)

// SuccessResetDelay is how long a successful submission is shown before the form returns to idle.
const SuccessResetDelay = 3 * time.Second

// SubmitStatus tracks the contact form submission lifecycle.
type SubmitStatus int

const (
	SubmitIdle SubmitStatus = iota
	SubmitSending
	SubmitSuccess
	SubmitError
)

func (s SubmitStatus) String() string {
	switch s {
	case SubmitSending:
		return "sending"
	case SubmitSuccess:
		return "success"
	case SubmitError:
		return "error"
	case SubmitIdle:
		fallthrough
	default:
		return "idle"
	}
}

// State is the complete view state of the portfolio. It is only ever changed through Apply so
// every transition can be exercised without a terminal.
type State struct {
	// Active is the highlighted section. Always one of Sections.
	Active Section
	// Progress is the scroll completion percentage in [0,100]. Derived from Offset and Layout.
	Progress float64
	// MenuOpen controls the navigation overlay shown on narrow terminals.
	MenuOpen bool
	Submit   SubmitStatus
	// Generation counts accepted submissions. Reset timers carry it so a timer started for an
	// earlier success cannot end a later one.
	Generation int
	// ResetDelay is how long success is shown before returning to idle.
	ResetDelay time.Duration

	Layout    Layout
	Offset    int
	Threshold int
}

func New(threshold int) State {
	if threshold < 0 {
		threshold = DefaultThreshold
	}

	return State{Active: Sections[0], Threshold: threshold, ResetDelay: SuccessResetDelay}
}

// Event is anything that can drive a state transition.
type Event interface {
	apply(state State) (State, Effect)
}

// Effect describes work the caller must perform as a result of a transition. Transitions
// themselves never perform io.
type Effect interface {
	effect()
}

// ScrollTo asks the render layer to animate the viewport to Offset.
type ScrollTo struct {
	Offset int
}

// BeginSubmit signals that a submission was accepted and the request should be sent.
type BeginSubmit struct{}

// ResetSubmitAfter asks for a SubmitReset event with the same Generation to be delivered after Delay.
type ResetSubmitAfter struct {
	Delay      time.Duration
	Generation int
}

func (ScrollTo) effect()         {}
func (BeginSubmit) effect()      {}
func (ResetSubmitAfter) effect() {}

// Apply runs the transition for evt. The returned Effect is nil when nothing needs to happen
// outside the state.
func (s State) Apply(evt Event) (State, Effect) {
	if evt == nil {
		return s, nil
	}

	return evt.apply(s)
}

func (s State) recompute() State {
	s.Progress = Progress(s.Offset, s.Layout.MaxScroll())
	s.Active = ActiveSection(s.Layout, s.Offset, s.Threshold, s.Active)

	return s
}

// ScrollEvent reports the current viewport offset.
type ScrollEvent struct {
	Offset int
}

func (e ScrollEvent) apply(state State) (State, Effect) {
	state.Offset = e.Offset

	return state.recompute(), nil
}

// LayoutEvent replaces the document layout, eg. after a resize or content reload.
type LayoutEvent struct {
	Layout Layout
}

func (e LayoutEvent) apply(state State) (State, Effect) {
	state.Layout = e.Layout

	return state.recompute(), nil
}

// ThresholdEvent changes the activation line distance.
type ThresholdEvent struct {
	Rows int
}

func (e ThresholdEvent) apply(state State) (State, Effect) {
	if e.Rows < 0 {
		return state, nil
	}
	state.Threshold = e.Rows

	return state.recompute(), nil
}

// NavigateCommand jumps to a section. Unknown or unmounted sections are ignored.
type NavigateCommand struct {
	Section Section
}

func (e NavigateCommand) apply(state State) (State, Effect) {
	region, found := state.Layout.Region(e.Section)
	if !found {
		return state, nil
	}

	state.MenuOpen = false

	return state, ScrollTo{Offset: state.Layout.ClampOffset(region.Top)}
}

type ToggleMenu struct{}

func (ToggleMenu) apply(state State) (State, Effect) {
	state.MenuOpen = !state.MenuOpen

	return state, nil
}

type CloseMenu struct{}

func (CloseMenu) apply(state State) (State, Effect) {
	state.MenuOpen = false

	return state, nil
}

// SubmitStarted requests a new submission. It is refused while another one is in flight.
type SubmitStarted struct{}

func (SubmitStarted) apply(state State) (State, Effect) {
	if state.Submit == SubmitSending {
		return state, nil
	}
	state.Submit = SubmitSending
	state.Generation++

	return state, BeginSubmit{}
}

// SubmitResult completes an in-flight submission.
type SubmitResult struct {
	Err error
}

func (e SubmitResult) apply(state State) (State, Effect) {
	if state.Submit != SubmitSending {
		return state, nil
	}

	if e.Err != nil {
		state.Submit = SubmitError

		return state, nil
	}

	state.Submit = SubmitSuccess
	delay := state.ResetDelay
	if delay <= 0 {
		delay = SuccessResetDelay
	}

	return state, ResetSubmitAfter{Delay: delay, Generation: state.Generation}
}

// SubmitReset returns a successful submission back to idle. Resets issued for any other
// submission than the latest one are ignored.
type SubmitReset struct {
	Generation int
}

func (e SubmitReset) apply(state State) (State, Effect) {
	if state.Submit == SubmitSuccess && e.Generation == state.Generation {
		state.Submit = SubmitIdle
	}

	return state, nil
}
