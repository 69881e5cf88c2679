package anim

// Event is one input delivered by the driver: Tick, Resize or Key.
type Event interface {
	event()
}

// Tick advances the animation by one step.
type Tick struct{}

// Resize reports the new window size in pixels.
type Resize struct {
	Width, Height int
}

// Key carries a mapped keyboard command.
type Key struct {
	Command Command
}

func (Tick) event()   {}
func (Resize) event() {}
func (Key) event()    {}

// Result describes the effect of a dispatched event. Frame is only set for
// Tick events.
type Result struct {
	Frame   *Frame
	Resized bool
	Quit    bool
}

// Dispatch applies ev to the context. Events take effect immediately, so a
// resize dispatched before a tick is seen by that tick's collision check.
func (c *Context) Dispatch(ev Event) Result {
	switch ev := ev.(type) {
	case Tick:
		f := c.Step()
		return Result{Frame: &f}
	case Resize:
		return Result{Resized: c.Resize(ev.Width, ev.Height)}
	case Key:
		return Result{Quit: c.Apply(ev.Command)}
	}
	return Result{}
}
