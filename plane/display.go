package plane

// Display keeps the last successfully rendered frame. A failed redraw leaves it untouched.
type Display struct {
	renderer *Renderer
	frame    *Frame
}

func NewDisplay(renderer *Renderer) *Display {
	return &Display{renderer: renderer}
}

// Redraw renders raw and swaps the frame in on success. The error is returned for
// callers that want it; it has already been logged by the renderer.
func (d *Display) Redraw(raw RawInputs) error {
	frame, err := d.renderer.Render(raw)
	if err != nil {
		return err
	}
	d.frame = frame
	return nil
}

// Frame is nil until the first successful redraw.
func (d *Display) Frame() *Frame {
	return d.frame
}

// Text is the explanation of the current frame, or "" before the first successful redraw.
func (d *Display) Text() string {
	if d.frame == nil {
		return ""
	}
	return d.frame.Text
}

func (d *Display) Renderer() *Renderer {
	return d.renderer
}
