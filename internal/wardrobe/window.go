package wardrobe

import "fmt"

// HoursPerDay is the upper bound of an averaging window.
const HoursPerDay = 24

// Window is a half-open hour-of-day range [Start, End).
type Window struct {
	start int
	end   int
}

// NewWindow validates the bounds and returns an immutable Window.
func NewWindow(start, end int) (Window, error) {
	if start < 0 || end > HoursPerDay || start >= end {
		return Window{}, fmt.Errorf("%w: [%d,%d)", ErrInvalidWindow, start, end)
	}
	return Window{start: start, end: end}, nil
}

// DefaultWindow covers the working day, 10:00 to 18:00.
func DefaultWindow() Window {
	return Window{start: 10, end: 18}
}

func (w Window) Start() int { return w.start }
func (w Window) End() int   { return w.end }

// Len is the divisor used by Average.
func (w Window) Len() int { return w.end - w.start }

func (w Window) String() string {
	return fmt.Sprintf("[%02d:00,%02d:00)", w.start, w.end)
}

// Average returns the arithmetic mean of series[start:end].
// The divisor is always the window length; a series shorter than End is an error.
// Values are taken as-is, NaN included.
func Average(series []float64, w Window) (float64, error) {
	if w.Len() <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidWindow, w)
	}
	if len(series) < w.end {
		return 0, fmt.Errorf("%w: window %s needs %d entries, series has %d",
			ErrIndexOutOfRange, w, w.end, len(series))
	}

	var total float64
	for i := w.start; i < w.end; i++ {
		total += series[i]
	}
	return total / float64(w.Len()), nil
}
