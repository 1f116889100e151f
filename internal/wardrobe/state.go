package wardrobe

import "math"

// ScoreState is the partial result threaded through the scorers.
// It is a plain value: Apply and the With* methods return a changed copy
// and never modify the receiver.
type ScoreState struct {
	Layers       [layerCount]float64
	Footwear     float64
	Umbrella     Flag
	Label        Label
	Sunscreen    Flag
	TemperatureC float64
}

// Layer returns the accumulated score of c.
func (s ScoreState) Layer(c Clothing) float64 {
	return s.Layers[c]
}

// Apply returns a copy of s with the effects applied in order.
func (s ScoreState) Apply(effects ...Effect) ScoreState {
	for _, e := range effects {
		if e.Field == FieldFootwear {
			s.Footwear = e.apply(s.Footwear)
			continue
		}
		s.Layers[e.Field] = e.apply(s.Layers[e.Field])
	}
	return s
}

func (s ScoreState) WithLabel(l Label) ScoreState {
	s.Label = l
	return s
}

func (s ScoreState) WithUmbrella(f Flag) ScoreState {
	s.Umbrella = f
	return s
}

func (s ScoreState) WithSunscreen(f Flag) ScoreState {
	s.Sunscreen = f
	return s
}

func (s ScoreState) WithTemperature(c float64) ScoreState {
	s.TemperatureC = roundTenth(c)
	return s
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
