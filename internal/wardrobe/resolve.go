package wardrobe

const (
	slidesAbove = 0.8
	bootsBelow  = -0.4
)

// LayerScore pairs a clothing category with its accumulated score.
type LayerScore struct {
	Clothing Clothing
	Score    float64
}

// LayerScores lists the state's layer vector in resolution order.
func (s ScoreState) LayerScores() []LayerScore {
	out := make([]LayerScore, 0, len(Layers))
	for _, c := range Layers {
		out = append(out, LayerScore{Clothing: c, Score: s.Layer(c)})
	}
	return out
}

// ResolveClothing returns the highest-scoring category.
// Only a strictly greater score replaces the current pick, so ties keep the
// earlier (warmer) category.
func ResolveClothing(scores []LayerScore) Clothing {
	if len(scores) == 0 {
		return Coat
	}
	best := scores[0]
	for _, ls := range scores[1:] {
		if ls.Score > best.Score {
			best = ls
		}
	}
	return best.Clothing
}

// ResolveFootwear maps the footwear scalar onto a class.
func ResolveFootwear(score float64) Footwear {
	switch {
	case score > slidesAbove:
		return Slides
	case score < bootsBelow:
		return Boots
	default:
		return Sneakers
	}
}

// Resolve turns a finished ScoreState into a Recommendation.
func Resolve(s ScoreState) Recommendation {
	return Recommendation{
		Clothing:     ResolveClothing(s.LayerScores()),
		Footwear:     ResolveFootwear(s.Footwear),
		Umbrella:     s.Umbrella,
		Label:        s.Label,
		Sunscreen:    s.Sunscreen,
		TemperatureC: s.TemperatureC,
	}
}
