package wardrobe

// PrecipitationInput holds the averaged values the classifier decides on.
type PrecipitationInput struct {
	ProbabilityPct float64 // precipitation probability, %
	RainMM         float64 // rain plus showers, mm
	SnowfallMM     float64
	SnowDepthCM    float64
	CloudCoverPct  float64
}

const (
	precipitationThresholdPct = 40
	deepSnowCM                = 3
	heavySnowMM               = 10
)

type cloudBand struct {
	min   float64
	label Label
}

// cloudBands is ordered from overcast down; anything below the last row is clear skies.
var cloudBands = []cloudBand{
	{88, LabelCloudy},
	{70, LabelMostlyCloudy},
	{51, LabelPartlyCloudy},
	{26, LabelMostlySunny},
	{6, LabelSunny},
}

type rainBand struct {
	below   float64
	label   Label
	effects []Effect
}

// rainBands is ordered by intensity; the last row catches everything else.
var rainBands = []rainBand{
	{below: 2.5, label: LabelLightRain},
	{below: 7.6, label: LabelModerateRain},
	{below: 50, label: LabelHeavyRain, effects: []Effect{Set(FieldFootwear, -1)}},
}

var violentRain = rainBand{label: LabelViolentRain, effects: []Effect{Set(FieldFootwear, -1)}}

// wetLayers is added to the layer vector whenever rain is expected.
var wetLayers = []Effect{Add(FieldCoat, 3), Add(FieldJacket, 4)}

// IsSnow reports whether the snow branch takes precedence.
func (in PrecipitationInput) IsSnow() bool {
	return in.ProbabilityPct > precipitationThresholdPct && in.SnowfallMM > in.RainMM
}

// ClassifyPrecipitation applies the first matching branch: snow, dry or wet.
// The snow branch leaves umbrella and layers untouched.
func ClassifyPrecipitation(s ScoreState, in PrecipitationInput) ScoreState {
	switch {
	case in.IsSnow():
		return classifySnow(s, in)
	case in.ProbabilityPct < precipitationThresholdPct:
		return s.WithUmbrella(FlagFalse).WithLabel(CloudLabel(in.CloudCoverPct))
	default:
		band := rainBandFor(in.RainMM)
		return s.WithUmbrella(FlagTrue).
			WithLabel(band.label).
			Apply(band.effects...).
			Apply(wetLayers...)
	}
}

func classifySnow(s ScoreState, in PrecipitationInput) ScoreState {
	if in.SnowDepthCM > deepSnowCM {
		s = s.Apply(Set(FieldFootwear, -1))
	}
	if in.SnowfallMM < heavySnowMM {
		return s.WithLabel(LabelLightSnow).Apply(Add(FieldFootwear, -0.7))
	}
	return s.WithLabel(LabelHeavySnow).Apply(Set(FieldFootwear, -1))
}

// CloudLabel maps cloud cover to a dry-weather label.
func CloudLabel(coverPct float64) Label {
	for _, b := range cloudBands {
		if coverPct >= b.min {
			return b.label
		}
	}
	return LabelClearSkies
}

// RainLabel maps rain intensity to a wet-weather label.
func RainLabel(mm float64) Label {
	return rainBandFor(mm).label
}

func rainBandFor(mm float64) rainBand {
	for _, b := range rainBands {
		if mm < b.below {
			return b
		}
	}
	return violentRain
}
