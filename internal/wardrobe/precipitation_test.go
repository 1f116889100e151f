package wardrobe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeavySnowAlwaysBoots(t *testing.T) {
	for _, prob := range []float64{40.01, 55, 100} {
		for _, snow := range []float64{10, 12.5, 80} {
			for _, rain := range []float64{0, 5, 9.99} {
				in := PrecipitationInput{ProbabilityPct: prob, SnowfallMM: snow, RainMM: rain}
				prior := ScoreState{Footwear: 0.5}

				got := ClassifyPrecipitation(prior, in)
				assert.Equal(t, LabelHeavySnow, got.Label)
				assert.Equal(t, -1.0, got.Footwear)
			}
		}
	}
}

func TestLightSnow(t *testing.T) {
	got := ClassifyPrecipitation(ScoreState{Footwear: 0.5}, PrecipitationInput{
		ProbabilityPct: 70, SnowfallMM: 2, RainMM: 1, SnowDepthCM: 3,
	})
	assert.Equal(t, LabelLightSnow, got.Label)
	assert.InDelta(t, -0.2, got.Footwear, 1e-9)
}

func TestLightSnowOnDeepSnow(t *testing.T) {
	got := ClassifyPrecipitation(ScoreState{Footwear: 0.5}, PrecipitationInput{
		ProbabilityPct: 70, SnowfallMM: 2, RainMM: 1, SnowDepthCM: 3.5,
	})
	assert.Equal(t, LabelLightSnow, got.Label)
	assert.InDelta(t, -1.7, got.Footwear, 1e-9)
}

func TestSnowBranchLeavesUmbrellaAndLayers(t *testing.T) {
	prior := ScoreState{Layers: layers(1, 2, 3, 4)}
	got := ClassifyPrecipitation(prior, PrecipitationInput{ProbabilityPct: 90, SnowfallMM: 20})

	assert.Equal(t, FlagUnset, got.Umbrella)
	assert.Equal(t, prior.Layers, got.Layers)
}

func TestSnowNeedsMoreSnowThanRain(t *testing.T) {
	got := ClassifyPrecipitation(ScoreState{}, PrecipitationInput{ProbabilityPct: 90, SnowfallMM: 3, RainMM: 3})
	assert.Equal(t, LabelModerateRain, got.Label)
	assert.Equal(t, FlagTrue, got.Umbrella)
}

func TestSnowNeedsProbabilityAboveThreshold(t *testing.T) {
	got := ClassifyPrecipitation(ScoreState{}, PrecipitationInput{ProbabilityPct: 40, SnowfallMM: 15})
	assert.Equal(t, LabelLightRain, got.Label)
	assert.Equal(t, FlagTrue, got.Umbrella)
	assert.Equal(t, layers(3, 4, 0, 0), got.Layers)
}

func TestDryCloudLabels(t *testing.T) {
	cases := []struct {
		cover float64
		want  Label
	}{
		{100, LabelCloudy},
		{88, LabelCloudy},
		{87.9, LabelMostlyCloudy},
		{70, LabelMostlyCloudy},
		{51, LabelPartlyCloudy},
		{50.9, LabelMostlySunny},
		{26, LabelMostlySunny},
		{6, LabelSunny},
		{5.9, LabelClearSkies},
		{0, LabelClearSkies},
	}
	for _, tc := range cases {
		got := ClassifyPrecipitation(ScoreState{}, PrecipitationInput{ProbabilityPct: 39.9, CloudCoverPct: tc.cover})
		assert.Equal(t, tc.want, got.Label, "cover %v", tc.cover)
		assert.Equal(t, FlagFalse, got.Umbrella)
		assert.Equal(t, layers(0, 0, 0, 0), got.Layers, "dry weather adds no layers")
	}
}

func TestWetRainLabels(t *testing.T) {
	cases := []struct {
		rain     float64
		want     Label
		footwear float64
	}{
		{0, LabelLightRain, 0.5},
		{2.49, LabelLightRain, 0.5},
		{2.5, LabelModerateRain, 0.5},
		{7.59, LabelModerateRain, 0.5},
		{7.6, LabelHeavyRain, -1},
		{49.9, LabelHeavyRain, -1},
		{50, LabelViolentRain, -1},
		{120, LabelViolentRain, -1},
	}
	for _, tc := range cases {
		got := ClassifyPrecipitation(ScoreState{Footwear: 0.5}, PrecipitationInput{ProbabilityPct: 40, RainMM: tc.rain})
		assert.Equal(t, tc.want, got.Label, "rain %v", tc.rain)
		assert.Equal(t, tc.want, RainLabel(tc.rain))
		assert.Equal(t, FlagTrue, got.Umbrella)
		assert.Equal(t, tc.footwear, got.Footwear, "rain %v", tc.rain)
		assert.Equal(t, layers(3, 4, 0, 0), got.Layers)
	}
}
