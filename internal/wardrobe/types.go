package wardrobe

import "fmt"

// Clothing is one of the four clothing layers, ordered from warmest to lightest.
// The order is the resolution order: ties go to the lower value.
type Clothing int

const (
	Coat Clothing = iota
	Jacket
	Sweater
	TShirt

	layerCount = 4
)

// Layers lists every clothing category in resolution order.
var Layers = [layerCount]Clothing{Coat, Jacket, Sweater, TShirt}

func (c Clothing) String() string {
	switch c {
	case Coat:
		return "coat"
	case Jacket:
		return "jacket"
	case Sweater:
		return "sweater"
	case TShirt:
		return "t-shirt"
	default:
		return fmt.Sprintf("clothing(%d)", int(c))
	}
}

func (c Clothing) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Footwear is one of the three footwear classes.
type Footwear int

const (
	Boots Footwear = iota
	Sneakers
	Slides
)

func (f Footwear) String() string {
	switch f {
	case Boots:
		return "boots"
	case Sneakers:
		return "sneakers"
	case Slides:
		return "slides"
	default:
		return fmt.Sprintf("footwear(%d)", int(f))
	}
}

func (f Footwear) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Label is a short human-facing weather description.
type Label string

const (
	LabelUnset        Label = ""
	LabelClearSkies   Label = "clear skies"
	LabelSunny        Label = "sunny"
	LabelMostlySunny  Label = "mostly sunny"
	LabelPartlyCloudy Label = "partly cloudy"
	LabelMostlyCloudy Label = "mostly cloudy"
	LabelCloudy       Label = "cloudy"
	LabelLightRain    Label = "light rain"
	LabelModerateRain Label = "moderate rain"
	LabelHeavyRain    Label = "heavy rain"
	LabelViolentRain  Label = "violent rain"
	LabelLightSnow    Label = "light snow"
	LabelHeavySnow    Label = "heavy snow"
)

// Flag is a tri-state boolean. The zero value is unset.
type Flag int8

const (
	FlagUnset Flag = iota
	FlagFalse
	FlagTrue
)

// FlagOf converts a bool into a set Flag.
func FlagOf(b bool) Flag {
	if b {
		return FlagTrue
	}
	return FlagFalse
}

// IsSet reports whether a scorer decided the flag.
func (f Flag) IsSet() bool { return f != FlagUnset }

// True reports whether the flag is set to true.
func (f Flag) True() bool { return f == FlagTrue }

func (f Flag) String() string {
	switch f {
	case FlagTrue:
		return "true"
	case FlagFalse:
		return "false"
	default:
		return "unset"
	}
}

// MarshalJSON encodes an unset flag as null.
func (f Flag) MarshalJSON() ([]byte, error) {
	switch f {
	case FlagTrue:
		return []byte("true"), nil
	case FlagFalse:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

// Recommendation is the final categorical output of one engine run.
type Recommendation struct {
	Clothing     Clothing `json:"clothing"`
	Footwear     Footwear `json:"footwear"`
	Umbrella     Flag     `json:"umbrella"`
	Label        Label    `json:"weather"`
	Sunscreen    Flag     `json:"sunscreen"`
	TemperatureC float64  `json:"temperatureC"`
}
