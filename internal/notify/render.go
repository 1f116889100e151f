package notify

import (
	"fmt"
	"strings"

	"github.com/i474232898/clothing-suggestor/internal/wardrobe"
)

// Render formats a recommendation as the morning text message.
func Render(rec wardrobe.Recommendation) string {
	label := string(rec.Label)
	if label == "" {
		label = "unknown"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Good morning! Today's weather is %s, around %.1f°C. ", label, rec.TemperatureC)
	fmt.Fprintf(&b, "You should wear a %s with %s.\n", rec.Clothing, rec.Footwear)
	fmt.Fprintf(&b, "Bring an umbrella: %s\n", yesNo(rec.Umbrella))
	fmt.Fprintf(&b, "Apply sunscreen: %s", yesNo(rec.Sunscreen))
	return b.String()
}

func yesNo(f wardrobe.Flag) string {
	switch {
	case !f.IsSet():
		return "n/a"
	case f.True():
		return "yes"
	default:
		return "no"
	}
}
