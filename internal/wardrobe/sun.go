package wardrobe

// ScoreSun sets the sunscreen flag from the day's maximum UV index and
// lightens the t-shirt score. The rules run top-down without short-circuit,
// so a low index matches both of the first two rows.
func ScoreSun(s ScoreState, uvMax float64) ScoreState {
	if uvMax < 3 {
		s = s.WithSunscreen(FlagFalse)
	}
	if uvMax < 6 {
		return s.WithSunscreen(FlagFalse).Apply(Add(FieldTShirt, -2))
	}
	return s.WithSunscreen(FlagTrue).Apply(Add(FieldTShirt, -6))
}
