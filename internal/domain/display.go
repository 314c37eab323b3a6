package domain

// DisplayOptions controls how a forecast report is rendered.
type DisplayOptions struct {
	Celsius bool
	Hours   int
	Color   bool
}

// EffectiveHours returns how many periods will actually be rendered:
// min(Hours, MaxHours, available), never negative.
func (o DisplayOptions) EffectiveHours(available int) int {
	n := min(o.Hours, MaxHours, available)
	if n < 0 {
		return 0
	}
	return n
}
