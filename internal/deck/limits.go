package deck

// Limits are the construction caps applied to each deck
type Limits struct {
	MainMax  int
	ExtraMax int
	CopyMax  int
}

// DefaultLimits are the game's rules: 60 main, 15 extra, 3 copies per card.
var DefaultLimits = Limits{MainMax: 60, ExtraMax: 15, CopyMax: 3}

// Max returns the size cap for the given deck
func (l Limits) Max(m Mode) int {
	if m == ModeExtra {
		return l.ExtraMax
	}
	return l.MainMax
}
