// Package wheel lays out the card strip for the question-wheel
// animation. The random pick is server-side; the strip only dresses up
// a choice that has already been made.
package wheel

// Animation constants mirrored to clients in the spin response.
const (
	StripSize = 25

	// ChosenIndex places the winning card 3rd from the end of the strip.
	ChosenIndex = StripSize - 3

	SpinDurationMS = 2800
	RevealDelayMS  = 400
	Easing         = "cubic-bezier(0.15, 0.85, 0.25, 1)"
)

// Card is one face on the strip.
type Card struct {
	ID      uint   `json:"id"`
	Subject string `json:"subject"`
	Topic   string `json:"topic,omitempty"`
}

// BuildStrip pads/repeats the decoys to a fixed-size strip and forces
// the chosen card to ChosenIndex. With no decoys the strip repeats the
// chosen card itself.
func BuildStrip(chosen Card, decoys []Card) []Card {
	pool := decoys
	if len(pool) == 0 {
		pool = []Card{chosen}
	}

	strip := make([]Card, StripSize)
	for i := range strip {
		strip[i] = pool[i%len(pool)]
	}
	strip[ChosenIndex] = chosen
	return strip
}
