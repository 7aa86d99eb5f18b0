package core

import "math/rand"

// Scramble turns every tile without a role flag by a random number of
// quarter turns. The same seed always yields the same rotations.
// Returns the number of tiles whose rotation changed.
func Scramble(b *Board, rng *rand.Rand) int {
	changed := 0
	for _, t := range b.tiles {
		if t.IsStart || t.IsEnd {
			continue
		}
		turns := rng.Intn(4)
		if turns == 0 {
			continue
		}
		before := t.Open()
		t.SetRotation(t.rotation + turns)
		if t.Open() != before {
			changed++
		}
	}
	return changed
}
