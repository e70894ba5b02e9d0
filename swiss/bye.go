/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// selectBye picks which player sits out an odd round: players without a
// prior bye outrank those with one, then fewest points, then the lowest
// ranked (highest pairing number). Returns the index into states.
func selectBye(states []*PlayerState) int {
	best := 0
	for i := 1; i < len(states); i++ {
		if byeBefore(states[i], states[best]) {
			best = i
		}
	}
	return best
}

func byeBefore(a, b *PlayerState) bool {
	if a.HasBye != b.HasBye {
		return !a.HasBye
	}
	if a.Player.Points != b.Player.Points {
		return a.Player.Points < b.Player.Points
	}
	return a.PairingNumber > b.PairingNumber
}
