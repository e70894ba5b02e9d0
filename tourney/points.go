/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tourney

// PairingPoints returns the points awarded to the white and black sides
// of a finalized pairing. For a bye pairing the white share is the
// tournament bye value and the black share is always 0.
func PairingPoints(p Pairing, byeValue float64) (white, black float64) {
	if p.IsBye() {
		if p.Result == ResultNone {
			return 0, 0
		}
		return byeValue, 0
	}

	switch p.Result {
	case ResultWhiteWin, ResultWhiteForfeitWin:
		return 1, 0
	case ResultBlackWin, ResultBlackForfeitWin:
		return 0, 1
	case ResultDraw:
		return 0.5, 0.5
	default:
		// unset or double forfeit
		return 0, 0
	}
}

// RecomputePoints rebuilds every player's point total from the full
// completed round history. The result must always agree with the stored
// Player.Points values; Standings and round deletion rely on that.
func RecomputePoints(t *Tournament) map[string]float64 {
	points := make(map[string]float64)
	for i := range t.Players {
		points[t.Players[i].ID] = 0
	}

	for _, rnd := range t.CompletedRounds() {
		for _, p := range rnd.Pairings {
			w, b := PairingPoints(p, t.ByeValue)
			points[p.WhitePlayerID] += w
			if !p.IsBye() {
				points[p.BlackPlayerID] += b
			}
		}
	}

	return points
}

// RoundScore returns the points playerID earned in the given round, or
// 0 if the player did not play in it.
func RoundScore(t *Tournament, rnd *Round, playerID string) float64 {
	p, ok := rnd.PairingFor(playerID)
	if !ok {
		return 0
	}
	w, b := PairingPoints(p, t.ByeValue)
	if p.WhitePlayerID == playerID {
		return w
	}
	return b
}
