/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"github.com/mikeb26/chesspair/tourney"
)

// GeneratePairings produces the next round's pairings under the FIDE
// Dutch Swiss system. Bracket matching reproduces official Swiss
// semantics; when a bracket is structurally infeasible the whole pool
// is re-paired by the fallback tiers, so a complete pairing set is
// always returned. The tournament snapshot is never mutated.
func GeneratePairings(t *tourney.Tournament) ([]tourney.Pairing, error) {
	return GeneratePairingsWithLimit(t, DefaultDepthLimit)
}

// GeneratePairingsWithLimit is GeneratePairings with an explicit
// backtracking depth limit for the fallback tier.
func GeneratePairingsWithLimit(t *tourney.Tournament, depthLimit int) ([]tourney.Pairing, error) {
	if err := tourney.ValidateForPairing(t); err != nil {
		return nil, err
	}

	states := BuildPlayerStates(t)

	var byeState *PlayerState
	if len(states)%2 == 1 {
		idx := selectBye(states)
		byeState = states[idx]
		states = append(states[:idx:idx], states[idx+1:]...)
	}

	pairs, fallbackNeeded := matchBrackets(states)
	if fallbackNeeded {
		pairs = fallbackPair(states, depthLimit)
	}

	out := make([]tourney.Pairing, 0, len(pairs)+1)
	for _, pr := range pairs {
		out = append(out, tourney.NewPairing(pr[0].Player.ID, pr[1].Player.ID))
	}
	if byeState != nil {
		out = append(out, tourney.NewByePairing(byeState.Player.ID))
	}

	return out, nil
}
