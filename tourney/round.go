/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tourney

import (
	"fmt"
)

// OpenRound appends a new round holding the given pairings and
// snapshots every player's points and rating at round start. The
// snapshots drive float derivation, rating-delta display, and rollback
// on round deletion.
func OpenRound(t *Tournament, pairings []Pairing) *Round {
	rnd := Round{
		RoundNumber:          len(t.Rounds) + 1,
		Pairings:             pairings,
		PlayerPointsAtStart:  make(map[string]float64),
		PlayerRatingsAtStart: make(map[string]int),
	}
	for i := range t.Players {
		p := &t.Players[i]
		rnd.PlayerPointsAtStart[p.ID] = p.Points
		rnd.PlayerRatingsAtStart[p.ID] = p.Rating
	}
	t.Rounds = append(t.Rounds, rnd)

	return &t.Rounds[len(t.Rounds)-1]
}

// RecordResult sets the result of one pairing in the current round.
func RecordResult(t *Tournament, pairingID string, result Result) error {
	rnd := t.CurrentRound()
	if rnd == nil {
		return ErrNoRounds
	}
	if rnd.Completed {
		return fmt.Errorf("round %v: %w", rnd.RoundNumber, ErrRoundCompleted)
	}
	for i := range rnd.Pairings {
		if rnd.Pairings[i].ID != pairingID {
			continue
		}
		if rnd.Pairings[i].IsBye() {
			return fmt.Errorf("pairing %v is a bye: %w", pairingID,
				ErrUnknownPairing)
		}
		rnd.Pairings[i].Result = result
		return nil
	}

	return fmt.Errorf("pairing %v: %w", pairingID, ErrUnknownPairing)
}

// CompleteRound finalizes the current round: byes are resolved from the
// tournament bye value, points are awarded, and for rated tournaments
// ratings are adjusted. Every non-bye pairing must already carry a
// result. Completion is terminal.
func CompleteRound(t *Tournament) error {
	rnd := t.CurrentRound()
	if rnd == nil {
		return ErrNoRounds
	}
	if rnd.Completed {
		return fmt.Errorf("round %v: %w", rnd.RoundNumber, ErrRoundCompleted)
	}
	for _, p := range rnd.Pairings {
		if !p.IsBye() && p.Result == ResultNone {
			return fmt.Errorf("pairing %v has no result: %w", p.ID,
				ErrRoundIncomplete)
		}
	}

	for i := range rnd.Pairings {
		if rnd.Pairings[i].IsBye() {
			rnd.Pairings[i].Result = t.ByeResult()
		}
	}

	for _, p := range rnd.Pairings {
		w, b := PairingPoints(p, t.ByeValue)
		if white := t.Player(p.WhitePlayerID); white != nil {
			white.Points += w
		}
		if !p.IsBye() {
			if black := t.Player(p.BlackPlayerID); black != nil {
				black.Points += b
			}
		}
	}

	if t.Rated {
		applyRatingUpdates(t, rnd)
	}
	rnd.Completed = true

	return nil
}

// DeleteLastRound removes the most recent round and restores every
// player's points and rating from that round's at-start snapshots.
func DeleteLastRound(t *Tournament) error {
	rnd := t.CurrentRound()
	if rnd == nil {
		return ErrNoRounds
	}

	for i := range t.Players {
		p := &t.Players[i]
		if pts, ok := rnd.PlayerPointsAtStart[p.ID]; ok {
			p.Points = pts
		}
		if rating, ok := rnd.PlayerRatingsAtStart[p.ID]; ok {
			p.Rating = rating
		}
	}
	t.Rounds = t.Rounds[:len(t.Rounds)-1]

	return nil
}
