/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tourney

import (
	"errors"
	"fmt"
)

// MaxTitles caps how many titles a player's pairing form carries.
const MaxTitles = 3

var (
	ErrTooFewPlayers      = errors.New("at least 2 active players required")
	ErrTooManyTitles      = errors.New("a player may hold at most 3 titles")
	ErrRoundIncomplete    = errors.New("previous round is not yet complete")
	ErrRoundCompleted     = errors.New("round is already complete")
	ErrInvalidByeValue    = errors.New("bye value must be 0, 0.5, or 1")
	ErrInvalidTotalRounds = errors.New("total rounds is below rounds already played")
	ErrTournamentOver     = errors.New("all rounds have been played")
	ErrRoundLimit         = errors.New("round count exceeds the schedule limit for this player count")
	ErrUnknownPlayer      = errors.New("no such player in tournament")
	ErrUnknownPairing     = errors.New("no such pairing in round")
	ErrNoRounds           = errors.New("tournament has no rounds")
)

// Validate rejects invalid configuration before any pairing or scoring
// operation mutates state.
func Validate(t *Tournament) error {
	if t.ByeValue != 0 && t.ByeValue != 0.5 && t.ByeValue != 1.0 {
		return fmt.Errorf("tournament %v: %w", t.ID, ErrInvalidByeValue)
	}
	if t.TotalRounds < len(t.Rounds) {
		return fmt.Errorf("tournament %v has %v rounds: %w", t.ID,
			len(t.Rounds), ErrInvalidTotalRounds)
	}
	for i := range t.Players {
		if len(t.Players[i].Titles) > MaxTitles {
			return fmt.Errorf("player %v has %v titles: %w", t.Players[i].ID,
				len(t.Players[i].Titles), ErrTooManyTitles)
		}
	}

	return nil
}

// ValidateForPairing performs the precondition checks shared by both
// pairing systems: valid configuration, at least two active players,
// room for another round, and no open round in progress.
func ValidateForPairing(t *Tournament) error {
	if err := Validate(t); err != nil {
		return err
	}
	if len(t.ActivePlayers()) < 2 {
		return fmt.Errorf("tournament %v: %w", t.ID, ErrTooFewPlayers)
	}
	if len(t.Rounds) >= t.TotalRounds {
		return fmt.Errorf("tournament %v: %w", t.ID, ErrTournamentOver)
	}
	if cur := t.CurrentRound(); cur != nil && !cur.Completed {
		return fmt.Errorf("round %v: %w", cur.RoundNumber, ErrRoundIncomplete)
	}

	return nil
}
