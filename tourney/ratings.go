/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tourney

import (
	"github.com/mikeb26/chesspair/elo"
)

// RatingChange describes one side's rating adjustment from a single
// pairing.
type RatingChange struct {
	PlayerID  string
	OldRating int
	NewRating int
	Delta     int
}

// PairingRatingUpdate carries both sides of a rated pairing's
// adjustment.
type PairingRatingUpdate struct {
	White RatingChange
	Black RatingChange
}

// PairingRatingUpdates computes the Elo adjustment for each side of a
// pairing. It returns nil for unplayed pairings, byes, and double
// forfeits, none of which move ratings.
func PairingRatingUpdates(whiteRating, blackRating int, whiteID, blackID string,
	result Result) *PairingRatingUpdate {

	if blackID == "" {
		return nil
	}

	var whiteScore, blackScore float64
	switch result {
	case ResultWhiteWin, ResultWhiteForfeitWin:
		whiteScore, blackScore = 1, 0
	case ResultBlackWin, ResultBlackForfeitWin:
		whiteScore, blackScore = 0, 1
	case ResultDraw:
		whiteScore, blackScore = 0.5, 0.5
	default:
		return nil
	}

	wDelta := elo.Delta(whiteRating, blackRating, whiteScore)
	bDelta := elo.Delta(blackRating, whiteRating, blackScore)

	return &PairingRatingUpdate{
		White: RatingChange{
			PlayerID:  whiteID,
			OldRating: whiteRating,
			NewRating: whiteRating + wDelta,
			Delta:     wDelta,
		},
		Black: RatingChange{
			PlayerID:  blackID,
			OldRating: blackRating,
			NewRating: blackRating + bDelta,
			Delta:     bDelta,
		},
	}
}

// applyRatingUpdates adjusts player ratings for every pairing of a
// just-completed rated round. InitialRating is snapshotted the first
// time a player's rating moves so that later rollback has a floor to
// report against.
func applyRatingUpdates(t *Tournament, rnd *Round) {
	for _, p := range rnd.Pairings {
		if p.IsBye() {
			continue
		}
		white := t.Player(p.WhitePlayerID)
		black := t.Player(p.BlackPlayerID)
		if white == nil || black == nil {
			continue
		}
		upd := PairingRatingUpdates(white.Rating, black.Rating,
			white.ID, black.ID, p.Result)
		if upd == nil {
			continue
		}
		if white.InitialRating == 0 {
			white.InitialRating = white.Rating
		}
		if black.InitialRating == 0 {
			black.InitialRating = black.Rating
		}
		white.Rating = upd.White.NewRating
		black.Rating = upd.Black.NewRating
	}
}
