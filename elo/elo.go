/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package elo

import (
	"math"
)

// FIDE Elo rating calculator based on the FIDE rating regulations
// (handbook B.02.8). K is selected from the player's own pre-game
// rating; the development-based K for players with fewer than 30 games
// is not modeled because the engine does not track lifetime game
// counts.

// KFactor returns the FIDE K coefficient for a player's pre-game
// rating: 40 below 2300, 20 below 2400, 10 otherwise.
func KFactor(rating int) int {
	if rating < 2300 {
		return 40
	}
	if rating < 2400 {
		return 20
	}
	return 10
}

// ExpectedScore computes the expected game score for a player:
// 1/(1+10^((opp-my)/400)).
func ExpectedScore(rating, oppRating int) float64 {
	exp := math.Pow(10, float64(oppRating-rating)/400.0)
	return 1.0 / (exp + 1.0)
}

// Delta returns the rounded rating change for one side of a game:
// round(K * (score - expected)). score is 1, 0.5, or 0.
func Delta(rating, oppRating int, score float64) int {
	k := float64(KFactor(rating))
	return int(math.Round(k * (score - ExpectedScore(rating, oppRating))))
}
