/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tourney

import (
	"fmt"
	"math"
)

// Tiebreak identifies one of the supported FIDE-style tiebreak metrics.
type Tiebreak int

const (
	TiebreakBuchholzCut1 Tiebreak = iota
	TiebreakBuchholz
	TiebreakSonnebornBerger
	TiebreakProgressive
	TiebreakDirectEncounter
	TiebreakWins
	TiebreakWinsWithBlack
	TiebreakAvgRatingCut1
)

var tiebreakCodes = map[Tiebreak]string{
	TiebreakBuchholzCut1:    "buchholzCut1",
	TiebreakBuchholz:        "buchholz",
	TiebreakSonnebornBerger: "sonnebornBerger",
	TiebreakProgressive:     "progressive",
	TiebreakDirectEncounter: "directEncounter",
	TiebreakWins:            "wins",
	TiebreakWinsWithBlack:   "winsWithBlack",
	TiebreakAvgRatingCut1:   "avgRatingCut1",
}

func (tb Tiebreak) String() string {
	return tiebreakCodes[tb]
}

// DefaultTiebreakOrder returns the standard metric ordering applied
// when a tournament does not configure its own.
func DefaultTiebreakOrder() []Tiebreak {
	return []Tiebreak{
		TiebreakBuchholzCut1,
		TiebreakBuchholz,
		TiebreakSonnebornBerger,
		TiebreakProgressive,
		TiebreakDirectEncounter,
		TiebreakWins,
		TiebreakWinsWithBlack,
		TiebreakAvgRatingCut1,
	}
}

// Tiebreaks holds the scalar tiebreak values for one player. Direct
// encounter is pairwise-only and therefore computed inside the
// comparator rather than stored here.
type Tiebreaks struct {
	Buchholz        float64
	BuchholzCut1    float64
	SonnebornBerger float64
	Progressive     float64
	Wins            int
	WinsWithBlack   int
	AvgRatingCut1   float64
}

// CalculateTiebreaks computes all scalar tiebreak metrics for playerID
// from the tournament's completed rounds. It is a pure function of the
// snapshot: the same input always yields the same result.
func CalculateTiebreaks(t *Tournament, playerID string) (Tiebreaks, error) {
	if t.Player(playerID) == nil {
		return Tiebreaks{}, fmt.Errorf("player %v: %w", playerID,
			ErrUnknownPlayer)
	}

	var tb Tiebreaks
	var oppPoints []float64
	var oppRatings []int
	cumulative := 0.0

	for _, rnd := range t.CompletedRounds() {
		cumulative += RoundScore(t, rnd, playerID)
		// Progressive rewards early scores: the cumulative total after
		// every round contributes once.
		tb.Progressive += cumulative

		p, ok := rnd.PairingFor(playerID)
		if !ok {
			continue
		}
		if p.IsBye() {
			// byes have no opponent and never contribute to the
			// opponent-based metrics; a full-point bye still counts as
			// a win
			if p.Result == ResultWhiteWin {
				tb.Wins++
			}
			continue
		}

		opp := t.Player(p.Opponent(playerID))
		if opp == nil {
			continue
		}
		oppPoints = append(oppPoints, opp.Points)
		oppRatings = append(oppRatings, opp.Rating)
		tb.Buchholz += opp.Points

		playedWhite := p.WhitePlayerID == playerID
		switch p.Result {
		case ResultWhiteWin, ResultWhiteForfeitWin:
			if playedWhite {
				tb.Wins++
				tb.SonnebornBerger += opp.Points
			}
		case ResultBlackWin, ResultBlackForfeitWin:
			if !playedWhite {
				tb.Wins++
				tb.WinsWithBlack++
				tb.SonnebornBerger += opp.Points
			}
		case ResultDraw:
			tb.SonnebornBerger += 0.5 * opp.Points
		}
	}

	tb.BuchholzCut1 = tb.Buchholz
	if len(oppPoints) > 0 {
		low := oppPoints[0]
		for _, pts := range oppPoints[1:] {
			if pts < low {
				low = pts
			}
		}
		tb.BuchholzCut1 -= low
	}

	tb.AvgRatingCut1 = avgRatingCut1(oppRatings)

	return tb, nil
}

// avgRatingCut1 averages opponent ratings after dropping the single
// lowest. With one opponent the raw rating is used; with none, 0.
func avgRatingCut1(ratings []int) float64 {
	switch len(ratings) {
	case 0:
		return 0
	case 1:
		return float64(ratings[0])
	}

	sum, low := 0, ratings[0]
	for _, r := range ratings {
		sum += r
		if r < low {
			low = r
		}
	}
	return float64(sum-low) / float64(len(ratings)-1)
}

// DirectEncounter sums the head-to-head score between two players over
// all completed rounds: +1 per win by idA over idB, -1 per loss, 0 for
// draws.
func DirectEncounter(t *Tournament, idA, idB string) int {
	score := 0
	for _, rnd := range t.CompletedRounds() {
		for _, p := range rnd.Pairings {
			if p.IsBye() || !p.Has(idA) || !p.Has(idB) {
				continue
			}
			aIsWhite := p.WhitePlayerID == idA
			switch p.Result {
			case ResultWhiteWin, ResultWhiteForfeitWin:
				if aIsWhite {
					score++
				} else {
					score--
				}
			case ResultBlackWin, ResultBlackForfeitWin:
				if aIsWhite {
					score--
				} else {
					score++
				}
			}
		}
	}

	return score
}

// CompareTiebreaks walks the tournament's configured tiebreak order and
// returns the first non-zero comparison: positive when a ranks ahead of
// b, negative when behind, 0 when tied on every metric (shared rank).
func CompareTiebreaks(a, b Tiebreaks, t *Tournament, idA, idB string) int {
	order := t.TiebreakOrder
	if len(order) == 0 {
		order = DefaultTiebreakOrder()
	}

	for _, key := range order {
		var cmp int
		switch key {
		case TiebreakBuchholzCut1:
			cmp = compareFloat(a.BuchholzCut1, b.BuchholzCut1)
		case TiebreakBuchholz:
			cmp = compareFloat(a.Buchholz, b.Buchholz)
		case TiebreakSonnebornBerger:
			cmp = compareFloat(a.SonnebornBerger, b.SonnebornBerger)
		case TiebreakProgressive:
			cmp = compareFloat(a.Progressive, b.Progressive)
		case TiebreakDirectEncounter:
			cmp = DirectEncounter(t, idA, idB)
		case TiebreakWins:
			cmp = a.Wins - b.Wins
		case TiebreakWinsWithBlack:
			cmp = a.WinsWithBlack - b.WinsWithBlack
		case TiebreakAvgRatingCut1:
			cmp = compareFloat(a.AvgRatingCut1, b.AvgRatingCut1)
		}
		if cmp != 0 {
			return cmp
		}
	}

	return 0
}

func compareFloat(a, b float64) int {
	if math.Abs(a-b) < 1e-9 {
		return 0
	}
	if a > b {
		return 1
	}
	return -1
}
