/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"fmt"
	"math"
	"testing"

	"github.com/mikeb26/chesspair/tourney"
)

func simTournament(players, totalRounds int) *tourney.Tournament {
	t := &tourney.Tournament{
		ID:          "sim",
		System:      tourney.SystemSwiss,
		ByeValue:    1.0,
		TotalRounds: totalRounds,
	}
	for i := 0; i < players; i++ {
		t.Players = append(t.Players, tourney.Player{
			ID:     fmt.Sprintf("p%d", i+1),
			Name:   fmt.Sprintf("p%d", i+1),
			Rating: 2100 - 50*i,
			Active: true,
		})
	}
	return t
}

// playRound pairs, opens, and completes one round with the given result
// rule, failing the test on any generation error.
func playRound(t *testing.T, tt *tourney.Tournament,
	result func(white, black *tourney.Player) tourney.Result) {

	t.Helper()
	pairings, err := GeneratePairings(tt)
	if err != nil {
		t.Fatalf("round %d pairing error: %v", len(tt.Rounds)+1, err)
	}
	tourney.OpenRound(tt, pairings)
	for _, p := range pairings {
		if p.IsBye() {
			continue
		}
		res := result(tt.Player(p.WhitePlayerID), tt.Player(p.BlackPlayerID))
		if err := tourney.RecordResult(tt, p.ID, res); err != nil {
			t.Fatalf("recording result: %v", err)
		}
	}
	if err := tourney.CompleteRound(tt); err != nil {
		t.Fatalf("completing round: %v", err)
	}
}

func higherRatedWins(white, black *tourney.Player) tourney.Result {
	if white.Rating >= black.Rating {
		return tourney.ResultWhiteWin
	}
	return tourney.ResultBlackWin
}

func TestGeneratePairingsPreconditions(t *testing.T) {
	tt := simTournament(1, 5)
	if _, err := GeneratePairings(tt); err == nil {
		t.Error("single player tournament paired")
	}

	tt = simTournament(4, 3)
	pairings, err := GeneratePairings(tt)
	if err != nil {
		t.Fatalf("pairing error: %v", err)
	}
	tourney.OpenRound(tt, pairings)
	if _, err := GeneratePairings(tt); err == nil {
		t.Error("paired on top of an incomplete round")
	}

	tt = simTournament(4, 1)
	playRound(t, tt, higherRatedWins)
	if _, err := GeneratePairings(tt); err == nil {
		t.Error("paired past the final round")
	}
}

func TestFirstRoundTopVsBottomHalf(t *testing.T) {
	tt := simTournament(8, 7)
	pairings, err := GeneratePairings(tt)
	if err != nil {
		t.Fatalf("pairing error: %v", err)
	}
	if len(pairings) != 4 {
		t.Fatalf("pairing count = %d; want 4", len(pairings))
	}
	// round 1 is a single bracket: seed k faces seed k+4
	wantOpp := map[string]string{
		"p1": "p5", "p2": "p6", "p3": "p7", "p4": "p8",
	}
	for _, p := range pairings {
		w, b := p.WhitePlayerID, p.BlackPlayerID
		if wantOpp[w] != b && wantOpp[b] != w {
			t.Errorf("unexpected round 1 pairing %v-%v", w, b)
		}
	}
}

func TestSwissSimulationInvariants(t *testing.T) {
	tt := simTournament(8, 5)

	for rnd := 0; rnd < 5; rnd++ {
		playRound(t, tt, higherRatedWins)
	}

	// each player plays exactly once per round
	for _, rnd := range tt.CompletedRounds() {
		seen := make(map[string]int)
		for _, p := range rnd.Pairings {
			seen[p.WhitePlayerID]++
			if !p.IsBye() {
				seen[p.BlackPlayerID]++
			}
		}
		if len(seen) != 8 {
			t.Errorf("round %d covers %d players; want 8", rnd.RoundNumber,
				len(seen))
		}
		for id, n := range seen {
			if n != 1 {
				t.Errorf("round %d pairs %v %d times", rnd.RoundNumber, id, n)
			}
		}
	}

	// no two players meet twice
	met := make(map[string]int)
	for _, rnd := range tt.CompletedRounds() {
		for _, p := range rnd.Pairings {
			if p.IsBye() {
				continue
			}
			a, b := p.WhitePlayerID, p.BlackPlayerID
			if a > b {
				a, b = b, a
			}
			met[a+"/"+b]++
		}
	}
	for pair, n := range met {
		if n > 1 {
			t.Errorf("pair %v met %d times", pair, n)
		}
	}

	// color difference stays bounded
	for _, ps := range BuildPlayerStates(tt) {
		if ps.ColorDiff > 2 || ps.ColorDiff < -2 {
			t.Errorf("%v color difference = %d", ps.Player.ID, ps.ColorDiff)
		}
	}

	// stored points agree with a full recomputation
	recomputed := tourney.RecomputePoints(tt)
	for i := range tt.Players {
		p := &tt.Players[i]
		if math.Abs(recomputed[p.ID]-p.Points) > 1e-9 {
			t.Errorf("%v stored %v points; recomputed %v", p.ID, p.Points,
				recomputed[p.ID])
		}
	}
}

func closeRatingsDraw(white, black *tourney.Player) tourney.Result {
	diff := white.Rating - black.Rating
	if diff < 0 {
		diff = -diff
	}
	if diff <= 100 {
		return tourney.ResultDraw
	}
	return higherRatedWins(white, black)
}

func TestSwissOddFieldColorBound(t *testing.T) {
	tt := simTournament(11, 5)

	for rnd := 0; rnd < 5; rnd++ {
		playRound(t, tt, closeRatingsDraw)
	}

	// the color difference bound holds for bye recipients too: a bye
	// round must never push a player past two extra whites
	for _, ps := range BuildPlayerStates(tt) {
		if ps.ColorDiff > 2 || ps.ColorDiff < -2 {
			t.Errorf("%v color difference = %d", ps.Player.ID, ps.ColorDiff)
		}
	}

	byes := make(map[string]int)
	for _, rnd := range tt.CompletedRounds() {
		for _, p := range rnd.Pairings {
			if p.IsBye() {
				byes[p.WhitePlayerID]++
			}
		}
	}
	for id, n := range byes {
		if n > 1 {
			t.Errorf("%v received %d byes", id, n)
		}
	}
}

func TestByeFairness(t *testing.T) {
	tt := simTournament(9, 7)

	for rnd := 0; rnd < 7; rnd++ {
		playRound(t, tt, higherRatedWins)
	}

	byes := make(map[string]int)
	for _, rnd := range tt.CompletedRounds() {
		byeCount := 0
		for _, p := range rnd.Pairings {
			if p.IsBye() {
				byes[p.WhitePlayerID]++
				byeCount++
			}
		}
		if byeCount != 1 {
			t.Errorf("round %d has %d byes; want 1", rnd.RoundNumber, byeCount)
		}
	}
	// 7 byes across 9 players: nobody sits twice while others wait
	for id, n := range byes {
		if n > 1 {
			t.Errorf("%v received %d byes", id, n)
		}
	}
}

func TestByeSelection(t *testing.T) {
	states := []*PlayerState{
		pooledState("a", 2000, 1, 2),
		pooledState("b", 1900, 2, 1),
		pooledState("c", 1800, 3, 1),
	}
	// lowest score, lowest rank sits
	if idx := selectBye(states); idx != 2 {
		t.Fatalf("bye index = %d; want 2", idx)
	}
	// a prior bye disqualifies while fresh candidates remain
	states[2].HasBye = true
	if idx := selectBye(states); idx != 1 {
		t.Fatalf("bye index = %d; want 1", idx)
	}
}

func TestGeneratePairingsOddPoolGetsBye(t *testing.T) {
	tt := simTournament(5, 5)
	pairings, err := GeneratePairings(tt)
	if err != nil {
		t.Fatalf("pairing error: %v", err)
	}
	if len(pairings) != 3 {
		t.Fatalf("pairing count = %d; want 3", len(pairings))
	}
	last := pairings[len(pairings)-1]
	if !last.IsBye() {
		t.Fatal("odd pool produced no bye")
	}
	if last.Result != tourney.ResultNone {
		t.Fatal("bye result resolved before round completion")
	}
	// fresh tournament: lowest rated player sits
	if last.WhitePlayerID != "p5" {
		t.Errorf("bye went to %v; want p5", last.WhitePlayerID)
	}
}
