/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package roundrobin

import (
	"fmt"
	"sort"

	"github.com/mikeb26/chesspair/tourney"
)

// MaxCycles caps how many full round-robin cycles a schedule may span;
// a double round robin is the most the scheduler lays out.
const MaxCycles = 2

// CycleLength returns the number of rounds in one full cycle for the
// given active player count (count padded to even by the phantom).
func CycleLength(activePlayers int) int {
	n := activePlayers
	if n%2 == 1 {
		n++
	}
	return n - 1
}

// GeneratePairings produces one round of the circle-method round-robin
// schedule. A negative roundIndex selects the next round,
// len(t.Rounds). The schedule is fully determined by the active player
// set, so any round of the cycle can be generated independently.
func GeneratePairings(t *tourney.Tournament, roundIndex int) ([]tourney.Pairing, error) {
	if err := tourney.Validate(t); err != nil {
		return nil, err
	}
	active := t.ActivePlayers()
	if len(active) < 2 {
		return nil, fmt.Errorf("tournament %v: %w", t.ID,
			tourney.ErrTooFewPlayers)
	}
	if roundIndex < 0 {
		roundIndex = len(t.Rounds)
	}
	if roundIndex >= t.TotalRounds {
		return nil, fmt.Errorf("round %v: %w", roundIndex+1,
			tourney.ErrTournamentOver)
	}
	cycleLen := CycleLength(len(active))
	if t.TotalRounds > MaxCycles*cycleLen {
		return nil, fmt.Errorf("%v rounds with %v active players: %w",
			t.TotalRounds, len(active), tourney.ErrRoundLimit)
	}

	seeds := seedOrder(active)
	if len(seeds)%2 == 1 {
		seeds = append(seeds, nil) // phantom; pairing it means a bye
	}
	n := len(seeds)

	cycle := roundIndex / cycleLen
	r := roundIndex % cycleLen

	// circle method: hold seat 0, rotate the remaining n-1 seats right
	// by r
	positions := make([]*tourney.Player, n)
	positions[0] = seeds[0]
	for i := 1; i < n; i++ {
		src := 1 + (((i-1-r)%(n-1))+(n-1))%(n-1)
		positions[i] = seeds[src]
	}

	var pairings []tourney.Pairing
	var byes []tourney.Pairing
	for i := 0; i < n/2; i++ {
		a, b := positions[i], positions[n-1-i]
		switch {
		case a == nil:
			byes = append(byes, tourney.NewByePairing(b.ID))
		case b == nil:
			byes = append(byes, tourney.NewByePairing(a.ID))
		default:
			// alternate colors along the round, flipping the sense once
			// per extra cycle to balance repeated meetings
			if (r+i+cycle)%2 == 0 {
				pairings = append(pairings, tourney.NewPairing(a.ID, b.ID))
			} else {
				pairings = append(pairings, tourney.NewPairing(b.ID, a.ID))
			}
		}
	}

	return append(pairings, byes...), nil
}

// seedOrder fixes the deterministic seeding the whole schedule hangs
// off: rating descending, then registration time, name, and id.
func seedOrder(active []*tourney.Player) []*tourney.Player {
	seeds := append([]*tourney.Player{}, active...)
	sort.SliceStable(seeds, func(i, j int) bool {
		a, b := seeds[i], seeds[j]
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
	return seeds
}
