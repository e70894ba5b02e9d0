/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"math"
	"sort"
)

// DefaultDepthLimit bounds the backtracking search depth before the
// pairer degrades to the greedy tier.
const DefaultDepthLimit = 100

// quality penalty weights: lower totals are better pairs
const (
	pointGapWeight    = 100
	floatRepeatWeight = 50
	colorPrefWeight   = 10
)

// pairQuality scores a prospective pair; lower is better. Point gaps
// dominate, repeated float directions and unmet color claims trail.
func pairQuality(a, b *PlayerState) int {
	gap := math.Abs(a.Player.Points - b.Player.Points)
	q := int(math.Round(pointGapWeight * gap))

	if a.Player.Points != b.Player.Points {
		var down, up *PlayerState
		if a.Player.Points > b.Player.Points {
			down, up = a, b
		} else {
			down, up = b, a
		}
		if down.lastFloat() == FloatDown {
			q += floatRepeatWeight
		}
		if up.lastFloat() == FloatUp {
			q += floatRepeatWeight
		}
	}

	q += colorPrefWeight * colorViolations(a, b)

	return q
}

// fallbackPair pairs the full pool when bracket matching has failed. It
// first runs a quality-ordered backtracking search; if that exhausts or
// exceeds the depth limit it hands the pool to the greedy pairer, which
// always completes.
func fallbackPair(pool []*PlayerState, depthLimit int) [][2]*PlayerState {
	if pairs, ok := backtrackPair(pool, depthLimit); ok {
		return pairs
	}
	return greedyPair(pool)
}

type btFrame struct {
	a      *PlayerState
	cands  []*PlayerState
	idx    int
	chosen *PlayerState
}

// backtrackPair searches for a full feasible pairing of the pool,
// always extending from the first unpaired player and trying opponents
// best quality first. The explicit frame stack is the recursion: a
// popped frame is a dead end and its player's earlier choice is
// retried by the parent.
func backtrackPair(pool []*PlayerState, depthLimit int) ([][2]*PlayerState, bool) {
	if len(pool)%2 != 0 {
		return nil, false
	}
	if len(pool) == 0 {
		return nil, true
	}

	paired := make(map[string]bool, len(pool))
	firstUnpaired := func() *PlayerState {
		for _, ps := range pool {
			if !paired[ps.Player.ID] {
				return ps
			}
		}
		return nil
	}

	root := pool[0]
	paired[root.Player.ID] = true
	stack := []btFrame{{a: root, cands: orderedCandidates(root, pool)}}

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.chosen != nil {
			// the subtree under the previous choice failed
			paired[f.chosen.Player.ID] = false
			f.chosen = nil
		}

		for f.idx < len(f.cands) {
			b := f.cands[f.idx]
			f.idx++
			if paired[b.Player.ID] {
				continue
			}
			f.chosen = b
			paired[b.Player.ID] = true
			break
		}
		if f.chosen == nil {
			paired[f.a.Player.ID] = false
			stack = stack[:len(stack)-1]
			continue
		}

		next := firstUnpaired()
		if next == nil {
			return pairsFromFrames(stack), true
		}
		if len(stack) >= depthLimit {
			return nil, false
		}
		paired[next.Player.ID] = true
		stack = append(stack, btFrame{a: next, cands: orderedCandidates(next, pool)})
	}

	return nil, false
}

func orderedCandidates(a *PlayerState, pool []*PlayerState) []*PlayerState {
	var cands []*PlayerState
	for _, b := range pool {
		if b == a || !canPair(a, b) {
			continue
		}
		cands = append(cands, b)
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return pairQuality(a, cands[i]) < pairQuality(a, cands[j])
	})
	return cands
}

func pairsFromFrames(stack []btFrame) [][2]*PlayerState {
	pairs := make([][2]*PlayerState, 0, len(stack))
	for i := range stack {
		white, black := assignColors(stack[i].a, stack[i].chosen)
		pairs = append(pairs, [2]*PlayerState{white, black})
	}
	return pairs
}

// greedyPair always produces a complete pairing: each step pairs the
// first remaining player with their best-quality feasible opponent,
// tolerating a repeat opponent only when no feasible candidate remains
// at all. A degraded but total result.
func greedyPair(pool []*PlayerState) [][2]*PlayerState {
	remaining := append([]*PlayerState{}, pool...)
	var pairs [][2]*PlayerState

	for len(remaining) >= 2 {
		a := remaining[0]
		best := -1
		bestQ := 0
		for i := 1; i < len(remaining); i++ {
			if !canPair(a, remaining[i]) {
				continue
			}
			if q := pairQuality(a, remaining[i]); best == -1 || q < bestQ {
				best, bestQ = i, q
			}
		}
		if best == -1 {
			// no feasible candidate: accept a rematch, still best
			// quality first
			for i := 1; i < len(remaining); i++ {
				if q := pairQuality(a, remaining[i]); best == -1 || q < bestQ {
					best, bestQ = i, q
				}
			}
		}

		white, black := assignColors(a, remaining[best])
		pairs = append(pairs, [2]*PlayerState{white, black})
		remaining = append(remaining[:best:best], remaining[best+1:]...)
		remaining = remaining[1:]
	}

	return pairs
}
