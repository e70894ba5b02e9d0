/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"sort"
)

// exchangeBound caps how many players a failed bracket may swap between
// the tail of S1 and the head of S2 before escalating to the fallback
// pairer.
const exchangeBound = 4

// matchBrackets runs Dutch-system bracket pairing over an even pool of
// player states. It returns the paired (white, black) couples, or
// fallbackNeeded=true when any bracket is structurally infeasible and
// the whole round must be re-paired by the fallback pairer.
func matchBrackets(pool []*PlayerState) (pairs [][2]*PlayerState, fallbackNeeded bool) {
	groups := make(map[float64][]*PlayerState)
	for _, ps := range pool {
		groups[ps.Player.Points] = append(groups[ps.Player.Points], ps)
	}
	scores := make([]float64, 0, len(groups))
	for s := range groups {
		scores = append(scores, s)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(scores)))

	var floaters []*PlayerState
	for _, s := range scores {
		// downfloaters from above join the top of the next bracket
		bracket := append(append([]*PlayerState{}, floaters...), groups[s]...)
		floaters = nil

		if len(bracket)%2 == 1 {
			idx := pickDownfloater(bracket)
			floaters = []*PlayerState{bracket[idx]}
			bracket = append(bracket[:idx:idx], bracket[idx+1:]...)
		}
		if len(bracket) == 0 {
			continue
		}

		bracketPairs, ok := matchBracket(bracket)
		if !ok {
			return nil, true
		}
		pairs = append(pairs, bracketPairs...)
	}
	if len(floaters) > 0 {
		// a floater ran out of brackets to land in
		return nil, true
	}

	return pairs, false
}

// pickDownfloater selects which member of an odd bracket drops to the
// next score group: preferably a lower-half player who did not
// downfloat last round, lowest ranked first; failing that, the lowest
// ranked player outright.
func pickDownfloater(bracket []*PlayerState) int {
	for i := len(bracket) - 1; i >= len(bracket)/2; i-- {
		if bracket[i].lastFloat() != FloatDown {
			return i
		}
	}
	return len(bracket) - 1
}

// matchBracket splits an even bracket into S1 (top half) and S2 and
// looks for a perfect S1-to-S2 matching, trying bounded pairwise
// exchanges between the halves when the original split has none.
func matchBracket(bracket []*PlayerState) ([][2]*PlayerState, bool) {
	half := len(bracket) / 2
	s1 := append([]*PlayerState{}, bracket[:half]...)
	s2 := append([]*PlayerState{}, bracket[half:]...)

	if match, ok := kuhnMatch(s1, s2); ok {
		return pairsFromMatch(s1, s2, match), true
	}

	window := exchangeBound
	if window > half {
		window = half
	}
	for k := 1; k <= window; k++ {
		s1Combos := combinations(window, k)
		s2Combos := combinations(window, k)
		for _, c1 := range s1Combos {
			for _, c2 := range s2Combos {
				swapAcross(s1, s2, c1, c2)
				if match, ok := kuhnMatch(s1, s2); ok {
					return pairsFromMatch(s1, s2, match), true
				}
				swapAcross(s1, s2, c1, c2) // revert
			}
		}
	}

	return nil, false
}

// swapAcross exchanges the chosen tail-of-S1 offsets with the chosen
// head-of-S2 offsets, element by element.
func swapAcross(s1, s2 []*PlayerState, tailOffsets, headOffsets []int) {
	for t := range tailOffsets {
		i := len(s1) - 1 - tailOffsets[t]
		j := headOffsets[t]
		s1[i], s2[j] = s2[j], s1[i]
	}
}

// combinations enumerates all ascending k-subsets of offsets [0, n).
func combinations(n, k int) [][]int {
	var out [][]int
	combo := make([]int, k)
	var walk func(start, depth int)
	walk = func(start, depth int) {
		if depth == k {
			out = append(out, append([]int{}, combo...))
			return
		}
		for v := start; v < n; v++ {
			combo[depth] = v
			walk(v+1, depth+1)
		}
	}
	walk(0, 0)
	return out
}

func pairsFromMatch(s1, s2 []*PlayerState, matchS2 []int) [][2]*PlayerState {
	pairs := make([][2]*PlayerState, 0, len(s1))
	for j, i := range matchS2 {
		if i < 0 {
			continue
		}
		white, black := assignColors(s1[i], s2[j])
		pairs = append(pairs, [2]*PlayerState{white, black})
	}
	return pairs
}

// kuhnMatch finds a perfect bipartite matching of S1 onto S2 via
// augmenting paths. Candidates are tried closest-ranked and
// fewest-color-violations first. The augmenting search is iterative
// with an explicit frame stack so large brackets never risk call-stack
// depth.
func kuhnMatch(s1, s2 []*PlayerState) ([]int, bool) {
	cands := make([][]int, len(s1))
	for i, a := range s1 {
		for j, b := range s2 {
			if canPair(a, b) {
				cands[i] = append(cands[i], j)
			}
		}
		sortCandidates(cands[i], i, s1[i], s2)
	}

	matchS2 := make([]int, len(s2))
	for j := range matchS2 {
		matchS2[j] = -1
	}

	for i := range s1 {
		visited := make([]bool, len(s2))
		if !augment(i, cands, matchS2, visited) {
			return nil, false
		}
	}

	return matchS2, true
}

func sortCandidates(list []int, i int, a *PlayerState, s2 []*PlayerState) {
	dist := func(j int) int {
		if j > i {
			return j - i
		}
		return i - j
	}
	sort.Slice(list, func(x, y int) bool {
		jx, jy := list[x], list[y]
		dx, dy := dist(jx), dist(jy)
		if dx != dy {
			return dx < dy
		}
		vx, vy := colorViolations(a, s2[jx]), colorViolations(a, s2[jy])
		if vx != vy {
			return vx < vy
		}
		return s2[jx].PairingNumber < s2[jy].PairingNumber
	})
}

type kuhnFrame struct {
	node int // S1 node being placed
	ci   int // cursor into its candidate list
	tryJ int // S2 node currently descended through
}

// augment searches for an augmenting path from S1 node root. On
// success every S2 node along the path is rematched to the S1 node
// that reached it.
func augment(root int, cands [][]int, matchS2 []int, visited []bool) bool {
	stack := []kuhnFrame{{node: root, tryJ: -1}}

	for len(stack) > 0 {
		f := &stack[len(stack)-1]

		descended := false
		for f.ci < len(cands[f.node]) {
			j := cands[f.node][f.ci]
			f.ci++
			if visited[j] {
				continue
			}
			visited[j] = true

			if matchS2[j] == -1 {
				// free S2 node found: rematch the whole path
				matchS2[j] = f.node
				for k := len(stack) - 2; k >= 0; k-- {
					matchS2[stack[k].tryJ] = stack[k].node
				}
				return true
			}

			f.tryJ = j
			stack = append(stack, kuhnFrame{node: matchS2[j], tryJ: -1})
			descended = true
			break
		}
		if !descended {
			stack = stack[:len(stack)-1]
		}
	}

	return false
}
