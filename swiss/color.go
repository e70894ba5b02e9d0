/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// PrefStrength is the escalating strength of a player's claim to a
// specific color next round. Absolute claims are hard constraints; the
// rest only influence matching quality and final color choice.
type PrefStrength int

const (
	PrefNone PrefStrength = iota
	PrefMild
	PrefStrong
	PrefAbsolute
)

type ColorPref struct {
	Strength PrefStrength
	Color    Color
}

// colorPreference classifies a player's color claim. Rule order is
// load-bearing: the absolute rules must win over the strong/mild ones.
func colorPreference(ps *PlayerState) ColorPref {
	if ps.ColorDiff > 1 {
		return ColorPref{PrefAbsolute, ColorBlack}
	}
	if ps.ColorDiff < -1 {
		return ColorPref{PrefAbsolute, ColorWhite}
	}
	played := ps.playedColors()
	n := len(played)
	if n >= 2 && played[n-1] == played[n-2] {
		return ColorPref{PrefAbsolute, played[n-1].other()}
	}
	if ps.ColorDiff == 1 {
		return ColorPref{PrefStrong, ColorBlack}
	}
	if ps.ColorDiff == -1 {
		return ColorPref{PrefStrong, ColorWhite}
	}
	if last, played := ps.lastColor(); played {
		return ColorPref{PrefMild, last.other()}
	}
	return ColorPref{PrefNone, ColorWhite}
}

// canPair is the hard-constraint predicate: two players are pairable
// iff they have never met and their absolute color claims, if both
// present, do not demand the same color.
func canPair(a, b *PlayerState) bool {
	if a.playedAgainst(b.Player.ID) || b.playedAgainst(a.Player.ID) {
		return false
	}
	pa, pb := colorPreference(a), colorPreference(b)
	if pa.Strength == PrefAbsolute && pb.Strength == PrefAbsolute &&
		pa.Color == pb.Color {
		return false
	}
	return true
}

// assignColors chooses white and black for a pairable pair: the
// stronger claim wins; equal-strength opposite claims honor both; with
// no deciding claim the higher-rated player takes white, pairing number
// breaking exact rating ties.
func assignColors(a, b *PlayerState) (white, black *PlayerState) {
	pa, pb := colorPreference(a), colorPreference(b)

	switch {
	case pa.Strength > pb.Strength:
		return byPref(a, b, pa)
	case pb.Strength > pa.Strength:
		return byPref(b, a, pb)
	case pa.Strength != PrefNone && pa.Color != pb.Color:
		return byPref(a, b, pa)
	}

	if a.Player.Rating != b.Player.Rating {
		if a.Player.Rating > b.Player.Rating {
			return a, b
		}
		return b, a
	}
	if a.PairingNumber < b.PairingNumber {
		return a, b
	}
	return b, a
}

func byPref(claimant, other *PlayerState, pref ColorPref) (white, black *PlayerState) {
	if pref.Color == ColorWhite {
		return claimant, other
	}
	return other, claimant
}

// colorViolations counts how many of the two players' color claims the
// eventual assignment leaves unmet. Used to order matching candidates
// and to score fallback pairs.
func colorViolations(a, b *PlayerState) int {
	white, black := assignColors(a, b)

	violations := 0
	if pw := colorPreference(white); pw.Strength != PrefNone && pw.Color != ColorWhite {
		violations++
	}
	if pb := colorPreference(black); pb.Strength != PrefNone && pb.Color != ColorBlack {
		violations++
	}
	return violations
}
