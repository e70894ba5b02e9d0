/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"testing"

	"github.com/mikeb26/chesspair/tourney"
)

func statePNC(id string, rating, pairingNum, colorDiff int,
	colors ...Color) *PlayerState {

	return &PlayerState{
		Player:        &tourney.Player{ID: id, Rating: rating, Active: true},
		PairingNumber: pairingNum,
		ColorDiff:     colorDiff,
		Colors:        colors,
	}
}

func TestColorPreference(t *testing.T) {
	cases := []struct {
		name         string
		ps           *PlayerState
		wantStrength PrefStrength
		wantColor    Color
	}{
		{
			name:         "two extra whites is absolute black",
			ps:           statePNC("a", 1500, 1, 2, ColorWhite, ColorWhite),
			wantStrength: PrefAbsolute,
			wantColor:    ColorBlack,
		},
		{
			name:         "two extra blacks is absolute white",
			ps:           statePNC("a", 1500, 1, -2, ColorBlack, ColorBlack),
			wantStrength: PrefAbsolute,
			wantColor:    ColorWhite,
		},
		{
			name:         "same color twice running is absolute",
			ps:           statePNC("a", 1500, 1, -1, ColorWhite, ColorBlack, ColorBlack),
			wantStrength: PrefAbsolute,
			wantColor:    ColorWhite,
		},
		{
			name:         "one extra white is strong black",
			ps:           statePNC("a", 1500, 1, 1, ColorBlack, ColorWhite),
			wantStrength: PrefStrong,
			wantColor:    ColorBlack,
		},
		{
			name:         "one extra black is strong white",
			ps:           statePNC("a", 1500, 1, -1, ColorWhite, ColorBlack, ColorWhite, ColorBlack),
			wantStrength: PrefStrong,
			wantColor:    ColorWhite,
		},
		{
			name:         "balanced history is mild alternation",
			ps:           statePNC("a", 1500, 1, 0, ColorWhite, ColorBlack),
			wantStrength: PrefMild,
			wantColor:    ColorWhite,
		},
		{
			name:         "no games yet is no preference",
			ps:           statePNC("a", 1500, 1, 0),
			wantStrength: PrefNone,
			wantColor:    ColorWhite,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := colorPreference(c.ps)
			if got.Strength != c.wantStrength {
				t.Errorf("%s: strength = %v; want %v", c.name, got.Strength,
					c.wantStrength)
			}
			if got.Strength != PrefNone && got.Color != c.wantColor {
				t.Errorf("%s: color = %v; want %v", c.name, got.Color,
					c.wantColor)
			}
		})
	}
}

func TestColorPreferenceSkipsByeSlots(t *testing.T) {
	// black then white over the board, then a bye: the bye's white slot
	// must not read as white twice running
	ps := statePNC("a", 1500, 1, 0, ColorBlack, ColorWhite, ColorWhite)
	ps.Opponents = []string{"x", "y", ""}
	got := colorPreference(ps)
	if got.Strength != PrefMild || got.Color != ColorBlack {
		t.Fatalf("preference = {%v %v}; want mild black", got.Strength, got.Color)
	}

	// alternation keys off the last played color, not the bye slot
	ps = statePNC("a", 1500, 1, 0, ColorWhite, ColorBlack, ColorWhite)
	ps.Opponents = []string{"x", "y", ""}
	got = colorPreference(ps)
	if got.Strength != PrefMild || got.Color != ColorWhite {
		t.Fatalf("preference = {%v %v}; want mild white", got.Strength, got.Color)
	}
}

func TestCanPairRejectsRematch(t *testing.T) {
	a := statePNC("a", 1500, 1, 0)
	b := statePNC("b", 1400, 2, 0)
	a.Opponents = []string{"b"}
	b.Opponents = []string{"a"}
	if canPair(a, b) {
		t.Fatal("rematch was allowed")
	}
}

func TestCanPairRejectsSameAbsoluteClaim(t *testing.T) {
	// both players owe black
	a := statePNC("a", 1500, 1, 2, ColorBlack, ColorWhite, ColorWhite)
	b := statePNC("b", 1400, 2, 2, ColorWhite, ColorBlack, ColorWhite)
	if canPair(a, b) {
		t.Fatal("conflicting absolute claims were allowed")
	}
}

func TestCanPairAllowsOppositeAbsoluteClaims(t *testing.T) {
	a := statePNC("a", 1500, 1, 2, ColorWhite, ColorWhite)
	b := statePNC("b", 1400, 2, -2, ColorBlack, ColorBlack)
	if !canPair(a, b) {
		t.Fatal("opposite absolute claims were rejected")
	}
}

func TestAssignColors(t *testing.T) {
	cases := []struct {
		name      string
		a, b      *PlayerState
		wantWhite string
	}{
		{
			name:      "absolute claim wins outright",
			a:         statePNC("a", 1500, 1, -2, ColorBlack, ColorBlack),
			b:         statePNC("b", 1900, 2, 1, ColorBlack, ColorWhite),
			wantWhite: "a",
		},
		{
			name:      "strong beats mild",
			a:         statePNC("a", 1500, 1, 0, ColorBlack, ColorWhite),
			b:         statePNC("b", 1900, 2, -1, ColorWhite, ColorBlack, ColorBlack, ColorWhite, ColorBlack),
			wantWhite: "b",
		},
		{
			name:      "opposite mild claims both honored",
			a:         statePNC("a", 1500, 1, 0, ColorWhite, ColorBlack),
			b:         statePNC("b", 1900, 2, 0, ColorBlack, ColorWhite),
			wantWhite: "a",
		},
		{
			name:      "no claims gives white to higher rating",
			a:         statePNC("a", 1500, 2, 0),
			b:         statePNC("b", 1900, 1, 0),
			wantWhite: "b",
		},
		{
			name:      "equal rating falls back to pairing number",
			a:         statePNC("a", 1500, 2, 0),
			b:         statePNC("b", 1500, 1, 0),
			wantWhite: "b",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			white, black := assignColors(c.a, c.b)
			if white.Player.ID != c.wantWhite {
				t.Errorf("%s: white = %v; want %v", c.name, white.Player.ID,
					c.wantWhite)
			}
			if black == white {
				t.Errorf("%s: white and black are the same player", c.name)
			}
		})
	}
}
