/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"sort"

	"github.com/mikeb26/chesspair/tourney"
)

type Color int

const (
	ColorWhite Color = iota
	ColorBlack
)

func (c Color) other() Color {
	if c == ColorWhite {
		return ColorBlack
	}
	return ColorWhite
}

// Float records which direction a player was paired out of their score
// group in a past round.
type Float int

const (
	FloatNone Float = iota
	FloatUp
	FloatDown
)

// PlayerState is the derived pairing state for one active player,
// rebuilt fresh from the tournament snapshot on every pairing call.
// Nothing here is persisted.
type PlayerState struct {
	Player        *tourney.Player
	PairingNumber int
	Colors        []Color
	Opponents     []string // opponent id per round, "" for a bye
	ColorDiff     int      // white games minus black games; byes are not games
	Floats        []Float  // last two float directions, oldest first
	HasBye        bool
}

// playedColors returns the colors from actual games, skipping bye
// rounds. Color preference rules read the played sequence only.
func (ps *PlayerState) playedColors() []Color {
	played := make([]Color, 0, len(ps.Colors))
	for i, c := range ps.Colors {
		if i < len(ps.Opponents) && ps.Opponents[i] == "" {
			continue
		}
		played = append(played, c)
	}
	return played
}

func (ps *PlayerState) lastColor() (Color, bool) {
	played := ps.playedColors()
	if len(played) == 0 {
		return ColorWhite, false
	}
	return played[len(played)-1], true
}

func (ps *PlayerState) lastFloat() Float {
	if len(ps.Floats) == 0 {
		return FloatNone
	}
	return ps.Floats[len(ps.Floats)-1]
}

func (ps *PlayerState) playedAgainst(id string) bool {
	for _, opp := range ps.Opponents {
		if opp != "" && opp == id {
			return true
		}
	}
	return false
}

// BuildPlayerStates derives pairing state for every active player from
// the tournament's completed rounds. The returned order is descending
// rating with insertion order breaking ties, which also defines each
// player's pairing number.
func BuildPlayerStates(t *tourney.Tournament) []*PlayerState {
	active := t.ActivePlayers()

	states := make([]*PlayerState, 0, len(active))
	for _, p := range active {
		states = append(states, &PlayerState{Player: p})
	}
	sort.SliceStable(states, func(i, j int) bool {
		return states[i].Player.Rating > states[j].Player.Rating
	})
	for i, ps := range states {
		ps.PairingNumber = i + 1
	}

	byID := make(map[string]*PlayerState, len(states))
	for _, ps := range states {
		byID[ps.Player.ID] = ps
	}

	for _, rnd := range t.CompletedRounds() {
		for _, p := range rnd.Pairings {
			applyPairing(byID, rnd, p)
		}
	}

	// only the last two float directions matter for pairing
	for _, ps := range states {
		if len(ps.Floats) > 2 {
			ps.Floats = ps.Floats[len(ps.Floats)-2:]
		}
	}

	return states
}

func applyPairing(byID map[string]*PlayerState, rnd *tourney.Round,
	p tourney.Pairing) {

	white := byID[p.WhitePlayerID]
	if p.IsBye() {
		if white == nil {
			return
		}
		// a bye occupies a white slot in the history but is not a game,
		// so the color balance stays put
		white.Colors = append(white.Colors, ColorWhite)
		white.Opponents = append(white.Opponents, "")
		white.Floats = append(white.Floats, FloatNone)
		white.HasBye = true
		return
	}

	black := byID[p.BlackPlayerID]
	wStart := rnd.PlayerPointsAtStart[p.WhitePlayerID]
	bStart := rnd.PlayerPointsAtStart[p.BlackPlayerID]

	if white != nil {
		white.Colors = append(white.Colors, ColorWhite)
		white.ColorDiff++
		white.Opponents = append(white.Opponents, p.BlackPlayerID)
		white.Floats = append(white.Floats, floatDir(wStart, bStart))
	}
	if black != nil {
		black.Colors = append(black.Colors, ColorBlack)
		black.ColorDiff--
		black.Opponents = append(black.Opponents, p.WhitePlayerID)
		black.Floats = append(black.Floats, floatDir(bStart, wStart))
	}
}

// floatDir classifies a game from one player's perspective: an opponent
// who started the round with more points floats the player up, fewer
// points floats them down.
func floatDir(myStart, oppStart float64) Float {
	if oppStart > myStart {
		return FloatUp
	}
	if oppStart < myStart {
		return FloatDown
	}
	return FloatNone
}
