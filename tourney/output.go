/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tourney

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mikeb26/chesspair/internal"
)

// BuildPairingsOutput formats a round's pairings into an aligned text
// table. Byes render without a board number.
func BuildPairingsOutput(t *Tournament, roundNumber int, pairings []Pairing) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Round %v Pairings:\n\n", roundNumber))

	type row struct{ board, white, black string }
	var rows []row
	board := 1
	for _, p := range pairings {
		white := t.Player(p.WhitePlayerID)
		if white == nil {
			continue
		}
		var b, w, bl string
		w = fmt.Sprintf("%s(%d %v)", white.Name, white.Rating,
			internal.ScoreToString(white.Points))
		if p.IsBye() {
			b = "n/a"
			if t.ByeValue == 1.0 {
				bl = "BYE(1)"
			} else if t.ByeValue == 0.5 {
				bl = "BYE(½)"
			} else {
				bl = "BYE(0)"
			}
		} else {
			black := t.Player(p.BlackPlayerID)
			if black == nil {
				continue
			}
			b = fmt.Sprintf("%d.", board)
			board++
			bl = fmt.Sprintf("%s(%d %v)", black.Name, black.Rating,
				internal.ScoreToString(black.Points))
		}
		rows = append(rows, row{board: b, white: w, black: bl})
	}

	// Compute column widths
	maxB, maxW, maxBl := len("Board"), len("White"), len("Black")
	for _, r := range rows {
		if l := len(r.board); l > maxB {
			maxB = l
		}
		if l := len(r.white); l > maxW {
			maxW = l
		}
		if l := len(r.black); l > maxBl {
			maxBl = l
		}
	}

	sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxB, "Board", maxW,
		"White", maxBl, "Black"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxB, r.board,
			maxW, r.white, maxBl, r.black))
	}

	return sb.String()
}

// BuildPlayersOutput formats the player roster sorted by rating.
func BuildPlayersOutput(t *Tournament) string {
	var sb strings.Builder

	type row struct {
		player, rating, status string
		ratingInt              int
	}
	var rows []row
	for i := range t.Players {
		p := &t.Players[i]
		r := "unrated"
		if p.Rating != 0 {
			r = fmt.Sprintf("%v", p.Rating)
		}
		status := "active"
		if !p.Active {
			status = "withdrawn"
		}
		rows = append(rows, row{player: p.Name, rating: r, status: status,
			ratingInt: p.Rating})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].ratingInt > rows[j].ratingInt
	})

	// Compute column widths
	maxP, maxR, maxS := len("Player"), len("Rating"), len("Status")
	for _, r := range rows {
		if l := len(r.player); l > maxP {
			maxP = l
		}
		if l := len(r.rating); l > maxR {
			maxR = l
		}
		if l := len(r.status); l > maxS {
			maxS = l
		}
	}

	sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxP, "Player", maxR,
		"Rating", maxS, "Status"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxP, r.player,
			maxR, r.rating, maxS, r.status))
	}

	return sb.String()
}
