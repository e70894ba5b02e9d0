/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tourney

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/chesspair/internal"
)

// Standing is one row of the ranked standings table.
type Standing struct {
	Rank      int
	Player    *Player
	Points    float64
	Tiebreaks Tiebreaks
}

// ComputeStandings ranks all players by points then by the configured
// tiebreak order. Players tied on every metric share a rank. Tiebreak
// computation only reads finalized round data, so it fans out across
// players.
func ComputeStandings(t *Tournament) ([]Standing, error) {
	standings := make([]Standing, len(t.Players))

	var eg errgroup.Group
	for i := range t.Players {
		i := i
		eg.Go(func() error {
			p := &t.Players[i]
			tb, err := CalculateTiebreaks(t, p.ID)
			if err != nil {
				return err
			}
			standings[i] = Standing{Player: p, Points: p.Points, Tiebreaks: tb}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		return CompareTiebreaks(a.Tiebreaks, b.Tiebreaks, t,
			a.Player.ID, b.Player.ID) > 0
	})

	rank := 0
	for i := range standings {
		if i == 0 || !tiedWithPrior(t, standings, i) {
			rank = i + 1
		}
		standings[i].Rank = rank
	}

	return standings, nil
}

func tiedWithPrior(t *Tournament, standings []Standing, i int) bool {
	a, b := standings[i-1], standings[i]
	if a.Points != b.Points {
		return false
	}
	return CompareTiebreaks(a.Tiebreaks, b.Tiebreaks, t,
		a.Player.ID, b.Player.ID) == 0
}

// BuildStandingsOutput formats standings into an aligned text table.
func BuildStandingsOutput(t *Tournament) (string, error) {
	standings, err := ComputeStandings(t)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Standings after Round %v:\n\n",
		len(t.CompletedRounds())))

	type row struct{ rank, player, score, tb1, tb2 string }
	var rows []row
	priorRank := 0
	for _, s := range standings {
		var rank string
		if s.Rank != priorRank {
			rank = fmt.Sprintf("%v.", s.Rank)
			priorRank = s.Rank
		}
		rows = append(rows, row{
			rank:   rank,
			player: s.Player.Name,
			score:  internal.ScoreToString(s.Points),
			tb1:    internal.ScoreToString(s.Tiebreaks.BuchholzCut1),
			tb2:    internal.ScoreToString(s.Tiebreaks.Buchholz),
		})
	}

	// Compute column widths
	maxP, maxN, maxS := len("Place"), len("Name"), len("Score")
	maxT1, maxT2 := len("BucC1"), len("Buc")
	for _, r := range rows {
		if l := len(r.rank); l > maxP {
			maxP = l
		}
		if l := len(r.player); l > maxN {
			maxN = l
		}
		if l := len(r.score); l > maxS {
			maxS = l
		}
		if l := len(r.tb1); l > maxT1 {
			maxT1 = l
		}
		if l := len(r.tb2); l > maxT2 {
			maxT2 = l
		}
	}

	sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s  %-*s  %-*s\n", maxP, "Place",
		maxN, "Name", maxS, "Score", maxT1, "BucC1", maxT2, "Buc"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s  %-*s  %-*s\n", maxP,
			r.rank, maxN, r.player, maxS, r.score, maxT1, r.tb1, maxT2, r.tb2))
	}

	return sb.String(), nil
}
