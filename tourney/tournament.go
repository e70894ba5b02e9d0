/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tourney

import (
	"time"

	"github.com/google/uuid"
)

// System selects the pairing method used for a tournament.
type System int

const (
	SystemSwiss System = iota
	SystemRoundRobin
)

func (s System) String() string {
	if s == SystemSwiss {
		return "swiss"
	} else if s == SystemRoundRobin {
		return "round-robin"
	} else {
		return "?"
	}
}

// Result represents the outcome of a single pairing.
type Result int

const (
	ResultNone Result = iota
	ResultWhiteWin
	ResultBlackWin
	ResultDraw
	ResultWhiteForfeitWin
	ResultBlackForfeitWin
	ResultDoubleForfeit
)

var resultCodes = map[Result]string{
	ResultNone:            "",
	ResultWhiteWin:        "1-0",
	ResultBlackWin:        "0-1",
	ResultDraw:            "1/2-1/2",
	ResultWhiteForfeitWin: "1F-0F",
	ResultBlackForfeitWin: "0F-1F",
	ResultDoubleForfeit:   "0F-0F",
}

func (r Result) String() string {
	return resultCodes[r]
}

// ParseResult converts a result code such as "1-0" back into a Result.
func ParseResult(code string) (Result, bool) {
	for r, c := range resultCodes {
		if c == code {
			return r, true
		}
	}
	return ResultNone, false
}

// Player represents a participant in a tournament. Players are never
// physically removed once they have played a pairing; deactivation
// excludes them from future rounds while their history remains.
type Player struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Rating        int       `json:"rating"`
	InitialRating int       `json:"initialRating,omitempty"`
	Points        float64   `json:"points"`
	Active        bool      `json:"active"`
	Titles        []string  `json:"titles,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Pairing represents a single board pairing within a round. An empty
// BlackPlayerID encodes a bye for the white player.
type Pairing struct {
	ID            string `json:"id"`
	WhitePlayerID string `json:"whitePlayerId"`
	BlackPlayerID string `json:"blackPlayerId,omitempty"`
	Result        Result `json:"result"`
}

func (p Pairing) IsBye() bool {
	return p.BlackPlayerID == ""
}

// Has reports whether playerID appears on either side of the pairing.
func (p Pairing) Has(playerID string) bool {
	return p.WhitePlayerID == playerID ||
		(!p.IsBye() && p.BlackPlayerID == playerID)
}

// Opponent returns the other side of the pairing, or "" for a bye or
// when playerID did not play in it.
func (p Pairing) Opponent(playerID string) string {
	if p.WhitePlayerID == playerID {
		return p.BlackPlayerID
	}
	if !p.IsBye() && p.BlackPlayerID == playerID {
		return p.WhitePlayerID
	}
	return ""
}

// NewPairing mints a pairing between two players with no result yet.
func NewPairing(whiteID, blackID string) Pairing {
	return Pairing{
		ID:            uuid.NewString(),
		WhitePlayerID: whiteID,
		BlackPlayerID: blackID,
	}
}

// NewByePairing mints a bye pairing. The result stays unset until the
// round completes; the caller resolves it from the tournament bye value.
func NewByePairing(playerID string) Pairing {
	return Pairing{
		ID:            uuid.NewString(),
		WhitePlayerID: playerID,
	}
}

// Round is one completed or in-progress round of a tournament. The
// at-start snapshots support tiebreak float derivation, rating-delta
// display, and round deletion rollback.
type Round struct {
	RoundNumber          int                `json:"roundNumber"`
	Pairings             []Pairing          `json:"pairings"`
	Completed            bool               `json:"completed"`
	PlayerPointsAtStart  map[string]float64 `json:"playerPointsAtStart"`
	PlayerRatingsAtStart map[string]int     `json:"playerRatingsAtStart"`
}

// PairingFor returns the pairing playerID participated in, if any.
func (r *Round) PairingFor(playerID string) (Pairing, bool) {
	for _, p := range r.Pairings {
		if p.Has(playerID) {
			return p, true
		}
	}
	return Pairing{}, false
}

// Tournament is the aggregate the engine operates on. The storage
// collaborator owns persistence; the engine only reads and returns
// snapshots of this shape.
type Tournament struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	System        System     `json:"system"`
	ByeValue      float64    `json:"byeValue"`
	TotalRounds   int        `json:"totalRounds"`
	Rated         bool       `json:"rated"`
	TiebreakOrder []Tiebreak `json:"tiebreakOrder,omitempty"`
	Rounds        []Round    `json:"rounds"`
	Players       []Player   `json:"players"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// Player looks up a player by id.
func (t *Tournament) Player(id string) *Player {
	for i := range t.Players {
		if t.Players[i].ID == id {
			return &t.Players[i]
		}
	}
	return nil
}

// ActivePlayers returns pointers to all active players in insertion
// order.
func (t *Tournament) ActivePlayers() []*Player {
	var active []*Player
	for i := range t.Players {
		if t.Players[i].Active {
			active = append(active, &t.Players[i])
		}
	}
	return active
}

// CompletedRounds returns the completed prefix of the round sequence in
// order.
func (t *Tournament) CompletedRounds() []*Round {
	var rounds []*Round
	for i := range t.Rounds {
		if t.Rounds[i].Completed {
			rounds = append(rounds, &t.Rounds[i])
		}
	}
	return rounds
}

// CurrentRound returns the most recent round, or nil if none exist.
func (t *Tournament) CurrentRound() *Round {
	if len(t.Rounds) == 0 {
		return nil
	}
	return &t.Rounds[len(t.Rounds)-1]
}

// ByeResult maps the tournament bye value onto the result a finalized
// bye pairing must carry: 1 -> white win, 0.5 -> draw, 0 -> black win.
func (t *Tournament) ByeResult() Result {
	switch t.ByeValue {
	case 1.0:
		return ResultWhiteWin
	case 0.5:
		return ResultDraw
	default:
		return ResultBlackWin
	}
}

// NewTournament creates an empty tournament with the default tiebreak
// order.
func NewTournament(name string, system System, totalRounds int, rated bool) *Tournament {
	return &Tournament{
		ID:            uuid.NewString(),
		Name:          name,
		System:        system,
		ByeValue:      1.0,
		TotalRounds:   totalRounds,
		Rated:         rated,
		TiebreakOrder: DefaultTiebreakOrder(),
		CreatedAt:     time.Now(),
	}
}

// AddPlayer registers a new active player and returns it.
func (t *Tournament) AddPlayer(name string, rating int) *Player {
	t.Players = append(t.Players, Player{
		ID:        uuid.NewString(),
		Name:      name,
		Rating:    rating,
		Active:    true,
		CreatedAt: time.Now(),
	})
	return &t.Players[len(t.Players)-1]
}
