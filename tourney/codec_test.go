/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tourney

import (
	"errors"
	"testing"
)

const snapshotJSON = `{
  "id": "t1",
  "name": "Club Championship",
  "system": "swiss",
  "byeValue": 1,
  "totalRounds": 5,
  "rated": true,
  "createdAt": "2025/06/01",
  "players": [
    {"id": "p1", "name": "Alice", "rating": 1800, "active": true,
     "createdAt": "June 1, 2025 5:57:51 PM"},
    {"id": "p2", "name": "Bob", "rating": 1650, "active": true,
     "createdAt": "null"}
  ],
  "rounds": [
    {"roundNumber": 1, "completed": true,
     "pairings": [
       {"id": "g1", "whitePlayerId": "p1", "blackPlayerId": "p2",
        "result": "1-0"}
     ],
     "playerPointsAtStart": {"p1": 0, "p2": 0},
     "playerRatingsAtStart": {"p1": 1800, "p2": 1650}}
  ]
}`

func TestDecodeSnapshot(t *testing.T) {
	tt, err := Decode([]byte(snapshotJSON))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if tt.System != SystemSwiss {
		t.Errorf("system = %v; want %v", tt.System, SystemSwiss)
	}
	if tt.CreatedAt.IsZero() {
		t.Error("tournament createdAt parsed as zero")
	}
	// "null" is tolerated and becomes the zero time
	if !tt.Player("p2").CreatedAt.IsZero() {
		t.Error("p2 createdAt should be zero")
	}
	if got := tt.Rounds[0].Pairings[0].Result; got != ResultWhiteWin {
		t.Errorf("result = %v; want %v", got, ResultWhiteWin)
	}
}

func TestDecodeRejectsBadConfig(t *testing.T) {
	bad := `{"id": "t2", "system": "swiss", "byeValue": 0.75, "totalRounds": 3}`
	if _, err := Decode([]byte(bad)); !errors.Is(err, ErrInvalidByeValue) {
		t.Fatalf("got %v; want ErrInvalidByeValue", err)
	}

	unknown := `{"id": "t3", "system": "knockout", "byeValue": 1, "totalRounds": 3}`
	if _, err := Decode([]byte(unknown)); err == nil {
		t.Fatal("unknown system accepted")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	orig, err := Decode([]byte(snapshotJSON))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	data, err := orig.Encode()
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	again, err := Decode(data)
	if err != nil {
		t.Fatalf("re-decode failed: %v", err)
	}

	if again.ID != orig.ID || len(again.Players) != len(orig.Players) ||
		len(again.Rounds) != len(orig.Rounds) {
		t.Fatalf("round trip mismatch: %+v vs %+v", again, orig)
	}
	if got := again.Rounds[0].Pairings[0].Result; got != ResultWhiteWin {
		t.Errorf("round-tripped result = %v; want %v", got, ResultWhiteWin)
	}
}
