/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tourney

import (
	"encoding/json"
	"fmt"

	"github.com/mikeb26/chesspair/internal"
)

// The snapshot codec defines the JSON shape the storage collaborator
// reads and writes. Identifiers stay opaque strings; enums serialize as
// stable codes rather than bare ints so snapshots remain readable and
// resistant to constant reordering.

func (s System) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *System) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	switch code {
	case "swiss", "":
		*s = SystemSwiss
	case "round-robin":
		*s = SystemRoundRobin
	default:
		return fmt.Errorf("unknown tournament system %q", code)
	}
	return nil
}

func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Result) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	res, ok := ParseResult(code)
	if !ok {
		return fmt.Errorf("unknown result code %q", code)
	}
	*r = res
	return nil
}

func (tb Tiebreak) MarshalJSON() ([]byte, error) {
	return json.Marshal(tb.String())
}

func (tb *Tiebreak) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	for key, c := range tiebreakCodes {
		if c == code {
			*tb = key
			return nil
		}
	}
	return fmt.Errorf("unknown tiebreak code %q", code)
}

// Custom unmarshaller to handle non-RFC3339 timestamps, "null", and
// empty strings in player records.
func (p *Player) UnmarshalJSON(data []byte) error {
	type Alias Player
	aux := &struct {
		CreatedAt string `json:"createdAt"`
		*Alias
	}{Alias: (*Alias)(p)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	created, err := internal.ParseDateOrZero(aux.CreatedAt)
	if err != nil {
		return fmt.Errorf("unable to parse player createdAt: %w", err)
	}
	p.CreatedAt = created

	return nil
}

// Custom unmarshaller mirroring Player's tolerant timestamp handling.
func (t *Tournament) UnmarshalJSON(data []byte) error {
	type Alias Tournament
	aux := &struct {
		CreatedAt string `json:"createdAt"`
		*Alias
	}{Alias: (*Alias)(t)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	created, err := internal.ParseDateOrZero(aux.CreatedAt)
	if err != nil {
		return fmt.Errorf("unable to parse tournament createdAt: %w", err)
	}
	t.CreatedAt = created

	return nil
}

// Decode parses a tournament snapshot and validates its configuration.
func Decode(data []byte) (*Tournament, error) {
	var t Tournament
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("unable to parse tournament snapshot: %w", err)
	}
	if err := Validate(&t); err != nil {
		return nil, err
	}

	return &t, nil
}

// Encode serializes a tournament snapshot for the storage collaborator.
func (t *Tournament) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("unable to serialize tournament snapshot: %w",
			err)
	}

	return data, nil
}
