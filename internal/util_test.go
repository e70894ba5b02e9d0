/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"testing"
)

func TestScoreToString(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0.0, "0"},
		{0.5, "½"},
		{1.0, "1"},
		{2.5, "2½"},
		{7.0, "7"},
	}
	for _, c := range cases {
		if got := ScoreToString(c.score); got != c.want {
			t.Errorf("ScoreToString(%v) = %q; want %q", c.score, got, c.want)
		}
	}
}

func TestParseDateOrZero(t *testing.T) {
	if d, err := ParseDateOrZero(""); err != nil || !d.IsZero() {
		t.Errorf("empty input: got (%v, %v); want zero time", d, err)
	}
	if d, err := ParseDateOrZero("null"); err != nil || !d.IsZero() {
		t.Errorf("null input: got (%v, %v); want zero time", d, err)
	}
	d, err := ParseDateOrZero("2025-03-14T10:00:00Z")
	if err != nil {
		t.Fatalf("rfc3339 input: unexpected error: %v", err)
	}
	if d.Year() != 2025 || d.Month() != 3 || d.Day() != 14 {
		t.Errorf("rfc3339 input: parsed %v", d)
	}
}
