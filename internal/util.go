/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDateOrZero returns a parsed time or zero if input is empty or "null".
func ParseDateOrZero(s string) (time.Time, error) {
	if s == "" || s == "null" {
		return time.Time{}, nil
	}
	return dateparse.ParseAny(s)
}

// ScoreToString renders a chess score in the conventional half-point
// notation, e.g. 3.5 -> "3½" and 0.5 -> "½".
func ScoreToString(score float64) string {
	whole := int(score)
	half := score-float64(whole) >= 0.25

	switch {
	case whole == 0 && half:
		return "½"
	case half:
		return fmt.Sprintf("%d½", whole)
	default:
		return fmt.Sprintf("%d", whole)
	}
}
