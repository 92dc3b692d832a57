package ideology

import (
	"fmt"
	"math"
	"strings"
)

// Quadrant is a region of the political compass.
type Quadrant string

const (
	ProgressiveLeft   Quadrant = "progressive-left"
	ProgressiveRight  Quadrant = "progressive-right"
	ConservativeLeft  Quadrant = "conservative-left"
	ConservativeRight Quadrant = "conservative-right"
)

// Quadrants lists every quadrant in a fixed order used for tie-breaking.
var Quadrants = []Quadrant{ConservativeRight, ConservativeLeft, ProgressiveRight, ProgressiveLeft}

// centrist band: values up to 4 count as progressive / left.
const lowSideMax = 4

// QuadrantOf classifies a position on the compass.
func QuadrantOf(social, economic int) Quadrant {
	progressive := social <= lowSideMax
	left := economic <= lowSideMax
	switch {
	case progressive && left:
		return ProgressiveLeft
	case progressive:
		return ProgressiveRight
	case left:
		return ConservativeLeft
	default:
		return ConservativeRight
	}
}

// Position returns the centre of the quadrant's generation ranges.
func (q Quadrant) Position() (social, economic float64) {
	switch q {
	case ConservativeRight:
		return 8.5, 8.5
	case ConservativeLeft:
		return 8.5, 1.5
	case ProgressiveRight:
		return 1.5, 8.5
	default:
		return 1.5, 1.5
	}
}

// Title returns a display name, e.g. "Progressive Left".
func (q Quadrant) Title() string {
	switch q {
	case ConservativeRight:
		return "Conservative Right"
	case ConservativeLeft:
		return "Conservative Left"
	case ProgressiveRight:
		return "Progressive Right"
	case ProgressiveLeft:
		return "Progressive Left"
	}
	return string(q)
}

// ParseQuadrant accepts a quadrant name such as "progressive-left" or
// "Progressive Left" in any case.
func ParseQuadrant(s string) (Quadrant, error) {
	norm := strings.ToLower(strings.Join(strings.Fields(strings.ReplaceAll(s, "-", " ")), "-"))
	for _, q := range Quadrants {
		if string(q) == norm {
			return q, nil
		}
	}
	return "", fmt.Errorf("quadrant %q: %w", s, ErrUnknownLabel)
}

// Nearest returns the option closest to a position by Euclidean distance.
// Ties go to the earlier option.
func Nearest(social, economic int, options []Quadrant) Quadrant {
	var best Quadrant
	bestDist := math.Inf(1)
	for _, q := range options {
		qs, qe := q.Position()
		d := math.Hypot(float64(social)-qs, float64(economic)-qe)
		if d < bestDist {
			best, bestDist = q, d
		}
	}
	return best
}
