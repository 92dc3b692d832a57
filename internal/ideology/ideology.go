// Package ideology maps ideology labels onto the 0-10 social and economic axes.
package ideology

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// ErrUnknownLabel is returned when a label does not name a side of the axis.
var ErrUnknownLabel = errors.New("unknown ideology label")

// Axis is one of the two independent ideology dimensions.
type Axis int

const (
	Social Axis = iota
	Economic
)

func (a Axis) String() string {
	if a == Economic {
		return "economic"
	}
	return "social"
}

// Label names one half of an axis.
type Label string

const (
	Progressive  Label = "Progressive"
	Conservative Label = "Conservative"
	Left         Label = "Left"
	Right        Label = "Right"
)

// Draw ranges. The halves never overlap, so labels stay distinguishable
// once converted to values.
const (
	lowMax  = 3
	highMin = 7
	Max     = 10
)

// Axis returns the axis the label belongs to.
func (l Label) Axis() Axis {
	if l == Left || l == Right {
		return Economic
	}
	return Social
}

// High reports whether the label sits on the upper half of its axis.
func (l Label) High() bool {
	return l == Conservative || l == Right
}

// Labels returns the low and high label of an axis.
func Labels(a Axis) (low, high Label) {
	if a == Economic {
		return Left, Right
	}
	return Progressive, Conservative
}

// Draw returns a uniformly random value for the label: [0,3] for the low
// half of the axis, [7,10] for the high half.
func Draw(rng *rand.Rand, l Label) int {
	if l.High() {
		return highMin + rng.IntN(Max-highMin+1)
	}
	return rng.IntN(lowMax + 1)
}

// RandomLabel picks either side of the axis with equal probability.
func RandomLabel(rng *rand.Rand, a Axis) Label {
	low, high := Labels(a)
	if rng.IntN(2) == 0 {
		return low
	}
	return high
}

// ParseLabel resolves a case-insensitive label for the given axis.
// "liberal" is accepted as a synonym for progressive.
func ParseLabel(a Axis, s string) (Label, error) {
	low, high := Labels(a)
	switch strings.ToLower(strings.TrimSpace(s)) {
	case strings.ToLower(string(low)):
		return low, nil
	case strings.ToLower(string(high)):
		return high, nil
	case "liberal":
		if a == Social {
			return Progressive, nil
		}
	}
	return "", fmt.Errorf("%w: %q is not %s or %s", ErrUnknownLabel, s, low, high)
}
