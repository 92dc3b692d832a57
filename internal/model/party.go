// Package model defines the plain value types shared by the simulation engine.
package model

import "strings"

// Scale is the player's declared party size at founding.
type Scale string

// Stance is the player's declared starting position in the legislature.
type Stance string

const (
	ScaleSmall Scale = "small"
	ScaleBig   Scale = "big"

	StanceOpposition Stance = "opposition"
	StanceCoalition  Stance = "coalition"
)

// ParseScale accepts "small" or "big" in any case.
func ParseScale(s string) (Scale, bool) {
	switch Scale(strings.ToLower(strings.TrimSpace(s))) {
	case ScaleSmall:
		return ScaleSmall, true
	case ScaleBig:
		return ScaleBig, true
	}
	return "", false
}

// ParseStance accepts "opposition" or "coalition" in any case.
func ParseStance(s string) (Stance, bool) {
	switch Stance(strings.ToLower(strings.TrimSpace(s))) {
	case StanceOpposition:
		return StanceOpposition, true
	case StanceCoalition:
		return StanceCoalition, true
	}
	return "", false
}

// Party is one party in the legislature. Only VoteShare and InCoalition
// change after the landscape is generated.
type Party struct {
	ID            int    `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	SocialLabel   string `json:"social_label" yaml:"social_label"`
	EconomicLabel string `json:"economic_label" yaml:"economic_label"`
	Social        int    `json:"social" yaml:"social"`     // 0=Progressive, 10=Conservative
	Economic      int    `json:"economic" yaml:"economic"` // 0=Left, 10=Right
	VoteShare     int    `json:"vote_share" yaml:"vote_share"`
	InCoalition   bool   `json:"in_coalition" yaml:"in_coalition"`
	Player        bool   `json:"player" yaml:"player"`
}
