// Package yeast converts commercial yeast quantities between types using
// fixed equivalency ratios. Sourdough starter and user levain are a
// separate percentage basis and are never part of this conversion graph.
package yeast

import (
	"fmt"

	"github.com/hammamikhairi/doughlab/internal/domain"
)

// Equivalency ratios, all relative to instant dry yeast (IDY).
const (
	ADYToIDY   = 0.8
	FreshToIDY = 1.0 / 3.0
	IDYToADY   = 1.25
	IDYToFresh = 3.0
)

// ToInstantEquivalent normalizes amount of yeast type from to its IDY equivalent.
func ToInstantEquivalent(amount float64, from domain.YeastType) (float64, error) {
	switch from {
	case domain.YeastInstantDry:
		return amount, nil
	case domain.YeastActiveDry:
		return amount * ADYToIDY, nil
	case domain.YeastFresh:
		return amount * FreshToIDY, nil
	case domain.YeastSourdoughStarter, domain.YeastUserLevain:
		return 0, fmt.Errorf("%s: %w", from, domain.ErrNotConvertible)
	default:
		return 0, fmt.Errorf("yeast type %d: %w", int(from), domain.ErrUnknownValue)
	}
}

// FromInstantEquivalent denormalizes an IDY quantity to yeast type to.
func FromInstantEquivalent(idy float64, to domain.YeastType) (float64, error) {
	switch to {
	case domain.YeastInstantDry:
		return idy, nil
	case domain.YeastActiveDry:
		return idy * IDYToADY, nil
	case domain.YeastFresh:
		return idy * IDYToFresh, nil
	case domain.YeastSourdoughStarter, domain.YeastUserLevain:
		return 0, fmt.Errorf("%s: %w", to, domain.ErrNotConvertible)
	default:
		return 0, fmt.Errorf("yeast type %d: %w", int(to), domain.ErrUnknownValue)
	}
}

// Convert converts amount of yeast type from into the equivalent amount
// of yeast type to. It returns domain.ErrNotConvertible when either side
// is a starter or levain.
func Convert(amount float64, from, to domain.YeastType) (float64, error) {
	idy, err := ToInstantEquivalent(amount, from)
	if err != nil {
		return 0, err
	}
	return FromInstantEquivalent(idy, to)
}
