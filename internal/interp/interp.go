// Package interp blends two media linearly.
package interp

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"dietinterp/internal/domain"
	"dietinterp/internal/medium"
)

// ValidateFactor checks that n lies in the closed interval [0, 1].
func ValidateFactor(n float64) error {
	if math.IsNaN(n) || n < 0 || n > 1 {
		return domain.InvalidArgument("interp.validate", "n must be between 0 and 1, got %v", n)
	}
	return nil
}

// Interpolate returns (1-n)*m1 + n*m2 over the union of both reaction sets.
// A reaction missing from one side contributes zero from that side, so n=0
// reproduces m1 and n=1 reproduces m2.
func Interpolate(m1, m2 medium.Medium, n float64) (medium.Medium, error) {
	if err := ValidateFactor(n); err != nil {
		return medium.Medium{}, err
	}

	ids := medium.UnionReactions(m1, m2)
	v1 := aligned(m1, ids)
	v2 := aligned(m2, ids)

	out := make([]float64, len(ids))
	floats.ScaleTo(out, 1-n, v1)
	floats.AddScaled(out, n, v2)

	rows := make([]medium.Entry, len(ids))
	for i, id := range ids {
		rows[i] = medium.Entry{Reaction: id, Flux: out[i]}
	}
	res, _ := medium.FromRows(rows)
	return res, nil
}

// aligned lays m's fluxes out along ids, zero-filling gaps.
func aligned(m medium.Medium, ids []string) []float64 {
	v := make([]float64, len(ids))
	for i, id := range ids {
		v[i] = m.FluxOrZero(id)
	}
	return v
}
