// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.8.24
//

package gorta

// PropagateR converts subsurface remote sensing reflectance rrs(0-) to its
// above-surface counterpart Rrs(0+) with the empirical transfer of
// Lee et al. (2002): Rrs = 0.518*rrs/(1 - 1.562*rrs). Elementwise and
// stateless. Singular at rrs = 1/1.562, far above any natural water value;
// not guarded.
func PropagateR(rrs []float64) []float64 {
	out := make([]float64, len(rrs))
	for i, r := range rrs {
		out[i] = propT * r / (1.0 - propQ*r)
	}
	return out
}

// PropagateRInv applies the exact algebraic inverse of PropagateR:
// rrs = Rrs/(0.518 + 1.562*Rrs).
func PropagateRInv(Rrs []float64) []float64 {
	out := make([]float64, len(Rrs))
	for i, r := range Rrs {
		out[i] = r / (propT + propQ*r)
	}
	return out
}
