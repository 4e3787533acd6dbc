// This code implements the semi-analytical reflectance parametrization of
// Z. Lee et al., Appl. Opt. 37(27) 6329-6338 (1998) and 38(18) 3831-3843 (1999).
//
// Last modified: 2025.8.24
//

package gorta

import (
	"math"
)

// Lee et al. (1998/99) reflectance. The model is fitted for rrs; rho is
// obtained with the Lambertian assumption rho = rrs*pi (q1 below).
//
// The bottom attenuation exponent divides by cos(theta_s) exactly as the
// reference formula writes it. The published term structure suggests
// cos(theta_v) for the upwelling path; kept literal until confirmed against
// the original authors' code.
func lee98(in *rtaIn, aop AOP) []float64 {
	q1 := 1.0
	if aop == RHO {
		q1 = PI
	}
	n := in.blen()
	r := make([]float64, n)
	for i := 0; i < n; i++ {
		a := cyc(in.a, i)
		bb := cyc(in.bb, i)
		ths := cyc(in.thetaS, i)
		thv := cyc(in.thetaV, i)

		// off-nadir viewing redistributes the particle phase function
		if thv != 0.0 {
			bbp := cyc(in.bbp, i)
			e := 1.0 + (0.1+0.8*bbp/bb)*math.Sin(ths)*math.Sin(thv)
			bb = (bb - bbp) + e*bbp
		}
		k := a + bb
		u := bb / k

		r0 := q1 * (l98P1 + l98P2*u) * u

		z := cyc(in.depth, i)
		if math.IsInf(z, 1) {
			r[i] = r0
			continue
		}

		cs := math.Cos(ths)
		cv := math.Cos(thv)
		duw := l98K1w * math.Sqrt(1.0+l98K2w*u)
		dub := l98K1b * math.Sqrt(1.0+l98K2b*u)
		r[i] = r0*(1.0-math.Exp(-(1.0/cs+duw/cv)*k*z)) +
			cyc(in.rhoB, i)/PI*math.Exp(-(1.0/cs+dub/cv)*k*z)
	}
	return r
}
