// This code implements the semi-analytical reflectance parametrization of
// A. Albert and C.D. Mobley, Opt. Express 11(22) 2873-2890 (2003).
//
// Last modified: 2025.8.24
//

package gorta

import (
	"math"
)

// Albert-Mobley (2003) reflectance. Inputs are validated and the coefficient
// table is selected by aop; see const.go for the fitted constants.
// Division by cos(theta) is undefined at grazing angles (theta = pi/2);
// callers must keep angles away from the horizon.
func am03(in *rtaIn, aop AOP) []float64 {
	c := &am03Rrs
	if aop == RHO {
		c = &am03Rho
	}
	n := in.blen()
	r := make([]float64, n)
	for i := 0; i < n; i++ {
		a := cyc(in.a, i)
		bb := cyc(in.bb, i)
		k := a + bb
		u := bb / k
		cs := math.Cos(cyc(in.thetaS, i))
		cv := math.Cos(cyc(in.thetaV, i))

		// semi-infinite water column
		r0 := c.p1 * (1.0 + c.p2*u + c.p3*SQ(u) + c.p4*u*SQ(u)) *
			(1.0 + c.p5/cs) * (1.0 + c.p6*cyc(in.wsp, i)) * (1.0 + c.p7/cv) * u

		z := cyc(in.depth, i)
		if math.IsInf(z, 1) {
			r[i] = r0
			continue
		}

		// finite bottom: two-stream attenuation of column and bottom signal
		kd := c.k0 * k / cs
		kuw := k * math.Pow(1.0+u, c.k1w) * (1.0 + c.k2w/cs)
		kub := k * math.Pow(1.0+u, c.k1b) * (1.0 + c.k2b/cs)
		r[i] = r0*(1.0-c.a1*math.Exp(-(kd+kuw)*z)) +
			c.a2*cyc(in.rhoB, i)*math.Exp(-(kd+kub)*z)
	}
	return r
}
