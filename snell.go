// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.8.24
//

package gorta

import (
	"math"
	"math/cmplx"
)

// SnellFunc is the contract of a caller-supplied refraction-angle solver:
// it returns the (possibly complex) refracted angle for an incidence angle
// and an index pair. A complex result arises when nR absorbs.
type SnellFunc func(thetaI float64, nI, nR complex128) complex128

// FresnelFunc is the contract of a caller-supplied boundary reflectance
// calculator consuming the refracted angle and returning power reflectance.
type FresnelFunc func(thetaI float64, thetaR complex128, nI, nR complex128) float64

// SnellDecomp splits complex refracted angles into the angle of constant
// phase and the angle of constant amplitude (Liu, Qian & Tian 2003). The
// transmitted wave vector is nR*(sin thetaR, cos thetaR) up to a real scale;
// its real part points along the phase normal, its imaginary part along the
// attenuation normal. Inputs cycle to the longer slice; NaN elements
// propagate to the output, and an empty slice on either side gives an
// empty result.
func SnellDecomp(thetaR, nR []complex128) (thetaKP, thetaKA []float64) {
	if len(thetaR) == 0 || len(nR) == 0 {
		return nil, nil
	}
	n := len(thetaR)
	if len(nR) > n {
		n = len(nR)
	}
	thetaKP = make([]float64, n)
	thetaKA = make([]float64, n)
	for i := 0; i < n; i++ {
		kp, ka := snellDecomp1(thetaR[i%len(thetaR)], nR[i%len(nR)])
		thetaKP[i] = kp
		thetaKA[i] = ka
	}
	return
}

func snellDecomp1(thetaR, nR complex128) (float64, float64) {
	s := nR * cmplx.Sin(thetaR)
	c := nR * cmplx.Cos(thetaR)
	// atan2(0,0) = 0 covers the lossless case: no attenuation direction,
	// amplitude planes parallel to the boundary.
	return math.Atan2(real(s), real(c)), math.Atan2(imag(s), imag(c))
}
