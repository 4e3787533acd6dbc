// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.8.24
//

package gorta

const (
	PI = 3.1415926535897932 // Pi

	// Fitted validity envelopes. Angles are in-water (refracted) values [rad].
	AM03UMax      = 0.8
	AM03ThetaSMax = 0.8028515 // 46 deg in water (80 deg sun zenith in air)
	AM03ThetaVMax = 0.8028515 // 46 deg in water (80 deg nadir in air)
	L98UMax       = 0.6
	L98ThetaSMax  = 0.7090946 // 40 deg in water (60 deg sun zenith in air)
	L98ThetaVMax  = 0.6137942 // 35 deg in water (50 deg nadir in air)
)

// One fitted constant set of the Albert-Mobley (2003) parametrization.
type am03Coef struct {
	p1, p2, p3, p4 float64 // albedo polynomial
	p5             float64 // sun zenith factor
	p6             float64 // wind speed factor [s/m]
	p7             float64 // viewing nadir factor
	a1, a2         float64 // shallow-water amplitudes
	k0             float64 // downwelling attenuation scale
	k1w, k2w       float64 // upwelling attenuation, water column
	k1b, k2b       float64 // upwelling attenuation, bottom
}

// Remote sensing reflectance fit of Albert & Mobley (2003),
// Opt. Express 11(22) 2873-2890 [1/sr]
var am03Rrs = am03Coef{
	p1: 0.0512, p2: 4.6659, p3: -7.8387, p4: 5.4571,
	p5: 0.1098, p6: -0.0044, p7: 0.4021,
	a1: 1.1576, a2: 1.0389,
	k0:  1.0546,
	k1w: 3.5421, k2w: -0.2786,
	k1b: 2.2658, k2b: -0.0577,
}

// Irradiance reflectance fit of Albert & Mobley (2003) / Albert (2004).
// No viewing-angle dependence (p7 = 0).
var am03Rho = am03Coef{
	p1: 0.1034, p2: 3.3586, p3: -6.5358, p4: 4.6638,
	p5: 2.4121, p6: -0.00515, p7: 0.0,
	a1: 1.0546, a2: 1.0389,
	k0:  1.0546,
	k1w: 3.5421, k2w: -0.2786,
	k1b: 2.2658, k2b: -0.0577,
}

// Lee et al. (1998, 1999) constants
const (
	l98P1  = 0.084
	l98P2  = 0.17
	l98K1w = 1.03
	l98K2w = 2.04
	l98K1b = 1.04
	l98K2b = 5.04
)

// Lee et al. (2002) water-air transfer constants
const (
	propT = 0.518 // transmission factor
	propQ = 1.562 // internal reflection factor
)
