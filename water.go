// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.8.24
//

package gorta

import (
	"math"

	"golang.org/x/exp/slices"
)

// Pure-water absorption, Pope & Fry (1997), Appl. Opt. 36(33), 10 nm grid [1/m].
// Support data for callers building a/bb spectra; the reflectance core never
// reads it.
var awWL = []float64{
	400, 410, 420, 430, 440, 450, 460, 470, 480, 490,
	500, 510, 520, 530, 540, 550, 560, 570, 580, 590,
	600, 610, 620, 630, 640, 650, 660, 670, 680, 690,
	700,
}

var awVal = []float64{
	0.00663, 0.00473, 0.00454, 0.00495, 0.00635, 0.00922, 0.00979, 0.0106, 0.0127, 0.0150,
	0.0204, 0.0325, 0.0409, 0.0434, 0.0474, 0.0565, 0.0619, 0.0695, 0.0896, 0.1351,
	0.2224, 0.2644, 0.2755, 0.2916, 0.3108, 0.3400, 0.4100, 0.4390, 0.4650, 0.5160,
	0.6240,
}

// AW returns the pure-water absorption coefficient [1/m] at wavelength
// lambda [nm], linearly interpolated on the Pope & Fry grid and clamped to
// its ends.
func AW(lambda float64) float64 {
	i, ok := slices.BinarySearch(awWL, lambda)
	if ok {
		return awVal[i]
	}
	if i == 0 {
		return awVal[0]
	}
	if i == len(awWL) {
		return awVal[len(awVal)-1]
	}
	f := (lambda - awWL[i-1]) / (awWL[i] - awWL[i-1])
	return awVal[i-1] + f*(awVal[i]-awVal[i-1])
}

// BW returns the pure-water (molecular) scattering coefficient [1/m] after
// Morel (1974), bw = 0.005826*(400/lambda)^4.322.
func BW(lambda float64) float64 {
	return 0.005826 * math.Pow(400.0/lambda, 4.322)
}

// BBW returns the pure-water back-scattering coefficient [1/m]; molecular
// scattering is symmetric, so half of BW.
func BBW(lambda float64) float64 {
	return BW(lambda) / 2.0
}
