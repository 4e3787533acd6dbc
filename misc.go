// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.8.24
//

package gorta

import (
	"fmt"
	"math"
	"os"
	"strings"
)

// ------------------------------------
// Mini functions
// ------------------------------------

func SQ(x float64) float64 {
	return x * x
}

func ToDeg(rad float64) float64 {
	return rad / PI * 180.0
}

func ToRad(deg float64) float64 {
	return deg / 180.0 * PI
}

// ------------------------------------
// Cyclic broadcasting
// ------------------------------------

// Broadcast length of a set of slices (longest wins, shorter ones cycle).
// Empty slices do not count.
func BLen(xs ...[]float64) int {
	n := 0
	for _, x := range xs {
		if len(x) > n {
			n = len(x)
		}
	}
	return n
}

// Element i of x under cyclic broadcasting
func cyc(x []float64, i int) float64 {
	return x[i%len(x)]
}

func anyFinite(x []float64) bool {
	for _, v := range x {
		if !math.IsInf(v, 0) && !math.IsNaN(v) {
			return true
		}
	}
	return false
}

func anyNaN(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

func anyPositive(x []float64) bool {
	for _, v := range x {
		if v > 0.0 {
			return true
		}
	}
	return false
}

func anyNonZero(x []float64) bool {
	for _, v := range x {
		if v != 0.0 {
			return true
		}
	}
	return false
}

// ------------------------------------
// Debug print functions
// ------------------------------------

func PrintA(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format, a...)
}

func PrintAIf(cond bool, format string, a ...any) {
	if cond {
		PrintA(format, a...)
	}
}

// Debug display level
var DBG_ int

// Debug display
func PrintD(v int, format string, a ...any) {
	PrintAIf(DBG_ >= v, format, a...)
}

func PrintE(err error) {
	fmt.Fprintf(os.Stderr, "err=%s\n", err.Error())
}

// ------------------------------------
// For command argument parsing
// ------------------------------------

// Apparent optical property kind (0: rrs, 1: rho)
type AOP int

const (
	RRS AOP = iota // hemispherical-directional reflectance [1/sr]
	RHO            // bi-hemispherical (irradiance) reflectance [-]
)

func (p *AOP) Set(s string) error {
	switch strings.ToLower(s) {
	case "rrs":
		*p = RRS
	case "rho", "r":
		*p = RHO
	default:
		return fmt.Errorf("aop %q: %w", s, ErrInvalidArg)
	}
	return nil
}

func (p *AOP) String() string {
	switch *p {
	case RRS:
		return "rrs"
	case RHO:
		return "rho"
	default:
		return "UNKNOWN!"
	}
}

// Reflectance parametrization (0: Albert-Mobley03, 1: Lee98)
type Model int

const (
	AlbertMobley03 Model = iota
	Lee98
)

func (p *Model) Set(s string) error {
	switch strings.ToLower(s) {
	case "am03", "albert-mobley03", "albertmobley03":
		*p = AlbertMobley03
	case "l98", "lee98":
		*p = Lee98
	default:
		return fmt.Errorf("model %q: %w", s, ErrInvalidArg)
	}
	return nil
}

func (p *Model) String() string {
	switch *p {
	case AlbertMobley03:
		return "Albert-Mobley03"
	case Lee98:
		return "Lee98"
	default:
		return "UNKNOWN!"
	}
}
