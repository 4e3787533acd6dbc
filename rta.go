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

	"gonum.org/v1/gonum/floats"
)

// Inherent optical properties [1/m]
type IOP struct {
	A   []float64 // absorption coefficient
	Bb  []float64 // total back-scattering coefficient
	Bbp []float64 // particle back-scattering coefficient (optional, <= Bb)
}

// Illumination and viewing geometry. Angles are in-water (refracted) [rad].
type Geom struct {
	ThetaS []float64 // sun zenith angle
	ThetaV []float64 // viewing nadir angle
	Wsp    []float64 // wind speed [m/s] (Albert-Mobley03 only)
}

// Bottom boundary. Depth +Inf marks an optically deep (semi-infinite) column.
type Bottom struct {
	RhoB  []float64 // bottom bi-hemispherical reflectance, in [0,1]
	Depth []float64 // bottom depth [m]
}

// Reflectance result. R matches the cyclic broadcast length of the inputs;
// units are [1/sr] for RRS, dimensionless for RHO.
type Refl struct {
	R     []float64
	Diags []Diag
}

// Validated, broadcast-ready engine input
type rtaIn struct {
	a, bb, bbp          []float64
	thetaS, thetaV, wsp []float64
	rhoB, depth         []float64
}

func (p *rtaIn) blen() int {
	return BLen(p.a, p.bb, p.bbp, p.thetaS, p.thetaV, p.wsp, p.rhoB, p.depth)
}

var zeros = []float64{0.0}
var deep = []float64{math.Inf(1)}

// RTASA computes the subsurface reflectance of a natural water column with
// the selected semi-analytical parametrization. Inputs of differing lengths
// cycle to the longest. Fatal input problems return an error and no result;
// envelope violations and model assumptions are reported in Refl.Diags and
// the extrapolated value is returned anyway.
func RTASA(iop *IOP, geo *Geom, btm *Bottom, aop AOP, model Model) (*Refl, error) {

	// Mandatory coefficients
	if iop == nil || len(iop.A) == 0 {
		return nil, fmt.Errorf("a: %w", ErrMissingArg)
	}
	if len(iop.Bb) == 0 {
		return nil, fmt.Errorf("bb: %w", ErrMissingArg)
	}

	in := &rtaIn{
		a: iop.A, bb: iop.Bb, bbp: iop.Bbp,
		thetaS: zeros, thetaV: zeros, wsp: zeros,
		depth: deep,
	}
	if geo != nil {
		if len(geo.ThetaS) > 0 {
			in.thetaS = geo.ThetaS
		}
		if len(geo.ThetaV) > 0 {
			in.thetaV = geo.ThetaV
		}
		if len(geo.Wsp) > 0 {
			in.wsp = geo.Wsp
		}
	}
	if btm != nil {
		in.rhoB = btm.RhoB
		if len(btm.Depth) > 0 {
			in.depth = btm.Depth
		}
	}

	// Depth must be a number; a NaN would otherwise slip past the finite
	// checks below and poison the shallow-water branch.
	if anyNaN(in.depth) {
		return nil, fmt.Errorf("depth is NaN: %w", ErrOutOfRange)
	}

	// A finite bottom needs a bottom reflectance, and a plausible one
	if anyFinite(in.depth) && len(in.rhoB) == 0 {
		return nil, fmt.Errorf("rho_b (finite depth): %w", ErrMissingArg)
	}
	if len(in.rhoB) > 0 {
		if floats.Min(in.rhoB) < 0.0 || floats.Max(in.rhoB) > 1.0 {
			return nil, fmt.Errorf("rho_b outside [0,1]: %w", ErrOutOfRange)
		}
	}

	if aop != RRS && aop != RHO {
		return nil, fmt.Errorf("aop %d: %w", aop, ErrInvalidArg)
	}
	if model != AlbertMobley03 && model != Lee98 {
		return nil, fmt.Errorf("model %d: %w", model, ErrInvalidArg)
	}

	var ds []Diag

	// Irradiance reflectance has no viewing-angle dependence
	if aop == RHO && anyPositive(in.thetaV) {
		ds = diagf(ds, AssumptionOverride,
			"view angle ignored for bi-hemispherical reflectance (theta_v=0 assumed)")
		in.thetaV = zeros
	}

	// The Lee98 off-nadir correction redistributes bbp; it cannot be
	// computed without it.
	if anyNonZero(in.thetaV) && model == Lee98 && len(in.bbp) == 0 {
		return nil, fmt.Errorf("bbp (non-nadir Lee98): %w", ErrMissingArg)
	}

	if anyPositive(in.wsp) && model == Lee98 {
		ds = diagf(ds, AssumptionOverride, "wind speed unused by Lee98")
	}

	// A negative depth is read as its magnitude
	if floats.Min(in.depth) < 0.0 {
		z := make([]float64, len(in.depth))
		for i, v := range in.depth {
			z[i] = math.Abs(v)
		}
		in.depth = z
	}

	ds = envelopeDiags(ds, in, aop, model)

	var r []float64
	switch model {
	case AlbertMobley03:
		r = am03(in, aop)
	case Lee98:
		r = lee98(in, aop)
	}
	return &Refl{R: r, Diags: ds}, nil
}

// Per-model fit envelope checks. Violations extrapolate, never abort.
func envelopeDiags(ds []Diag, in *rtaIn, aop AOP, model Model) []Diag {
	uMax := maxAlbedo(in)
	tsMax := floats.Max(in.thetaS)
	tvMax := floats.Max(in.thetaV)

	switch model {
	case AlbertMobley03:
		if uMax > AM03UMax {
			ds = diagf(ds, DomainExtrap,
				"u=%.4f exceeds Albert-Mobley03 fit limit %.1f", uMax, AM03UMax)
		}
		if tsMax > AM03ThetaSMax {
			ds = diagf(ds, DomainExtrap,
				"theta_s=%.1f deg exceeds Albert-Mobley03 fit limit %.1f deg",
				ToDeg(tsMax), ToDeg(AM03ThetaSMax))
		}
		if tvMax > AM03ThetaVMax {
			ds = diagf(ds, DomainExtrap,
				"theta_v=%.1f deg exceeds Albert-Mobley03 fit limit %.1f deg",
				ToDeg(tvMax), ToDeg(AM03ThetaVMax))
		}
	case Lee98:
		if uMax > L98UMax {
			ds = diagf(ds, DomainExtrap,
				"u=%.4f exceeds Lee98 fit limit %.1f", uMax, L98UMax)
		}
		if tsMax > L98ThetaSMax {
			ds = diagf(ds, DomainExtrap,
				"theta_s=%.1f deg exceeds Lee98 fit limit %.1f deg",
				ToDeg(tsMax), ToDeg(L98ThetaSMax))
		}
		if tvMax > L98ThetaVMax {
			ds = diagf(ds, DomainExtrap,
				"theta_v=%.1f deg exceeds Lee98 fit limit %.1f deg",
				ToDeg(tvMax), ToDeg(L98ThetaVMax))
		}
		if aop == RHO {
			ds = diagf(ds, AssumptionOverride,
				"Lee98 is fitted for rrs only; Lambertian rho=rrs*pi assumed")
		}
	}
	return ds
}

// Largest back-scattering albedo u=bb/(a+bb) seen by the engines. Cycling
// over the full broadcast length matters: when other inputs are longer than
// a and bb, the engines pair (a, bb) elements this check would otherwise
// never visit.
func maxAlbedo(in *rtaIn) float64 {
	m := math.Inf(-1)
	for i := 0; i < in.blen(); i++ {
		u := cyc(in.bb, i) / (cyc(in.a, i) + cyc(in.bb, i))
		if u > m {
			m = u
		}
	}
	return m
}
