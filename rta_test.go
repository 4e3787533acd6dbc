// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.8.24
//

package gorta

import (
	"errors"
	"math"
	"testing"
)

func TestRTASA_MissingA(t *testing.T) {
	_, err := RTASA(&IOP{Bb: []float64{0.1}}, nil, nil, RRS, AlbertMobley03)
	if !errors.Is(err, ErrMissingArg) {
		t.Fatalf("err = %v, want ErrMissingArg", err)
	}
	_, err = RTASA(nil, nil, nil, RRS, AlbertMobley03)
	if !errors.Is(err, ErrMissingArg) {
		t.Fatalf("err = %v, want ErrMissingArg", err)
	}
}

func TestRTASA_MissingBbBeatsBadRhoB(t *testing.T) {
	// Validation order: the a/bb check runs before the rho_b range check
	btm := &Bottom{RhoB: []float64{1.5}, Depth: []float64{2.0}}
	_, err := RTASA(&IOP{A: []float64{0.5}}, nil, btm, RRS, AlbertMobley03)
	if !errors.Is(err, ErrMissingArg) {
		t.Fatalf("err = %v, want ErrMissingArg", err)
	}
}

func TestRTASA_FiniteDepthNeedsRhoB(t *testing.T) {
	btm := &Bottom{Depth: []float64{2.0}}
	_, err := RTASA(&IOP{A: []float64{0.5}, Bb: []float64{0.1}}, nil, btm, RRS, AlbertMobley03)
	if !errors.Is(err, ErrMissingArg) {
		t.Fatalf("err = %v, want ErrMissingArg", err)
	}

	// A single finite element among deep ones is enough to require rho_b
	btm = &Bottom{Depth: []float64{math.Inf(1), 3.0}}
	_, err = RTASA(&IOP{A: []float64{0.5}, Bb: []float64{0.1}}, nil, btm, RRS, AlbertMobley03)
	if !errors.Is(err, ErrMissingArg) {
		t.Fatalf("err = %v, want ErrMissingArg", err)
	}
}

func TestRTASA_RhoBOutOfRange(t *testing.T) {
	for _, bad := range []float64{-0.1, 1.1} {
		btm := &Bottom{RhoB: []float64{bad}, Depth: []float64{2.0}}
		_, err := RTASA(&IOP{A: []float64{0.5}, Bb: []float64{0.1}}, nil, btm, RRS, AlbertMobley03)
		if !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("rho_b=%g: err = %v, want ErrOutOfRange", bad, err)
		}
	}
}

func TestRTASA_UnknownModelAop(t *testing.T) {
	iop := &IOP{A: []float64{0.5}, Bb: []float64{0.1}}
	_, err := RTASA(iop, nil, nil, RRS, Model(7))
	if !errors.Is(err, ErrInvalidArg) {
		t.Fatalf("err = %v, want ErrInvalidArg", err)
	}
	_, err = RTASA(iop, nil, nil, AOP(9), AlbertMobley03)
	if !errors.Is(err, ErrInvalidArg) {
		t.Fatalf("err = %v, want ErrInvalidArg", err)
	}
}

func TestRTASA_RhoIgnoresViewAngle(t *testing.T) {
	iop := &IOP{A: []float64{0.5}, Bb: []float64{0.1}}
	nadir, err := RTASA(iop, &Geom{ThetaV: []float64{0.0}}, nil, RHO, AlbertMobley03)
	if err != nil {
		t.Fatalf("RTASA failed: %v", err)
	}
	tilted, err := RTASA(iop, &Geom{ThetaV: []float64{0.5}}, nil, RHO, AlbertMobley03)
	if err != nil {
		t.Fatalf("RTASA failed: %v", err)
	}
	if tilted.R[0] != nadir.R[0] {
		t.Errorf("view angle changed rho: %g != %g", tilted.R[0], nadir.R[0])
	}
	if !hasDiag(tilted.Diags, AssumptionOverride) {
		t.Errorf("expected override diagnostic, got %v", tilted.Diags)
	}
	if hasDiag(nadir.Diags, AssumptionOverride) {
		t.Errorf("unexpected diagnostic for nadir view: %v", nadir.Diags)
	}
}

func TestRTASA_NegativeDepthIsMagnitude(t *testing.T) {
	iop := &IOP{A: []float64{0.5}, Bb: []float64{0.1}}
	pos, err := RTASA(iop, nil, &Bottom{RhoB: []float64{0.3}, Depth: []float64{1.0}}, RRS, AlbertMobley03)
	if err != nil {
		t.Fatalf("RTASA failed: %v", err)
	}
	neg, err := RTASA(iop, nil, &Bottom{RhoB: []float64{0.3}, Depth: []float64{-1.0}}, RRS, AlbertMobley03)
	if err != nil {
		t.Fatalf("RTASA failed: %v", err)
	}
	if neg.R[0] != pos.R[0] {
		t.Errorf("depth=-1 result %g != depth=1 result %g", neg.R[0], pos.R[0])
	}
}

func TestRTASA_DoesNotMutateInputs(t *testing.T) {
	depth := []float64{-2.0}
	thetaV := []float64{0.4}
	iop := &IOP{A: []float64{0.5}, Bb: []float64{0.1}}
	_, err := RTASA(iop, &Geom{ThetaV: thetaV}, &Bottom{RhoB: []float64{0.3}, Depth: depth}, RHO, AlbertMobley03)
	if err != nil {
		t.Fatalf("RTASA failed: %v", err)
	}
	if depth[0] != -2.0 || thetaV[0] != 0.4 {
		t.Errorf("caller slices mutated: depth=%g theta_v=%g", depth[0], thetaV[0])
	}
}

func TestRTASA_Broadcast(t *testing.T) {
	// Shorter arguments cycle to the longest
	iop := &IOP{A: []float64{0.5, 1.0}, Bb: []float64{0.1}}
	geo := &Geom{ThetaS: []float64{0.0, 0.1, 0.2, 0.3}}
	refl, err := RTASA(iop, geo, nil, RRS, AlbertMobley03)
	if err != nil {
		t.Fatalf("RTASA failed: %v", err)
	}
	if len(refl.R) != 4 {
		t.Fatalf("len(R) = %d, want 4", len(refl.R))
	}

	// Element 0 must equal the scalar call (a=0.5, theta_s=0)
	one, err := RTASA(&IOP{A: []float64{0.5}, Bb: []float64{0.1}}, nil, nil, RRS, AlbertMobley03)
	if err != nil {
		t.Fatalf("RTASA failed: %v", err)
	}
	if refl.R[0] != one.R[0] {
		t.Errorf("broadcast element 0 = %g, want %g", refl.R[0], one.R[0])
	}

	// Element 2 cycles back to a=0.5 with theta_s=0.2
	two, err := RTASA(&IOP{A: []float64{0.5}, Bb: []float64{0.1}},
		&Geom{ThetaS: []float64{0.2}}, nil, RRS, AlbertMobley03)
	if err != nil {
		t.Fatalf("RTASA failed: %v", err)
	}
	if refl.R[2] != two.R[0] {
		t.Errorf("broadcast element 2 = %g, want %g", refl.R[2], two.R[0])
	}
}

func TestRTASA_EnvelopeSeesFullBroadcast(t *testing.T) {
	// With a longer geometry, the engines pair a and bb by cycling over the
	// full broadcast length; index 3 here pairs a=0.1 with bb=10
	// (u ~ 0.99), a pair that never occurs within the first
	// max(len(a), len(bb)) elements. The envelope check must still see it.
	iop := &IOP{A: []float64{100.0, 0.1}, Bb: []float64{10.0, 0.01, 0.01}}
	geo := &Geom{ThetaS: make([]float64, 6)}
	refl, err := RTASA(iop, geo, nil, RRS, AlbertMobley03)
	if err != nil {
		t.Fatalf("RTASA failed: %v", err)
	}
	if len(refl.R) != 6 {
		t.Fatalf("len(R) = %d, want 6", len(refl.R))
	}
	if math.IsNaN(refl.R[3]) || math.IsInf(refl.R[3], 0) {
		t.Errorf("R[3] = %g, want finite", refl.R[3])
	}
	if !hasDiag(refl.Diags, DomainExtrap) {
		t.Errorf("u ~ 0.99 at broadcast index 3 not diagnosed: %v", refl.Diags)
	}
}

func TestRTASA_NaNDepthRejected(t *testing.T) {
	iop := &IOP{A: []float64{0.5}, Bb: []float64{0.1}}
	for _, btm := range []*Bottom{
		{Depth: []float64{math.NaN()}},
		{RhoB: []float64{0.3}, Depth: []float64{2.0, math.NaN()}},
	} {
		_, err := RTASA(iop, nil, btm, RRS, AlbertMobley03)
		if !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("depth=%v: err = %v, want ErrOutOfRange", btm.Depth, err)
		}
	}
}

func TestRTASA_MatchesDirectAlbedo(t *testing.T) {
	// u derived inside the engines must match bb/(a+bb) computed here:
	// in the low-albedo limit R0/u approaches p1*(1+p5)*(1+p7) for rrs,
	// so recover u from the model output and compare.
	a, bb := 2.0, 1e-6
	u := bb / (a + bb)
	refl, err := RTASA(&IOP{A: []float64{a}, Bb: []float64{bb}}, nil, nil, RRS, AlbertMobley03)
	if err != nil {
		t.Fatalf("RTASA failed: %v", err)
	}
	c := am03Rrs
	got := refl.R[0] / (c.p1 * (1 + c.p2*u + c.p3*u*u + c.p4*u*u*u) * (1 + c.p5) * (1 + c.p7))
	if math.Abs(got-u) > 1e-20 {
		t.Errorf("recovered u = %g, want %g", got, u)
	}
}
