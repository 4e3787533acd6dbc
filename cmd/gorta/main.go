// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.8.24
//

package main

import (
	"flag"
	"fmt"
	"io"
	"math/cmplx"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	m "github.com/mkhts/gorta"
)

func main() {

	// Parse command line arguments
	args, err := parseArgs()
	if err != nil {
		flag.Usage()
		os.Exit(1)
	}

	// Run the main application
	if err := runApplication(args); err != nil {
		m.PrintE(err)
		os.Exit(1)
	}
}

type cmdOpt struct {
	scnFn    string
	outFn    string
	model    m.Model
	aop      m.AOP
	modelSet bool
	aopSet   bool
	nR       string
	nI       float64
	thetaI   string
	noHeader bool
}

// Parse command line arguments
func parseArgs() (cmdOpt, error) {
	args := cmdOpt{}

	flag.StringVar(&args.scnFn, "s", "", "scenario file (TOML)")
	flag.StringVar(&args.outFn, "o", "", "output file (default: stdout)")
	flag.Var(&args.model, "m", "reflectance model (am03 | lee98), overrides scenario")
	flag.Var(&args.aop, "a", "output quantity (rrs | rho), overrides scenario")
	flag.StringVar(&args.nR, "nr", "", "complex refraction index 're,im': decompose refracted angles instead of computing reflectance")
	flag.Float64Var(&args.nI, "ni", 1.0, "incidence-side refraction index (with -nr)")
	flag.StringVar(&args.thetaI, "ti", "0,10,20,30,40,50,60,70,80", "incidence angles [deg], comma separated (with -nr)")
	flag.BoolVar(&args.noHeader, "nh", false, "suppress output header")
	flag.IntVar(&m.DBG_, "d", 1, "debug display level")
	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "m":
			args.modelSet = true
		case "a":
			args.aopSet = true
		}
	})

	if args.scnFn == "" && args.nR == "" {
		return args, fmt.Errorf("either -s or -nr is required")
	}
	return args, nil
}

// Main application processing
func runApplication(args cmdOpt) error {

	// Prepare output
	out, err := prepareOutput(args)
	if err != nil {
		return fmt.Errorf("failed to prepare output: %w", err)
	}
	defer closeOutput(out)

	if args.nR != "" {
		return runDecomp(args, out)
	}
	return runScenario(args, out)
}

// Prepare output file
func prepareOutput(args cmdOpt) (io.WriteCloser, error) {

	// Use stdout if no output file is specified
	if len(args.outFn) == 0 {
		return &nopCloser{os.Stdout}, nil
	}

	// Create output file
	f, err := os.Create(args.outFn)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}

// Close output file
func closeOutput(out io.WriteCloser) {
	if out != nil {
		out.Close()
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// ------------------------------------
// Reflectance scenario
// ------------------------------------

// Scenario file contents. Angles in degrees (in-water values), lengths
// cycle against each other as in the library.
type scenario struct {
	Model     string    `toml:"model"`
	Aop       string    `toml:"aop"`
	ThetaSun  []float64 `toml:"theta_sun"`
	ThetaView []float64 `toml:"theta_view"`
	Wind      []float64 `toml:"wind"`
	Depth     []float64 `toml:"depth"`
	RhoB      []float64 `toml:"rho_b"`
	Lambda    []float64 `toml:"lambda"`
	A         []float64 `toml:"a"`
	Bb        []float64 `toml:"bb"`
	Bbp       []float64 `toml:"bbp"`
	AddWater  bool      `toml:"add_water"`
	Propagate bool      `toml:"propagate"`
}

// Compute a reflectance spectrum from a scenario file
func runScenario(args cmdOpt, out io.Writer) error {

	scn := scenario{}
	if _, err := toml.DecodeFile(args.scnFn, &scn); err != nil {
		return fmt.Errorf("failed to read scenario file: %w", err)
	}

	model := m.AlbertMobley03
	if scn.Model != "" {
		if err := model.Set(scn.Model); err != nil {
			return err
		}
	}
	if args.modelSet {
		model = args.model
	}
	aop := m.RRS
	if scn.Aop != "" {
		if err := aop.Set(scn.Aop); err != nil {
			return err
		}
	}
	if args.aopSet {
		aop = args.aop
	}

	iop, err := buildIOP(&scn)
	if err != nil {
		return err
	}
	geo := &m.Geom{
		ThetaS: toRadAll(scn.ThetaSun),
		ThetaV: toRadAll(scn.ThetaView),
		Wsp:    scn.Wind,
	}
	btm := &m.Bottom{RhoB: scn.RhoB, Depth: scn.Depth}

	refl, err := m.RTASA(iop, geo, btm, aop, model)
	if err != nil {
		return err
	}

	var rrsAbove []float64
	if scn.Propagate {
		rrsAbove = m.PropagateR(refl.R)
	}

	if !args.noHeader {
		fmt.Fprintf(out, "%% model=%s aop=%s\n", model.String(), aop.String())
		if scn.Propagate {
			fmt.Fprintf(out, "%%  lambda[nm]     %s        Rrs(0+)\n", aop.String())
		} else {
			fmt.Fprintf(out, "%%  lambda[nm]     %s\n", aop.String())
		}
	}
	for i, r := range refl.R {
		lam := float64(i)
		if len(scn.Lambda) > 0 {
			lam = scn.Lambda[i%len(scn.Lambda)]
		}
		if scn.Propagate {
			fmt.Fprintf(out, "%12.1f  %12.6e  %12.6e\n", lam, r, rrsAbove[i])
		} else {
			fmt.Fprintf(out, "%12.1f  %12.6e\n", lam, r)
		}
	}
	return nil
}

// Assemble a/bb (and bbp) from scenario constituents, adding the pure-water
// contribution per wavelength when requested
func buildIOP(scn *scenario) (*m.IOP, error) {

	if !scn.AddWater {
		return &m.IOP{A: scn.A, Bb: scn.Bb, Bbp: scn.Bbp}, nil
	}
	if len(scn.Lambda) == 0 {
		return nil, fmt.Errorf("add_water requires lambda")
	}

	n := len(scn.Lambda)
	a := make([]float64, n)
	bb := make([]float64, n)
	for i, lam := range scn.Lambda {
		a[i] = m.AW(lam)
		bb[i] = m.BBW(lam)
		if len(scn.A) > 0 {
			a[i] += scn.A[i%len(scn.A)]
		}
		if len(scn.Bb) > 0 {
			bb[i] += scn.Bb[i%len(scn.Bb)]
		}
	}
	return &m.IOP{A: a, Bb: bb, Bbp: scn.Bbp}, nil
}

func toRadAll(deg []float64) []float64 {
	if len(deg) == 0 {
		return nil
	}
	rad := make([]float64, len(deg))
	for i, d := range deg {
		rad[i] = m.ToRad(d)
	}
	return rad
}

// ------------------------------------
// Complex-angle decomposition
// ------------------------------------

// Local complex Snell solver; the library only defines the contract.
var snell m.SnellFunc = func(thetaI float64, nI, nR complex128) complex128 {
	return cmplx.Asin(cmplx.Sin(complex(thetaI, 0)) * nI / nR)
}

// Decompose refracted angles for a set of incidence angles
func runDecomp(args cmdOpt, out io.Writer) error {

	nR, err := parseCmplx(args.nR)
	if err != nil {
		return fmt.Errorf("failed to parse -nr: %w", err)
	}
	nI := complex(args.nI, 0)

	tiDeg, err := parseFloats(args.thetaI)
	if err != nil {
		return fmt.Errorf("failed to parse -ti: %w", err)
	}

	thetaR := make([]complex128, len(tiDeg))
	for i, ti := range tiDeg {
		thetaR[i] = snell(m.ToRad(ti), nI, nR)
	}
	kp, ka := m.SnellDecomp(thetaR, []complex128{nR})

	if !args.noHeader {
		fmt.Fprintf(out, "%% n_i=%g n_r=%g%+gi\n", args.nI, real(nR), imag(nR))
		fmt.Fprintf(out, "%% theta_i[deg]  theta_kp[deg]  theta_ka[deg]\n")
	}
	for i, ti := range tiDeg {
		fmt.Fprintf(out, "%13.2f  %13.6f  %13.6f\n", ti, m.ToDeg(kp[i]), m.ToDeg(ka[i]))
	}
	return nil
}

func parseCmplx(s string) (complex128, error) {
	re, im := s, ""
	if i := strings.IndexByte(s, ','); i >= 0 {
		re, im = s[:i], s[i+1:]
	}
	r, err := strconv.ParseFloat(strings.TrimSpace(re), 64)
	if err != nil {
		return 0, err
	}
	v := 0.0
	if im != "" {
		v, err = strconv.ParseFloat(strings.TrimSpace(im), 64)
		if err != nil {
			return 0, err
		}
	}
	return complex(r, v), nil
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
