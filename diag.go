// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.8.24
//

package gorta

import "fmt"

// Non-fatal notice kind
type DiagKind int

const (
	// Input outside the model's fitted envelope; the extrapolated value is
	// still returned.
	DomainExtrap DiagKind = iota

	// A documented model assumption was applied, or an input without effect
	// was ignored.
	AssumptionOverride
)

func (k DiagKind) String() string {
	switch k {
	case DomainExtrap:
		return "extrapolation"
	case AssumptionOverride:
		return "override"
	default:
		return "UNKNOWN!"
	}
}

// Diag is a non-fatal notice accumulated during a reflectance call and
// returned beside the result. Diagnostics never abort a computation and,
// except for the documented theta_v override, never change its numbers.
type Diag struct {
	Kind DiagKind
	Msg  string
}

func (d Diag) String() string {
	return d.Kind.String() + ": " + d.Msg
}

// Append a notice, mirroring it to stderr at debug level 1.
func diagf(ds []Diag, kind DiagKind, format string, a ...any) []Diag {
	d := Diag{Kind: kind, Msg: fmt.Sprintf(format, a...)}
	PrintD(1, "warn: %s\n", d.String())
	return append(ds, d)
}
