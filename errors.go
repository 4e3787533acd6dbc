// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.8.24
//

package gorta

import "errors"

var (
	// ErrMissingArg is returned when a coefficient required by the requested
	// configuration is absent (a/bb always, rho_b for finite depth, bbp for
	// non-nadir Lee98).
	ErrMissingArg = errors.New("missing required argument")

	// ErrOutOfRange is returned when an argument lies outside its physical
	// range (rho_b outside [0,1]).
	ErrOutOfRange = errors.New("argument outside physical range")

	// ErrInvalidArg is returned for an unrecognized model or aop token.
	ErrInvalidArg = errors.New("invalid argument")
)
