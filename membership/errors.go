// SPDX-License-Identifier: MIT
package membership

import "errors"

var (
	// ErrBreakpointOrder indicates breakpoints violating a ≤ b ≤ c (≤ d).
	ErrBreakpointOrder = errors.New("membership: breakpoints out of order")

	// ErrNonFinite indicates a NaN or ±Inf breakpoint.
	ErrNonFinite = errors.New("membership: non-finite breakpoint")

	// ErrUnknownShape indicates a Spec whose Shape is not supported.
	ErrUnknownShape = errors.New("membership: unknown shape")

	// ErrParamCount indicates a Spec with the wrong number of parameters
	// for its shape.
	ErrParamCount = errors.New("membership: wrong parameter count")
)
