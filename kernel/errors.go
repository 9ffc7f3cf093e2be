// SPDX-License-Identifier: MIT

package kernel

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInputType is returned when a point is neither a recognised
	// numeric vector nor a recognised symbolic vector.
	ErrInvalidInputType = errors.New("kernel: invalid input type")

	// ErrDomainMismatch is returned when numeric and symbolic results are combined.
	ErrDomainMismatch = errors.New("kernel: domain mismatch")
)

// kernelErrorf wraps err with a call-site tag; errors.Is still matches the sentinel.
func kernelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
