// Package safe provides numeric conversions that reject out-of-range values.
package safe

import (
	"errors"
	"fmt"
)

// ErrNegative is returned when a signed value below zero is converted to an
// unsigned type.
var ErrNegative = errors.New("negative value")

// Uint64 converts a signed or unsigned integer to uint64, failing for negatives.
func Uint64[T ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d out of uint64 range", ErrNegative, v)
	}
	return uint64(v), nil
}
