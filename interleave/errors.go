package interleave

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every error this package returns.
// It marks a caller bug: nothing is written when it is returned.
var ErrInvalidArgument = errors.New("interleave: invalid argument")

// validate checks that channels have equal length n and that dst holds n*C
// samples. It returns n.
func validate[T any](dst []T, channels [][]T) (int, error) {
	if len(channels) == 0 {
		return 0, fmt.Errorf("%w: no channels", ErrInvalidArgument)
	}
	n := len(channels[0])
	for c, ch := range channels {
		if len(ch) != n {
			return 0, fmt.Errorf("%w: channel %d has %d samples, want %d", ErrInvalidArgument, c, len(ch), n)
		}
	}
	if need := n * len(channels); len(dst) < need {
		return 0, fmt.Errorf("%w: output holds %d samples, need %d", ErrInvalidArgument, len(dst), need)
	}
	return n, nil
}
