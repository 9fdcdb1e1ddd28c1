package asbs

import "errors"

var (
	// ErrInsufficientCover is returned when a stream ends before all required
	// bits were carried: on concealment, the cover has fewer masked bits than
	// the header and payload need; on revelation, the package ends before the
	// declared message length was recovered.
	ErrInsufficientCover = errors.New("insufficient cover capacity")

	// ErrInvalidConfig is returned for unusable configurations, such as a nil
	// pattern, a bad key size, or reuse of a one-shot carrier or package.
	ErrInvalidConfig = errors.New("invalid configuration")
)
